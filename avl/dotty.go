package avl

import (
	"fmt"
	"io"
)

type nodeids[K, V any] struct {
	idTable map[*node[K, V]]int
	max     int
}

func newtable[K, V any]() nodeids[K, V] {
	return nodeids[K, V]{
		idTable: make(map[*node[K, V]]int),
		max:     1,
	}
}

func (ids *nodeids[K, V]) alloc(n *node[K, V]) int {
	if id := ids.idTable[n]; id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are labeled with their key, height and
// balance factor; missing children of inner nodes are drawn as small circles.
func ToDot[K, V any](t *Tree[K, V], w io.Writer) error {
	ids := newtable[K, V]()
	nodelist, edgelist := "", ""
	var walk func(n *node[K, V])
	walk = func(n *node[K, V]) {
		ID := ids.alloc(n)
		label := fmt.Sprintf("%v\\nh=%d b=%d", n.key, n.height, n.balance())
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n))
		if n.left == nil && n.right == nil {
			return
		}
		for i, child := range []*node[K, V]{n.left, n.right} {
			if child == nil {
				nilid := fmt.Sprintf("nil%d.%d", ID, i)
				nodelist += fmt.Sprintf("\"%s\" %s;\n", nilid, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"%s\";\n", ID, nilid)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
			walk(child)
		}
	}
	if t != nil && t.root != nil {
		walk(t.root)
	}
	_, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"+
		nodelist+edgelist+"}\n")
	if err != nil {
		tracer().Errorf("tree DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles[K, V any](n *node[K, V]) string {
	s := ",style=filled,shape=box"
	if bf := n.balance(); bf != 0 {
		s += fmt.Sprintf(",fillcolor=\"%s\"", hexcolors[min(max(bf+1, 0), 2)])
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}

var hexcolors = [...]string{"#FFCCAA", "white", "#CCDDFF"}
