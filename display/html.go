package display

import (
	"fmt"
	"io"
	"strconv"

	"github.com/npillmayer/ordered/avl"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// ToHTML renders the structure of tree as nested unordered lists. Every
// node becomes an <li> with its key as text, attributes data-height and
// data-balance, and a nested <ul> holding its left and right child. Missing
// children of inner nodes are rendered as <li class="empty">.
func ToHTML[K, V any](w io.Writer, tree *avl.Tree[K, V]) error {
	list := element(atom.Ul, html.Attribute{Key: "class", Val: "avl"})
	if !tree.IsEmpty() {
		list.AppendChild(nodeItem(tree.Root()))
	}
	return html.Render(w, list)
}

func nodeItem[K, V any](h avl.Handle[K, V]) *html.Node {
	if h.IsEnd() {
		return element(atom.Li, html.Attribute{Key: "class", Val: "empty"})
	}
	li := element(atom.Li,
		html.Attribute{Key: "class", Val: balanceClass(h.Balance())},
		html.Attribute{Key: "data-height", Val: strconv.Itoa(h.Height())},
		html.Attribute{Key: "data-balance", Val: strconv.Itoa(h.Balance())},
	)
	li.AppendChild(&html.Node{Type: html.TextNode, Data: fmt.Sprint(h.Key())})
	if h.Height() > 1 {
		children := element(atom.Ul)
		children.AppendChild(nodeItem(h.Left()))
		children.AppendChild(nodeItem(h.Right()))
		li.AppendChild(children)
	}
	return li
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func balanceClass(bf int) string {
	switch {
	case bf > 0:
		return "left-heavy"
	case bf < 0:
		return "right-heavy"
	}
	return "balanced"
}
