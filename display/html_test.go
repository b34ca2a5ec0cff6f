package display

import (
	"strings"
	"testing"

	"github.com/npillmayer/ordered/avl"
	"golang.org/x/net/html"
)

func TestToHTMLStructure(t *testing.T) {
	tree := avl.NewOrdered[int, string]()
	for i := range 10 {
		tree.Insert(i, "")
	}
	var sb strings.Builder
	if err := ToHTML(&sb, tree); err != nil {
		t.Fatal(err)
	}
	t.Logf("%s", sb.String())
	doc, err := html.Parse(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatal(err)
	}
	entries, empties := 0, 0
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "li" {
			if attr(n, "class") == "empty" {
				empties++
			} else {
				entries++
				if attr(n, "data-height") == "" {
					t.Errorf("expected data-height on entry")
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)
	if entries != tree.Len() {
		t.Errorf("expected %d entries, found %d", tree.Len(), entries)
	}
	if empties == 0 {
		t.Errorf("expected some empty child slots for 10 entries")
	}
}

func TestToHTMLEmptyTree(t *testing.T) {
	var sb strings.Builder
	if err := ToHTML(&sb, avl.NewOrdered[int, int]()); err != nil {
		t.Fatal(err)
	}
	if sb.String() != `<ul class="avl"></ul>` {
		t.Errorf("unexpected output %q", sb.String())
	}
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
