package avl

import (
	"strings"
	"testing"
)

func TestToDot(t *testing.T) {
	tree := buildIntTree(t, 2, 1, 3, 4)
	var sb strings.Builder
	if err := ToDot(tree, &sb); err != nil {
		t.Fatal(err)
	}
	out := sb.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("unexpected DOT framing: %q", out)
	}
	if got := strings.Count(out, "->"); got != 4 {
		t.Errorf("expected 3 edges plus 1 empty-child edge, got %d", got)
	}
	if !strings.Contains(out, `label="4\nh=1 b=0"`) {
		t.Errorf("expected leaf label for 4, output is\n%s", out)
	}
}

func TestToDotEmptySlotsDoNotCollide(t *testing.T) {
	tree := NewOrdered[int, struct{}]()
	for i := range 200 {
		tree.Insert(i, struct{}{})
	}
	tree.Delete(0)
	var sb strings.Builder
	if err := ToDot(tree, &sb); err != nil {
		t.Fatal(err)
	}
	declared := make(map[string]int)
	for _, line := range strings.Split(sb.String(), "\n") {
		if strings.HasPrefix(line, "\"") && !strings.Contains(line, "->") {
			declared[line[:strings.Index(line[1:], "\"")+2]]++
		}
	}
	for id, n := range declared {
		if n > 1 {
			t.Errorf("node %s declared %d times", id, n)
		}
	}
	if !strings.Contains(sb.String(), `"nil`) {
		t.Errorf("expected at least one empty child slot")
	}
}
