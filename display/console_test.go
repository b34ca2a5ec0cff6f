package display

import (
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/npillmayer/ordered/avl"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

func TestFprintSideways(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	color.NoColor = true
	//
	tree := avl.NewOrdered[int, struct{}]()
	for _, k := range []int{2, 1, 3, 4} {
		tree.Insert(k, struct{}{})
	}
	var sb strings.Builder
	if err := Fprint(&sb, tree, nil); err != nil {
		t.Fatal(err)
	}
	t.Logf("\n%s", sb.String())
	lines := strings.Split(strings.TrimRight(sb.String(), "\n"), "\n")
	want := []string{
		"        4 [+0]",
		"    3 [-1]",
		"2 [-1]",
		"    1 [+0]",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: expected %q, got %q", i, want[i], lines[i])
		}
	}
}

func TestFprintEmptyTree(t *testing.T) {
	var sb strings.Builder
	if err := Fprint(&sb, avl.NewOrdered[string, int](), nil); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "(empty)\n" {
		t.Errorf("unexpected output %q", sb.String())
	}
}

func TestFprintCutsLongLabels(t *testing.T) {
	color.NoColor = true
	tree := avl.NewOrdered[string, struct{}]()
	tree.Insert("abcdefghij", struct{}{})
	var sb strings.Builder
	if err := Fprint(&sb, tree, &Config{MaxLabelWidth: 4}); err != nil {
		t.Fatal(err)
	}
	if sb.String() != "abcd [+0]\n" {
		t.Errorf("unexpected output %q", sb.String())
	}
}

func TestCutToWidthKeepsShortStrings(t *testing.T) {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if s := cutToWidth("héllo", 10, uax11.LatinContext); s != "héllo" {
		t.Errorf("expected unchanged label, got %q", s)
	}
}

func TestConfigFromTerminal(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "ordered")
	defer teardown()
	//
	config := ConfigFromTerminal()
	if config.LineWidth <= 0 || config.Context == nil || config.Palette == nil {
		t.Fatalf("expected normalized config, got %+v", config)
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) && config.LineWidth != 65 {
		t.Errorf("expected 65 en line width without a terminal, got %d", config.LineWidth)
	}
}
