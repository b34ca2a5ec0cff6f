package display

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/ordered/avl"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config configures console output of trees.
type Config struct {
	LineWidth     int            // maximum line length in fixed width ‘en’s
	MaxLabelWidth int            // labels are cut to this width; 0 means no limit
	Indent        int            // indentation per tree level
	Context       *uax11.Context // context for measuring label widths
	// Palette maps balance factors to colors. Balance factors missing from
	// the palette are printed uncolored.
	Palette map[int]*color.Color
}

var setupGraphemes sync.Once

func (config *Config) normalized() *Config {
	c := Config{}
	if config != nil {
		c = *config
	}
	if c.LineWidth <= 0 {
		c.LineWidth = 65
	}
	if c.Indent <= 0 {
		c.Indent = 4
	}
	if c.Context == nil {
		c.Context = uax11.LatinContext
	}
	if c.Palette == nil {
		c.Palette = makeDefaultPalette()
	}
	return &c
}

func makeDefaultPalette() map[int]*color.Color {
	palette := map[int]*color.Color{
		-1: color.New(color.FgYellow),
		1:  color.New(color.FgYellow),
		-2: color.New(color.FgRed),
		2:  color.New(color.FgRed),
	}
	return palette
}

// Fprint draws tree sideways to w: the root is at the left margin, right
// subtrees are printed above and left subtrees below their parent. Every
// node is labeled with its key and balance factor.
//
// If config is nil, defaults for a 65-en wide Latin console are used.
func Fprint[K, V any](w io.Writer, tree *avl.Tree[K, V], config *Config) error {
	config = config.normalized()
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	if tree.IsEmpty() {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	var err error
	var walk func(h avl.Handle[K, V], depth int)
	walk = func(h avl.Handle[K, V], depth int) {
		if h.IsEnd() || err != nil {
			return
		}
		walk(h.Right(), depth+1)
		err = printNode(w, h, depth, config)
		walk(h.Left(), depth+1)
	}
	walk(tree.Root(), 0)
	if err != nil {
		tracer().Errorf("display: %s", err.Error())
	}
	return err
}

func printNode[K, V any](w io.Writer, h avl.Handle[K, V], depth int, config *Config) error {
	indent := min(depth*config.Indent, config.LineWidth)
	room := config.LineWidth - indent
	if config.MaxLabelWidth > 0 {
		room = min(room, config.MaxLabelWidth)
	}
	label := cutToWidth(fmt.Sprint(h.Key()), room, config.Context)
	if _, err := io.WriteString(w, strings.Repeat(" ", indent)+label); err != nil {
		return err
	}
	bf := fmt.Sprintf(" [%+d]", h.Balance())
	if c, ok := config.Palette[h.Balance()]; ok {
		if _, err := c.Fprint(w, bf); err != nil {
			return err
		}
	} else if _, err := io.WriteString(w, bf); err != nil {
		return err
	}
	_, err := io.WriteString(w, "\n")
	return err
}

// cutToWidth returns the longest prefix of s, cut at grapheme boundaries,
// which fits into width ‘en’s.
func cutToWidth(s string, width int, context *uax11.Context) string {
	gstr := grapheme.StringFromString(s)
	if uax11.StringWidth(gstr, context) <= width {
		return s
	}
	var sb strings.Builder
	used := 0
	for i := 0; i < gstr.Len(); i++ {
		g := gstr.Nth(i)
		gw := uax11.StringWidth(grapheme.StringFromString(g), context)
		if used+gw > width {
			break
		}
		sb.WriteString(g)
		used += gw
	}
	return sb.String()
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a console Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly.
func ConfigFromTerminal() *Config {
	config := &Config{}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		w, _, err := term.GetSize(fd)
		if err != nil || w <= 10 {
			config.LineWidth = 65
		} else {
			config.LineWidth = w - 1
		}
	} else {
		config.LineWidth = 65
	}
	config.Context = uax11.ContextFromEnvironment()
	tracer().P("display", "console").Infof("setting line length to %d en", config.LineWidth)
	return config.normalized()
}
