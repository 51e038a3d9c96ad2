package formatter

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/npillmayer/omap/btree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"github.com/xlab/treeprint"
	"golang.org/x/term"
)

// Config configures tree output.
type Config struct {
	LineWidth int            // maximum display width of a node label, in en; 0 means unlimited
	Colored   bool           // color nodes by tree level
	Context   *uax11.Context // context for character widths; nil means uax11.LatinContext
}

// ConfigFromTerminal is a simple helper for creating an output Config.
// It checks whether stdout is a terminal, and if so it reads the terminal's
// width, sets Config.LineWidth accordingly and switches on colors.
func ConfigFromTerminal() *Config {
	config := &Config{LineWidth: 65}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		config.Colored = true
		if w, _, err := term.GetSize(fd); err == nil {
			if w > 65 {
				config.LineWidth = w - 10
			} else if w > 30 {
				config.LineWidth = w - 5
			} else if w > 10 {
				config.LineWidth = w
			} else {
				config.LineWidth = 10
			}
		}
	}
	tracer().Infof("setting label width to %d en", config.LineWidth)
	return config
}

// Print outputs the tree structure below root to stdout.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties. Config.Context will also be created based
// on heuristics from the user environment.
func Print[K any](root *btree.NodeInfo[K], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
		config.Context = uax11.ContextFromEnvironment()
	}
	return Write(os.Stdout, root, config)
}

// Write outputs the tree structure below root to w. root may be nil for an
// empty tree.
func Write[K any](w io.Writer, root *btree.NodeInfo[K], config *Config) error {
	if config == nil {
		config = &Config{}
	}
	if root == nil {
		_, err := io.WriteString(w, "<empty>\n")
		return err
	}
	p := newPrinter[K](config)
	tree := treeprint.NewWithRoot(p.label(root))
	p.addChildren(tree, root)
	_, err := w.Write(tree.Bytes())
	return err
}

// --- Node labels -----------------------------------------------------------

var setupGraphemes sync.Once

type printer[K any] struct {
	config  *Config
	context *uax11.Context
	palette []*color.Color // one color per depth, leaves use the last one
}

func newPrinter[K any](config *Config) *printer[K] {
	setupGraphemes.Do(func() { grapheme.SetupGraphemeClasses() })
	p := &printer[K]{config: config, context: config.Context}
	if p.context == nil {
		p.context = uax11.LatinContext
	}
	if config.Colored {
		p.palette = makeDefaultPalette()
	}
	return p
}

func makeDefaultPalette() []*color.Color {
	palette := []*color.Color{
		color.New(color.FgBlue),
		color.New(color.FgMagenta),
		color.New(color.FgCyan),
		color.New(color.FgGreen),
	}
	for _, c := range palette {
		c.EnableColor() // independent of color.NoColor
	}
	return palette
}

func (p *printer[K]) addChildren(tree treeprint.Tree, node *btree.NodeInfo[K]) {
	for _, child := range node.Children {
		if child.Leaf {
			tree.AddNode(p.label(child))
			continue
		}
		p.addChildren(tree.AddBranch(p.label(child)), child)
	}
}

// label formats the keys of a node. If the label would exceed the configured
// line width, trailing keys are replaced by an ellipsis.
func (p *printer[K]) label(node *btree.NodeInfo[K]) string {
	open, closing := "(", ")"
	if node.Leaf {
		open, closing = "[", "]"
	}
	var sb strings.Builder
	sb.WriteString(open)
	width := 2
	for i, key := range node.Keys {
		s := fmt.Sprint(key)
		if i > 0 {
			s = " " + s
		}
		w := p.width(s)
		if limit := p.config.LineWidth; limit > 0 && width+w > limit && i > 0 {
			sb.WriteString(" …")
			break
		}
		sb.WriteString(s)
		width += w
	}
	sb.WriteString(closing)
	if p.palette == nil {
		return sb.String()
	}
	depth := node.Depth
	if node.Leaf || depth >= len(p.palette) {
		depth = len(p.palette) - 1
	}
	return p.palette[depth].Sprint(sb.String())
}

// width returns the display width of s in en. ASCII counts one en per byte;
// uax11 measures everything else, as some contexts widen ambiguous digits.
func (p *printer[K]) width(s string) int {
	w, start := 0, -1
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			w += p.measure(s[start:i])
			start = -1
		}
		w++
	}
	if start >= 0 {
		w += p.measure(s[start:])
	}
	return w
}

func (p *printer[K]) measure(s string) int {
	return uax11.StringWidth(grapheme.StringFromString(s), p.context)
}
