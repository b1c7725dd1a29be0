// Package style colors rendered exports for terminal output.
package style

import (
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/arthur-debert/exporter/pkg/config"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// markerPattern only matches markers in value position: at the start of a
// line or right after "=> ". Quoted string contents never start there.
// Groups: 1 reference key, 2 recursion marker, 3 binary prefix.
var markerPattern = regexp.MustCompile(`(?m)(?:^|=> )(?:(?:Array|\S+ Object) (&\d+)|(\*RECURSION\*)|(Binary String:))`)

// ShouldColor reports whether output written to w gets colored under the
// given output.color mode.
func ShouldColor(mode string, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Highlighter styles the markers of an export: reference keys, recursion
// markers and binary string prefixes. Everything else passes through.
type Highlighter struct {
	enabled   bool
	reference lipgloss.Style
	recursion lipgloss.Style
	muted     lipgloss.Style
}

// NewHighlighter builds a Highlighter for output going to w.
func NewHighlighter(w io.Writer, mode string) *Highlighter {
	r := lipgloss.NewRenderer(w)
	if mode == config.ColorAlways {
		// Pipes and buffers detect as Ascii and would drop every style.
		r.SetColorProfile(termenv.ANSI256)
	}

	return &Highlighter{
		enabled:   ShouldColor(mode, w),
		reference: r.NewStyle().Foreground(ReferenceColor).Bold(true),
		recursion: r.NewStyle().Foreground(RecursionColor).Bold(true),
		muted:     r.NewStyle().Foreground(MutedColor).Italic(true),
	}
}

// Enabled reports whether Highlight changes its input.
func (h *Highlighter) Enabled() bool {
	return h.enabled
}

// Highlight returns text with its markers styled.
func (h *Highlighter) Highlight(text string) string {
	if !h.enabled {
		return text
	}

	styles := []lipgloss.Style{h.reference, h.recursion, h.muted}
	var b strings.Builder
	last := 0
	for _, m := range markerPattern.FindAllStringSubmatchIndex(text, -1) {
		for g, style := range styles {
			start, end := m[2+2*g], m[3+2*g]
			if start < 0 {
				continue
			}
			b.WriteString(text[last:start])
			b.WriteString(style.Render(text[start:end]))
			last = end
		}
	}
	b.WriteString(text[last:])
	return b.String()
}
