package presenter

import (
	"github.com/charmbracelet/lipgloss"

	"lograt/src/internal/core"
)

// Styler supplies the terminal decoration for a severity badge. The
// printer treats the result as an opaque string to splice into its output;
// it never inspects escape sequences.
type Styler interface {
	StyleFor(level core.Level) func(string) string
}

// TermStyler colors badges from the xterm-256 palette: distinct colors for
// debug, warn and error, a neutral dim style for everything else.
type TermStyler struct {
	debug   lipgloss.Style
	warn    lipgloss.Style
	err     lipgloss.Style
	neutral lipgloss.Style
}

// NewTermStyler builds the default badge palette.
func NewTermStyler() *TermStyler {
	return &TermStyler{
		debug:   lipgloss.NewStyle().Foreground(lipgloss.Color("111")).Bold(true).Reverse(true),
		warn:    lipgloss.NewStyle().Foreground(lipgloss.Color("222")).Bold(true).Reverse(true),
		err:     lipgloss.NewStyle().Foreground(lipgloss.Color("174")).Bold(true).Reverse(true),
		neutral: lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Faint(true).Reverse(true),
	}
}

func (s *TermStyler) StyleFor(level core.Level) func(string) string {
	style := s.neutral
	switch level {
	case core.Debug:
		style = s.debug
	case core.Warn:
		style = s.warn
	case core.Error:
		style = s.err
	}
	return func(badge string) string { return style.Render(badge) }
}

// PlainStyler renders badges without decoration, for piped output and
// tests.
type PlainStyler struct{}

func (PlainStyler) StyleFor(core.Level) func(string) string {
	return func(s string) string { return s }
}
