package presenter

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"lograt/src/internal/core"
)

// WidthFn reports the current terminal width; ok is false when the output
// is not attached to a terminal.
type WidthFn func() (width int, ok bool)

// TermWidth queries the width of stdout.
func TermWidth() (int, bool) {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return 0, false
	}
	return w, true
}

// Printer renders decisions as column-aligned text: a right-aligned tag
// column shown on the first line of each tag group, a styled severity
// badge, and the message hard-wrapped under the header. Rendering never
// fails; overlong input wraps, never errors.
type Printer struct {
	out        io.Writer
	styler     Styler
	width      WidthFn
	tagWidth   int
	headerSize int
}

// NewPrinter creates a printer writing to out. A non-positive tagWidth
// selects the default column width.
func NewPrinter(out io.Writer, styler Styler, width WidthFn, tagWidth int) *Printer {
	if tagWidth <= 0 {
		tagWidth = DefaultTagWidth
	}
	return &Printer{
		out:      out,
		styler:   styler,
		width:    width,
		tagWidth: tagWidth,
		// tag column, space, three-cell badge, space
		headerSize: tagWidth + 1 + 3 + 1,
	}
}

func (p *Printer) ProcessStart(ev core.ProcessEvent) {
	p.announce(fmt.Sprintf("Process %s (%s) created for %s", ev.Package, ev.PID, ev.Target))
}

func (p *Printer) ProcessEnd(ev core.ProcessEvent) {
	p.announce(fmt.Sprintf("Process %s ended for %s", ev.PID, ev.Package))
}

func (p *Printer) LogLine(rec core.LogRecord, newTag bool) {
	displayTag := ""
	if newTag {
		if t, ok := takeLast(rec.Tag, p.tagWidth); ok {
			displayTag = t
		} else {
			displayTag = rec.Tag
		}
	}

	badge := p.styler.StyleFor(rec.Level)(" " + rec.Level.String() + " ")
	meta := p.metaPrefix(rec, newTag, badge)
	body := indentWrap(rec.Message, p.renderWidth(), p.headerSize)

	fmt.Fprintf(p.out, "%s %s %s%s\n", fmtHeader(displayTag, p.tagWidth), badge, meta, body)
}

// announce prints a lifecycle sentence: a separating blank line, a blank
// header field, then the wrapped message.
func (p *Printer) announce(message string) {
	buf := indentWrap(message, p.renderWidth(), p.headerSize)
	fmt.Fprintf(p.out, "\n%s%s\n", fmtHeader("", p.headerSize), buf)
}

// metaPrefix builds the "date=.. time=.. tid=.." block shown when a tag
// group opens, re-indented so the message lands back under the badge
// column. Empty when the record has no long-format metadata or the tag
// repeats.
func (p *Printer) metaPrefix(rec core.LogRecord, newTag bool, badge string) string {
	if !newTag {
		return ""
	}
	var parts []string
	if rec.Date != "" {
		parts = append(parts, "date="+rec.Date)
	}
	if rec.Time != "" {
		parts = append(parts, "time="+rec.Time)
	}
	if rec.TID != "" {
		parts = append(parts, "tid="+rec.TID)
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, " ") + "\n" + strings.Repeat(" ", p.tagWidth+1) + badge + " "
}

// renderWidth is the effective output width: the reported terminal width
// capped at the fixed fallback.
func (p *Printer) renderWidth() int {
	if w, ok := p.width(); ok && w < fallbackWidth {
		return w
	}
	return fallbackWidth
}
