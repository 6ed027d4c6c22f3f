package diagfmt

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"jsmin/internal/diag"
	"jsmin/internal/source"
)

type palette struct {
	err, warn, info, code, gutter, caret, note *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		err:    color.New(color.FgRed, color.Bold),
		warn:   color.New(color.FgYellow, color.Bold),
		info:   color.New(color.FgCyan, color.Bold),
		code:   color.New(color.Bold),
		gutter: color.New(color.FgBlue),
		caret:  color.New(color.FgGreen, color.Bold),
		note:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.err, p.warn, p.info, p.code, p.gutter, p.caret, p.note} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	default:
		return p.info
	}
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
//
//	<path>:<line>:<col>: <SEV> <CODE>: <Message>
//	   3 | let x = "abc
//	     |         ^~~~
//
// Notes follow in the same shape when ShowNotes is set.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	if bag == nil {
		return
	}
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		f := fs.Get(d.Primary.File)
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			displayPath(fs, f, opts.PathMode), start.Line, start.Col,
			p.severity(d.Severity).Sprint(d.Severity.String()),
			p.code.Sprint(d.Code.ID()),
			d.Message)
		if f != nil {
			snippet(w, fs, f, d.Primary, int(opts.Context), p)
		}
		if !opts.ShowNotes {
			continue
		}
		for _, n := range d.Notes {
			nf := fs.Get(n.Span.File)
			ns, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.note.Sprint("note:"),
				displayPath(fs, nf, opts.PathMode), ns.Line, ns.Col, n.Msg)
			if nf != nil {
				snippet(w, fs, nf, n.Span, 0, p)
			}
		}
	}
}

// snippet prints the primary line with context and an underline. Columns
// are measured in display cells so wide runes keep the caret aligned.
func snippet(w io.Writer, fs *source.FileSet, f *source.File, sp source.Span, ctx int, p palette) {
	start, end := fs.Resolve(sp)
	if start.Line == 0 {
		return
	}
	first := max(1, int(start.Line)-ctx)
	last := int(start.Line) + ctx
	width := len(strconv.Itoa(last))

	for ln := first; ln <= last; ln++ {
		text, ok := lineText(f, ln)
		if !ok {
			break
		}
		text = expandTabs(text)
		fmt.Fprintf(w, "%s %s\n", p.gutter.Sprintf("%*d |", width, ln), text)
		if ln != int(start.Line) {
			continue
		}
		raw, _ := lineText(f, ln)
		from := int(start.Col) - 1
		to := len(raw)
		if end.Line == start.Line {
			to = int(end.Col) - 1
		}
		from = min(from, len(raw))
		to = min(max(to, from), len(raw))
		pad := runewidth.StringWidth(expandTabs(raw[:from]))
		n := max(1, runewidth.StringWidth(expandTabs(raw[from:to])))
		mark := "^" + strings.Repeat("~", n-1)
		fmt.Fprintf(w, "%s %s%s\n", p.gutter.Sprintf("%*s |", width, ""), strings.Repeat(" ", pad), p.caret.Sprint(mark))
	}
}

func lineText(f *source.File, ln int) (string, bool) {
	if ln < 1 || ln > len(f.LineIdx)+1 {
		return "", false
	}
	return f.GetLine(uint32(ln)), true //nolint:gosec // bounded by LineIdx
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}
