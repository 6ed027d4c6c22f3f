package format

// Writer accumulates output. In compact mode Space and Newline write
// nothing; Token still separates tokens that would otherwise merge.
type Writer struct {
	opt         Options
	buf         []byte
	indentLevel int
	atLineStart bool
}

func NewWriter(opt Options) *Writer {
	return &Writer{
		opt: opt.withDefaults(),
		buf: make([]byte, 0, 256),
	}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

func (w *Writer) String() string {
	return string(w.buf)
}

func (w *Writer) writeIndent() {
	if !w.atLineStart {
		return
	}
	for range w.indentLevel * w.opt.IndentWidth {
		w.buf = append(w.buf, ' ')
	}
	w.atLineStart = false
}

// Token writes s, inserting a single space when the previous byte and the
// first byte of s would read as one token.
func (w *Writer) Token(s string) {
	if s == "" {
		return
	}
	w.writeIndent()
	if n := len(w.buf); n > 0 && needsSep(w.buf[n-1], s[0]) {
		w.buf = append(w.buf, ' ')
	}
	w.buf = append(w.buf, s...)
}

// WriteByte writes one punctuation byte.
func (w *Writer) WriteByte(b byte) error {
	w.Token(string(b))
	return nil
}

// Space writes a space in pretty mode unless the output already ends with
// whitespace.
func (w *Writer) Space() {
	if !w.opt.Pretty || len(w.buf) == 0 || w.atLineStart {
		return
	}
	last := w.buf[len(w.buf)-1]
	if last == ' ' || last == '\n' {
		return
	}
	w.buf = append(w.buf, ' ')
}

// Newline ends the current line in pretty mode.
func (w *Writer) Newline() {
	if !w.opt.Pretty {
		return
	}
	if len(w.buf) > 0 && w.buf[len(w.buf)-1] != '\n' {
		w.buf = append(w.buf, '\n')
	}
	w.atLineStart = true
}

func (w *Writer) IndentPush() {
	w.indentLevel++
}

func (w *Writer) IndentPop() {
	if w.indentLevel > 0 {
		w.indentLevel--
	}
}
