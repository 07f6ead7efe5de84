package errs

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/ib-77/roperr/pkg/rop"
)

// Description is the category reported by every Error regardless of its cause.
const Description = "located error"

// Kind tells which variant of cause an Error holds.
type Kind int

const (
	// KindMessage errors carry a literal message.
	KindMessage Kind = iota
	// KindWrapped errors carry an underlying error.
	KindWrapped
)

func (k Kind) String() string {
	switch k {
	case KindMessage:
		return "message"
	case KindWrapped:
		return "wrapped"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Error is a failure stamped with the file and line it was reported at.
// It is never mutated after construction.
type Error struct {
	file    string
	line    uint
	kind    Kind
	message string
	inner   error
}

// FromMessage builds a leaf Error whose reason is message.
func FromMessage(message, file string, line uint) *Error {
	return &Error{
		file:    file,
		line:    line,
		kind:    KindMessage,
		message: message,
	}
}

// FromCause builds an Error whose reason is inner. A typed nil inner is
// stored as nil.
func FromCause(inner error, file string, line uint) *Error {
	if rop.IsNil(inner) {
		inner = nil
	}
	return &Error{
		file:  file,
		line:  line,
		kind:  KindWrapped,
		inner: inner,
	}
}

func (e *Error) File() string {
	return e.file
}

func (e *Error) Line() uint {
	return e.line
}

func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns the literal message of a KindMessage error and "" otherwise.
func (e *Error) Message() string {
	return e.message
}

// Inner returns the wrapped error of a KindWrapped error and nil otherwise.
func (e *Error) Inner() error {
	return e.inner
}

func (e *Error) Description() string {
	return Description
}

// Cause returns the upstream cause one level further back. Message errors
// have none. Wrapped errors delegate to the inner error's own Cause method,
// or to its Unwrap method when it has no Cause, so a chain made only of
// Errors reports nil at every level.
func (e *Error) Cause() error {
	if e.kind == KindMessage {
		return nil
	}
	switch inner := e.inner.(type) {
	case interface{ Cause() error }:
		return inner.Cause()
	case interface{ Unwrap() error }:
		return inner.Unwrap()
	default:
		return nil
	}
}

// Unwrap exposes the inner error to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.inner
}

func (e *Error) Error() string {
	var sb strings.Builder
	_, _ = e.WriteTo(&sb)
	return sb.String()
}

// WriteTo renders e as <error><file/><line/><reason/></error> markup. Reasons
// are written verbatim without escaping.
func (e *Error) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: w}
	cw.write("<error><file>")
	cw.write(e.file)
	cw.write("</file><line>")
	cw.write(strconv.FormatUint(uint64(e.line), 10))
	cw.write("</line><reason>")
	e.writeReason(cw)
	cw.write("</reason></error>")
	return cw.n, cw.err
}

func (e *Error) writeReason(cw *countingWriter) {
	switch {
	case e.kind == KindMessage:
		cw.write(e.message)
	case e.inner == nil:
		cw.write("<nil>")
	default:
		if inner, ok := e.inner.(*Error); ok {
			if cw.err == nil {
				_, _ = inner.WriteTo(cw)
			}
			return
		}
		cw.write(e.inner.Error())
	}
}

// Format implements fmt.Formatter. %s, %v and %q print the markup,
// %+v prints it indented one element per line.
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			var sb strings.Builder
			e.writeIndented(&sb, 0)
			_, _ = io.WriteString(s, sb.String())
			return
		}
		_, _ = e.WriteTo(s)
	case 's':
		_, _ = e.WriteTo(s)
	case 'q':
		_, _ = io.WriteString(s, strconv.Quote(e.Error()))
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(*errs.Error=%s)", verb, e.Error())
	}
}

func (e *Error) writeIndented(sb *strings.Builder, depth int) {
	pad := strings.Repeat("    ", depth)
	sb.WriteString(pad + "<error>\n")
	sb.WriteString(pad + "    <file>" + e.file + "</file>\n")
	sb.WriteString(pad + "    <line>" + strconv.FormatUint(uint64(e.line), 10) + "</line>\n")

	inner, nested := e.inner.(*Error)
	if e.kind == KindWrapped && nested {
		sb.WriteString(pad + "    <reason>\n")
		inner.writeIndented(sb, depth+2)
		sb.WriteString(pad + "    </reason>\n")
	} else {
		var reason strings.Builder
		e.writeReason(&countingWriter{w: &reason})
		sb.WriteString(pad + "    <reason>" + reason.String() + "</reason>\n")
	}
	sb.WriteString(pad + "</error>")
	if depth > 0 {
		sb.WriteString("\n")
	}
}

// LogValue implements slog.LogValuer.
func (e *Error) LogValue() slog.Value {
	reason := e.message
	if e.kind == KindWrapped {
		var sb strings.Builder
		e.writeReason(&countingWriter{w: &sb})
		reason = sb.String()
	}
	return slog.GroupValue(
		slog.String("file", e.file),
		slog.Uint64("line", uint64(e.line)),
		slog.String("kind", e.kind.String()),
		slog.String("reason", reason),
	)
}

// countingWriter stops writing after the first error.
type countingWriter struct {
	w   io.Writer
	n   int64
	err error
}

func (c *countingWriter) Write(p []byte) (int, error) {
	if c.err != nil {
		return 0, c.err
	}
	n, err := c.w.Write(p)
	c.n += int64(n)
	c.err = err
	return n, err
}

func (c *countingWriter) write(s string) {
	if c.err != nil {
		return
	}
	_, _ = io.WriteString(c, s)
}
