// Package hexdisplay renders byte slices as hexadecimal text through the
// standard fmt, io, encoding, log/slog and database/sql interfaces.
package hexdisplay

import (
	"database/sql/driver"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"
)

const (
	lowerDigits = "0123456789abcdef"
	upperDigits = "0123456789ABCDEF"

	// chunkSize is the size of the scratch buffer WriteTo renders into before flushing.
	chunkSize = 512
)

// chunkPool holds WriteTo scratch buffers; a local array would escape through w.Write.
var chunkPool = sync.Pool{
	New: func() any { return new([chunkSize]byte) },
}

var (
	quoteMark = []byte{'"'}
	spaceFill = []byte("                                ")
	zeroFill  = []byte("00000000000000000000000000000000")
)

// Case selects whether letter digits render as a-f or A-F.
type Case uint8

const (
	// Lower renders letter digits as a-f.
	Lower Case = iota

	// Upper renders letter digits as A-F.
	Upper
)

// String returns "lower" or "upper".
func (c Case) String() string {
	if c == Upper {
		return "upper"
	}
	return "lower"
}

// Hex is a read-only hexadecimal view over a byte slice.
// It borrows the slice and never copies or mutates it, so the bytes must not
// change while the view is being rendered.
//
// Rendering N bytes always produces exactly 2N digits, most significant nibble
// first, with no separators or prefix:
//
//	fmt.Sprint(hexdisplay.New([]byte{0x01, 0xab})) // "01ab"
//	fmt.Sprintf("%X", hexdisplay.New([]byte{0x01, 0xab})) // "01AB"
type Hex struct {
	b     []byte
	upper bool
}

// New wraps b in a lower-case view.
func New(b []byte) Hex {
	return Hex{b: b}
}

// NewUpper wraps b in an upper-case view.
func NewUpper(b []byte) Hex {
	return Hex{b: b, upper: true}
}

// Of wraps b in a view of the given case.
func Of(b []byte, c Case) Hex {
	return Hex{b: b, upper: c == Upper}
}

// Upper returns an upper-case view of the same bytes.
func (h Hex) Upper() Hex {
	h.upper = true
	return h
}

// Lower returns a lower-case view of the same bytes.
func (h Hex) Lower() Hex {
	h.upper = false
	return h
}

// Case reports the case the view renders in.
func (h Hex) Case() Case {
	if h.upper {
		return Upper
	}
	return Lower
}

// Bytes returns the wrapped slice. It is not a copy.
func (h Hex) Bytes() []byte {
	return h.b
}

// EncodedLen returns the length of the rendering in bytes.
func (h Hex) EncodedLen() int {
	return len(h.b) * 2
}

func (h Hex) digits() string {
	if h.upper {
		return upperDigits
	}
	return lowerDigits
}

// encode writes the digits of src into dst, which must hold 2*len(src) bytes.
func encode(dst, src []byte, digits string) {
	for i, v := range src {
		dst[i*2] = digits[v>>4]
		dst[i*2+1] = digits[v&0x0f]
	}
}

// WriteTo renders the view into w. It stops at the first failed write and
// returns that error unchanged along with the number of bytes written so far.
// A short write without an error is reported as io.ErrShortWrite.
func (h Hex) WriteTo(w io.Writer) (int64, error) {
	if len(h.b) == 0 {
		return 0, nil
	}

	buf := chunkPool.Get().(*[chunkSize]byte)
	defer chunkPool.Put(buf)
	digits := h.digits()

	var written int64
	src := h.b
	for len(src) > 0 {
		n := min(len(src), chunkSize/2)
		encode(buf[:], src[:n], digits)

		m, err := w.Write(buf[:n*2])
		written += int64(m)
		if err != nil {
			return written, err
		}
		if m != n*2 {
			return written, io.ErrShortWrite
		}
		src = src[n:]
	}
	return written, nil
}

// AppendText appends the rendering to dst. The error is always nil.
func (h Hex) AppendText(dst []byte) ([]byte, error) {
	n := len(dst)
	dst = append(dst, make([]byte, h.EncodedLen())...)
	encode(dst[n:], h.b, h.digits())
	return dst, nil
}

// String returns the rendering in the view's case.
func (h Hex) String() string {
	var sb strings.Builder
	sb.Grow(h.EncodedLen())
	digits := h.digits()
	for _, v := range h.b {
		sb.WriteByte(digits[v>>4])
		sb.WriteByte(digits[v&0x0f])
	}
	return sb.String()
}

// LowerString returns the lower-case rendering regardless of the view's case.
func (h Hex) LowerString() string {
	return h.Lower().String()
}

// UpperString returns the upper-case rendering regardless of the view's case.
func (h Hex) UpperString() string {
	return h.Upper().String()
}

// GoString returns a Go expression that rebuilds the view, used by %#v.
func (h Hex) GoString() string {
	var sb strings.Builder
	if h.upper {
		sb.WriteString("hexdisplay.NewUpper(")
	} else {
		sb.WriteString("hexdisplay.New(")
	}
	if h.b == nil {
		sb.WriteString("nil)")
		return sb.String()
	}
	sb.WriteString("[]byte{")
	for i, v := range h.b {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("0x")
		sb.WriteByte(lowerDigits[v>>4])
		sb.WriteByte(lowerDigits[v&0x0f])
	}
	sb.WriteString("})")
	return sb.String()
}

// Format implements fmt.Formatter.
//
// %s, %v and %+v render in the view's case, %x forces lower case and %X forces
// upper case. %q quotes the rendering and %#v prints GoString. A width pads
// with spaces on the left, or on the right with the '-' flag; the '0' flag pads
// with zeros.
func (h Hex) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			io.WriteString(f, h.GoString())
			return
		}
		h.pad(f, false)
	case 's':
		h.pad(f, false)
	case 'x':
		h.Lower().pad(f, false)
	case 'X':
		h.Upper().pad(f, false)
	case 'q':
		h.pad(f, true)
	default:
		fmt.Fprintf(f, "%%!%c(hexdisplay.Hex=%s)", verb, h.LowerString())
	}
}

// pad renders h into f honoring width and the '-' and '0' flags.
// With quoted set the digits are wrapped in double quotes.
func (h Hex) pad(f fmt.State, quoted bool) {
	n := h.EncodedLen()
	if quoted {
		n += 2
	}

	width, ok := f.Width()
	fill := width - n
	if !ok || fill <= 0 {
		h.writeQuoted(f, quoted)
		return
	}

	if f.Flag('-') {
		h.writeQuoted(f, quoted)
		writeFill(f, spaceFill, fill)
		return
	}

	if f.Flag('0') {
		writeFill(f, zeroFill, fill)
	} else {
		writeFill(f, spaceFill, fill)
	}
	h.writeQuoted(f, quoted)
}

func (h Hex) writeQuoted(w io.Writer, quoted bool) {
	if !quoted {
		h.WriteTo(w)
		return
	}
	w.Write(quoteMark)
	h.WriteTo(w)
	w.Write(quoteMark)
}

// writeFill writes n bytes of fill, which is a run of one repeated byte.
func writeFill(w io.Writer, fill []byte, n int) {
	for n > 0 {
		k := min(n, len(fill))
		w.Write(fill[:k])
		n -= k
	}
}

// MarshalText implements encoding.TextMarshaler, also used for JSON encoding.
func (h Hex) MarshalText() ([]byte, error) {
	return h.AppendText(make([]byte, 0, h.EncodedLen()))
}

// LogValue implements slog.LogValuer. Handlers only render the view when the
// record is actually emitted.
func (h Hex) LogValue() slog.Value {
	return slog.StringValue(h.String())
}

// Value implements the driver.Valuer interface for SQL database support.
// The view is stored as its rendering in a TEXT column.
func (h Hex) Value() (driver.Value, error) {
	return h.String(), nil
}
