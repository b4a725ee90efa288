package hexdisplay

import (
	"database/sql/driver"
	"fmt"
	"io"
	"strings"
)

// Bytes is a byte slice that knows how to present itself as hex.
// It marshals as lower-case hex text and unmarshals with Decode.
type Bytes []byte

// Hex returns a lower-case view of b.
func (b Bytes) Hex() Hex {
	return New(b)
}

// UpperHex returns an upper-case view of b.
func (b Bytes) UpperHex() Hex {
	return NewUpper(b)
}

// HexString returns the lower-case hex encoding of b.
func (b Bytes) HexString() string {
	return New(b).String()
}

// UpperHexString returns the upper-case hex encoding of b.
func (b Bytes) UpperHexString() string {
	return NewUpper(b).String()
}

// String returns the lower-case hex encoding of b.
func (b Bytes) String() string {
	return b.HexString()
}

// GoString returns a Go expression that rebuilds b, used by %#v.
func (b Bytes) GoString() string {
	if b == nil {
		return "hexdisplay.Bytes(nil)"
	}
	var sb strings.Builder
	sb.WriteString("hexdisplay.Bytes{")
	for i, v := range b {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString("0x")
		sb.WriteByte(lowerDigits[v>>4])
		sb.WriteByte(lowerDigits[v&0x0f])
	}
	sb.WriteByte('}')
	return sb.String()
}

// Format renders %s, %v, %x, %X and %q as a lower-case Hex view would, so %x
// prints the bytes rather than hex-encoding the result of String. %#v prints
// GoString and every other verb formats b as a plain []byte.
func (b Bytes) Format(f fmt.State, verb rune) {
	switch verb {
	case 'v':
		if f.Flag('#') {
			io.WriteString(f, b.GoString())
			return
		}
		New(b).Format(f, verb)
	case 's', 'x', 'X', 'q':
		New(b).Format(f, verb)
	default:
		fmt.Fprintf(f, fmt.FormatString(f, verb), []byte(b))
	}
}

// MarshalText implements encoding.TextMarshaler, also used for JSON encoding.
func (b Bytes) MarshalText() ([]byte, error) {
	return New(b).MarshalText()
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bytes) UnmarshalText(text []byte) error {
	decoded, err := Decode(string(text))
	if err != nil {
		return fmt.Errorf("failed to unmarshal hex: %w", err)
	}
	*b = decoded
	return nil
}

// Value implements the driver.Valuer interface for SQL database support.
// Returns the lower-case hex text for storage in a TEXT column.
func (b Bytes) Value() (driver.Value, error) {
	return b.HexString(), nil
}

// Scan implements the sql.Scanner interface for SQL database support.
// Accepts hex text as string or []byte.
func (b *Bytes) Scan(value interface{}) error {
	if value == nil {
		*b = nil
		return nil
	}

	var text string
	switch v := value.(type) {
	case string:
		text = v
	case []byte:
		text = string(v)
	default:
		return fmt.Errorf("cannot scan type %T into Bytes", value)
	}

	decoded, err := Decode(text)
	if err != nil {
		return fmt.Errorf("failed to scan hex: %w", err)
	}
	*b = decoded
	return nil
}
