package yamlite

import (
	"io"
	"reflect"
	"strconv"
	"strings"
)

// Value constrains the element types accepted by the sequence writers.
// Numeric kinds are written in their natural unquoted form; string
// kinds pass through the scalar encoder.
type Value interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// SafeScalar returns scalar in a textual form safe to embed: verbatim
// when the classifier reports no special characters, otherwise wrapped
// in single quotes, or double quotes when the scalar itself contains a
// literal single quote. A scalar containing both quote kinds cannot be
// represented without escapes; SafeScalar returns a best-effort
// double-quoted form for it, while QuoteScalar reports the condition
// as an error.
func SafeScalar(scalar string) string {
	s, _ := quoteScalar(scalar)
	return s
}

// QuoteScalar is SafeScalar with the unrepresentable case made
// explicit: it returns ErrMixedQuotes when scalar contains both a
// literal single quote and a literal double quote.
func QuoteScalar(scalar string) (string, error) {
	s, mixed := quoteScalar(scalar)
	if mixed {
		return "", ErrMixedQuotes
	}
	return s, nil
}

func quoteScalar(scalar string) (quoted string, mixed bool) {
	sp := SpecialChars(scalar)
	if !sp.HasSpecial {
		return scalar, false
	}
	quote := byte('\'')
	if sp.FirstSingleQuote >= 0 {
		quote = '"'
		mixed = sp.FirstDoubleQuote >= 0
	}
	var b strings.Builder
	b.Grow(len(scalar) + 2)
	b.WriteByte(quote)
	b.WriteString(scalar)
	b.WriteByte(quote)
	return b.String(), mixed
}

// KeyValue composes a "tag: value" line with the scalar safely encoded.
func KeyValue(tag, scalar string) string {
	return tag + ": " + SafeScalar(scalar) + "\n"
}

// Sequence composes a flow sequence such as "[first, second, third]".
// An empty slice yields "[]".
func Sequence[V Value](elems []V) string {
	if len(elems) == 0 {
		return "[]"
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(encodeElem(e))
	}
	b.WriteByte(']')
	return b.String()
}

// KeyValueSeq composes a "tag: [e1, e2]" line.
func KeyValueSeq[V Value](tag string, elems []V) string {
	return tag + ": " + Sequence(elems) + "\n"
}

func encodeElem[V Value](e V) string {
	v := reflect.ValueOf(e)
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10)
	case reflect.Float32:
		return strconv.FormatFloat(v.Float(), 'g', -1, 32)
	case reflect.Float64:
		return strconv.FormatFloat(v.Float(), 'g', -1, 64)
	default:
		return SafeScalar(v.String())
	}
}

// Encoder writes composed lines to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// KeyValue writes a "tag: value" line to the stream.
func (e *Encoder) KeyValue(tag, scalar string) error {
	_, err := io.WriteString(e.w, KeyValue(tag, scalar))
	return err
}

// EncodeKeyValueSeq writes a "tag: [e1, e2]" line to enc.
func EncodeKeyValueSeq[V Value](enc *Encoder, tag string, elems []V) error {
	_, err := io.WriteString(enc.w, KeyValueSeq(tag, elems))
	return err
}
