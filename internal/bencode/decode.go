package bencode

import (
	"fmt"
	"strconv"
)

// SyntaxError reports a grammar violation and the byte offset it was found at.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("bencode: %s at offset %d", e.Msg, e.Offset)
}

type BencodeDecoder struct {
	Data []byte
	Pos  int
}

func NewDecoder(data []byte) *BencodeDecoder {
	return &BencodeDecoder{Data: data, Pos: 0}
}

func (d *BencodeDecoder) errorf(format string, args ...interface{}) error {
	return &SyntaxError{Offset: d.Pos, Msg: fmt.Sprintf(format, args...)}
}

// Decode decodes the value starting at the current position.
func (d *BencodeDecoder) Decode() (Value, error) {
	if d.Pos >= len(d.Data) {
		return nil, d.errorf("unexpected end of data")
	}
	switch c := d.Data[d.Pos]; {
	case c == 'i':
		return d.DecodeInt()
	case c == 'l':
		return d.DecodeList()
	case c == 'd':
		return d.DecodeDict()
	case c >= '0' && c <= '9':
		return d.DecodeString()
	default:
		return nil, d.errorf("invalid value prefix %q", c)
	}
}

// DecodeInt decodes an integer (i<number>e)
func (d *BencodeDecoder) DecodeInt() (Int, error) {
	if d.Pos >= len(d.Data) || d.Data[d.Pos] != 'i' {
		return 0, d.errorf("expected 'i' at start of integer")
	}
	d.Pos++

	start := d.Pos
	for d.Pos < len(d.Data) && d.Data[d.Pos] != 'e' {
		d.Pos++
	}
	if d.Pos >= len(d.Data) {
		return 0, &SyntaxError{Offset: start - 1, Msg: "unterminated integer"}
	}

	numStr := string(d.Data[start:d.Pos])
	if err := checkCanonical(numStr); err != "" {
		return 0, &SyntaxError{Offset: start, Msg: err}
	}
	n, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return 0, &SyntaxError{Offset: start, Msg: fmt.Sprintf("invalid integer %q", numStr)}
	}
	d.Pos++ // skip 'e'

	return Int(n), nil
}

func checkCanonical(s string) string {
	digits := s
	if len(digits) > 0 && digits[0] == '-' {
		digits = digits[1:]
	}
	switch {
	case digits == "":
		return "empty integer"
	case s == "-0":
		return "negative zero"
	case len(digits) > 1 && digits[0] == '0':
		return "leading zero in integer"
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return fmt.Sprintf("invalid integer %q", s)
		}
	}
	return ""
}

// DecodeString decodes a byte string (<length>:<bytes>). The result aliases
// the decoder's buffer.
func (d *BencodeDecoder) DecodeString() (String, error) {
	start := d.Pos
	for d.Pos < len(d.Data) && d.Data[d.Pos] >= '0' && d.Data[d.Pos] <= '9' {
		d.Pos++
	}
	if d.Pos >= len(d.Data) {
		return nil, &SyntaxError{Offset: start, Msg: "unterminated string length"}
	}
	if d.Data[d.Pos] != ':' || d.Pos == start {
		return nil, d.errorf("malformed string length")
	}

	lengthStr := string(d.Data[start:d.Pos])
	if len(lengthStr) > 1 && lengthStr[0] == '0' {
		return nil, &SyntaxError{Offset: start, Msg: "leading zero in string length"}
	}
	length, err := strconv.Atoi(lengthStr)
	if err != nil {
		return nil, &SyntaxError{Offset: start, Msg: fmt.Sprintf("invalid string length %q", lengthStr)}
	}

	d.Pos++ // skip ':'

	if length > len(d.Data)-d.Pos {
		return nil, d.errorf("string length %d exceeds data", length)
	}

	result := String(d.Data[d.Pos : d.Pos+length])
	d.Pos += length

	return result, nil
}

// DecodeList decodes a list (l<elements>e)
func (d *BencodeDecoder) DecodeList() (List, error) {
	if d.Pos >= len(d.Data) || d.Data[d.Pos] != 'l' {
		return nil, d.errorf("expected 'l' at start of list")
	}
	start := d.Pos
	d.Pos++

	result := List{}

	for d.Pos < len(d.Data) && d.Data[d.Pos] != 'e' {
		item, err := d.Decode()
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}

	if d.Pos >= len(d.Data) {
		return nil, &SyntaxError{Offset: start, Msg: "unterminated list"}
	}

	d.Pos++ // skip 'e'
	return result, nil
}

// DecodeDict decodes a dictionary (d<key-value pairs>e)
func (d *BencodeDecoder) DecodeDict() (Dict, error) {
	if d.Pos >= len(d.Data) || d.Data[d.Pos] != 'd' {
		return nil, d.errorf("expected 'd' at start of dictionary")
	}
	start := d.Pos
	d.Pos++

	result := Dict{}
	seen := make(map[string]bool)

	for d.Pos < len(d.Data) && d.Data[d.Pos] != 'e' {
		if c := d.Data[d.Pos]; c < '0' || c > '9' {
			return nil, d.errorf("dictionary key is not a byte string")
		}
		keyStart := d.Pos
		key, err := d.DecodeString()
		if err != nil {
			return nil, err
		}
		if seen[string(key)] {
			return nil, &SyntaxError{Offset: keyStart, Msg: fmt.Sprintf("duplicate dictionary key %q", key)}
		}
		seen[string(key)] = true

		value, err := d.Decode()
		if err != nil {
			return nil, err
		}

		result = append(result, Entry{Key: string(key), Value: value})
	}

	if d.Pos >= len(d.Data) {
		return nil, &SyntaxError{Offset: start, Msg: "unterminated dictionary"}
	}

	d.Pos++ // skip 'e'
	return result, nil
}

// Decode decodes exactly one value from data. Trailing bytes are an error.
func Decode(data []byte) (Value, error) {
	decoder := NewDecoder(data)
	v, err := decoder.Decode()
	if err != nil {
		return nil, err
	}
	if decoder.Pos != len(data) {
		return nil, decoder.errorf("trailing data after top-level value")
	}
	return v, nil
}
