// Package imeijson controls how IMEIs are written to and read from JSON.
//
// imei.IMEI already implements json.Marshaler (number output, padded string
// when a number would drop leading zeros) and json.Unmarshaler (string or
// number input holding exactly 15 digits). A Converter adds the choice of
// representation on output and a dedicated decode error on input.
package imeijson

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/weiawesome/imei-service/pkg/imei"
)

// WriteOption selects the JSON representation written for an IMEI.
type WriteOption int

const (
	// WriteDefault defers to the converter's NumberHandling policy.
	WriteDefault WriteOption = iota
	// WriteAsNumber always writes a JSON number. Values with leading zeros
	// lose them and will not decode again.
	WriteAsNumber
	// WriteAsString always writes a JSON string of 15 digits.
	WriteAsString
)

func (o WriteOption) String() string {
	switch o {
	case WriteDefault:
		return "default"
	case WriteAsNumber:
		return "number"
	case WriteAsString:
		return "string"
	default:
		return "unknown"
	}
}

// ParseWriteOption parses "default", "number" or "string". The empty string
// means default.
func ParseWriteOption(s string) (WriteOption, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return WriteDefault, nil
	case "number":
		return WriteAsNumber, nil
	case "string":
		return WriteAsString, nil
	default:
		return WriteDefault, fmt.Errorf("unknown IMEI write option %q", s)
	}
}

// NumberHandling is the ambient numeric formatting policy consulted by
// WriteDefault.
type NumberHandling int

const (
	// NumberHandlingStrict writes JSON numbers, falling back to a padded
	// string for values with leading zeros.
	NumberHandlingStrict NumberHandling = iota
	// NumberHandlingWriteAsString writes numbers as JSON strings.
	NumberHandlingWriteAsString
)

// ParseNumberHandling parses "strict" or "string". The empty string means strict.
func ParseNumberHandling(s string) (NumberHandling, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "strict":
		return NumberHandlingStrict, nil
	case "string":
		return NumberHandlingWriteAsString, nil
	default:
		return NumberHandlingStrict, fmt.Errorf("unknown number handling %q", s)
	}
}

// DecodeError reports JSON input that does not hold a valid IMEI. It wraps
// the *imei.FormatError that caused it.
type DecodeError struct {
	Data string
	Err  error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode IMEI from JSON %s: %v", e.Data, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// Converter writes and reads IMEIs according to its options. The zero value
// writes JSON numbers.
type Converter struct {
	WriteOption    WriteOption
	NumberHandling NumberHandling
}

// WritesString reports whether the converter emits JSON strings for every
// value.
func (c Converter) WritesString() bool {
	switch c.WriteOption {
	case WriteAsNumber:
		return false
	case WriteAsString:
		return true
	default:
		return c.NumberHandling == NumberHandlingWriteAsString
	}
}

// AppendJSON appends the JSON form of id to dst.
func (c Converter) AppendJSON(dst []byte, id imei.IMEI) []byte {
	if c.WriteOption == WriteAsNumber || (!c.WritesString() && id.FitsJSONNumber()) {
		return strconv.AppendInt(dst, id.Int64(), 10)
	}
	dst = append(dst, '"')
	dst, _ = id.AppendText(dst)
	return append(dst, '"')
}

// Marshal returns the JSON form of id.
func (c Converter) Marshal(id imei.IMEI) ([]byte, error) {
	return c.AppendJSON(make([]byte, 0, imei.Length+2), id), nil
}

// MarshalSlice returns a JSON array of ids. A nil slice encodes as null.
func (c Converter) MarshalSlice(ids []imei.IMEI) ([]byte, error) {
	if ids == nil {
		return []byte("null"), nil
	}
	buf := make([]byte, 0, 2+len(ids)*(imei.Length+3))
	buf = append(buf, '[')
	for k, id := range ids {
		if k > 0 {
			buf = append(buf, ',')
		}
		buf = c.AppendJSON(buf, id)
	}
	return append(buf, ']'), nil
}

// MarshalKey returns the object key form of id. Keys are always strings.
func (c Converter) MarshalKey(id imei.IMEI) string {
	return id.String()
}

// Unmarshal reads an IMEI from a JSON string or number.
func (c Converter) Unmarshal(data []byte) (imei.IMEI, error) {
	var id imei.IMEI
	if err := id.UnmarshalJSON(data); err != nil {
		return imei.Invalid, &DecodeError{Data: string(data), Err: err}
	}
	return id, nil
}

// UnmarshalKey reads an IMEI from an object key.
func (c Converter) UnmarshalKey(key string) (imei.IMEI, error) {
	id, err := imei.Parse(key)
	if err != nil {
		return imei.Invalid, &DecodeError{Data: strconv.Quote(key), Err: err}
	}
	return id, nil
}

// Value binds an IMEI to a converter so it can be embedded in structs passed
// to encoding/json or gin.
type Value struct {
	IMEI      imei.IMEI
	Converter Converter
}

// Value wraps id for marshaling with c.
func (c Converter) Value(id imei.IMEI) Value {
	return Value{IMEI: id, Converter: c}
}

// Values wraps every id for marshaling with c.
func (c Converter) Values(ids []imei.IMEI) []Value {
	out := make([]Value, len(ids))
	for k, id := range ids {
		out[k] = c.Value(id)
	}
	return out
}

func (v Value) MarshalJSON() ([]byte, error) {
	return v.Converter.Marshal(v.IMEI)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	id, err := v.Converter.Unmarshal(data)
	if err != nil {
		return err
	}
	v.IMEI = id
	return nil
}
