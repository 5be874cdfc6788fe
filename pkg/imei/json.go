package imei

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// jsonNumberFloor is the smallest magnitude whose decimal form already has
// Length digits.
const jsonNumberFloor int64 = 100_000_000_000_000

// FitsJSONNumber reports whether the IMEI loses nothing when written as a
// JSON number. Values with leading zeros, such as those under reporting
// body 01, do not fit.
func (i IMEI) FitsJSONNumber() bool {
	return i.value < 0 || i.value >= jsonNumberFloor
}

// MarshalJSON writes the IMEI as a JSON number, or as a zero-padded JSON
// string when a number would drop leading zeros. Use imeijson.Converter to
// choose the representation explicitly.
func (i IMEI) MarshalJSON() ([]byte, error) {
	if i.FitsJSONNumber() {
		return strconv.AppendInt(nil, i.value, 10), nil
	}
	buf := make([]byte, 0, Length+2)
	buf = append(buf, '"')
	buf, _ = i.AppendText(buf)
	return append(buf, '"'), nil
}

// UnmarshalJSON accepts a JSON string or a JSON number. Either way the token
// text must be exactly 15 digits, so 18 is rejected while "000000000000018"
// is accepted. null is rejected; use *IMEI for optional fields.
func (i *IMEI) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return formatError("", ReasonEmpty)
	}

	if data[0] == '"' {
		if bytes.IndexByte(data, '\\') < 0 && len(data) >= 2 && data[len(data)-1] == '"' {
			id, err := ParseBytes(data[1 : len(data)-1])
			if err != nil {
				return err
			}
			*i = id
			return nil
		}
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return formatError(string(data), ReasonNonDigit)
		}
		id, err := Parse(s)
		if err != nil {
			return err
		}
		*i = id
		return nil
	}

	id, err := ParseBytes(data)
	if err != nil {
		return err
	}
	*i = id
	return nil
}

// MarshalText returns the zero-padded decimal form, which also makes IMEI
// usable as a JSON object key.
func (i IMEI) MarshalText() ([]byte, error) {
	return i.Bytes(), nil
}

// UnmarshalText parses exactly 15 decimal digits.
func (i *IMEI) UnmarshalText(text []byte) error {
	id, err := ParseBytes(text)
	if err != nil {
		return err
	}
	*i = id
	return nil
}
