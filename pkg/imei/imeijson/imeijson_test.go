package imeijson

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weiawesome/imei-service/pkg/imei"
)

var known = imei.MustParse("490154203237518")

func TestConverter_Marshal(t *testing.T) {
	tests := []struct {
		name      string
		converter Converter
		want      string
	}{
		{"zero value", Converter{}, `490154203237518`},
		{"default with strict numbers", Converter{WriteOption: WriteDefault, NumberHandling: NumberHandlingStrict}, `490154203237518`},
		{"default with string numbers", Converter{WriteOption: WriteDefault, NumberHandling: NumberHandlingWriteAsString}, `"490154203237518"`},
		{"forced number", Converter{WriteOption: WriteAsNumber, NumberHandling: NumberHandlingWriteAsString}, `490154203237518`},
		{"forced string", Converter{WriteOption: WriteAsString, NumberHandling: NumberHandlingStrict}, `"490154203237518"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.converter.Marshal(known)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))

			back, err := tt.converter.Unmarshal(out)
			require.NoError(t, err)
			assert.Equal(t, known, back)
		})
	}
}

func TestConverter_StringOutputIsPadded(t *testing.T) {
	small, err := imei.ParseInt64(imei.MinValue)
	require.NoError(t, err)

	c := Converter{WriteOption: WriteAsString}
	out, err := c.Marshal(small)
	require.NoError(t, err)
	assert.Equal(t, `"000000000000018"`, string(out))

	out, err = Converter{}.Marshal(small)
	require.NoError(t, err)
	assert.Equal(t, `"000000000000018"`, string(out))

	back, err := Converter{}.Unmarshal(out)
	require.NoError(t, err)
	assert.Equal(t, small, back)
}

func TestConverter_ForcedNumberDropsLeadingZeros(t *testing.T) {
	small, err := imei.ParseInt64(imei.MinValue)
	require.NoError(t, err)

	c := Converter{WriteOption: WriteAsNumber}
	out, err := c.Marshal(small)
	require.NoError(t, err)
	assert.Equal(t, `18`, string(out))

	_, err = c.Unmarshal(out)
	require.ErrorIs(t, err, imei.ErrInvalidFormat)
	var fe *imei.FormatError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, imei.ReasonLength, fe.Reason)
}

func TestConverter_MarshalSlice(t *testing.T) {
	ids := []imei.IMEI{known, imei.MustParse("356303489916807")}

	out, err := Converter{WriteOption: WriteAsString}.MarshalSlice(ids)
	require.NoError(t, err)
	assert.Equal(t, `["490154203237518","356303489916807"]`, string(out))

	out, err = Converter{}.MarshalSlice(ids)
	require.NoError(t, err)
	assert.Equal(t, `[490154203237518,356303489916807]`, string(out))

	out, err = Converter{}.MarshalSlice([]imei.IMEI{})
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(out))

	out, err = Converter{}.MarshalSlice(nil)
	require.NoError(t, err)
	assert.Equal(t, `null`, string(out))
}

func TestConverter_Keys(t *testing.T) {
	c := Converter{WriteOption: WriteAsNumber}
	assert.Equal(t, "490154203237518", c.MarshalKey(known))

	id, err := c.UnmarshalKey("490154203237518")
	require.NoError(t, err)
	assert.Equal(t, known, id)

	_, err = c.UnmarshalKey("123456789012345")
	var de *DecodeError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, `"123456789012345"`, de.Data)
	assert.ErrorIs(t, err, imei.ErrInvalidFormat)
}

func TestConverter_UnmarshalErrors(t *testing.T) {
	for _, data := range []string{`"abc"`, `111111111111111`, `null`, `1.5`, `{}`, ``} {
		t.Run(data, func(t *testing.T) {
			id, err := Converter{}.Unmarshal([]byte(data))
			require.Error(t, err)
			assert.Equal(t, imei.Invalid, id)

			var de *DecodeError
			require.True(t, errors.As(err, &de))
			assert.Equal(t, data, de.Data)
			assert.True(t, errors.Is(err, imei.ErrInvalidFormat))

			var fe *imei.FormatError
			assert.True(t, errors.As(err, &fe))
		})
	}
}

func TestValue_InStruct(t *testing.T) {
	type payload struct {
		Device Value   `json:"device"`
		Others []Value `json:"others"`
	}

	c := Converter{NumberHandling: NumberHandlingWriteAsString}
	p := payload{
		Device: c.Value(known),
		Others: c.Values([]imei.IMEI{imei.MustParse("356656423384345")}),
	}

	out, err := json.Marshal(p)
	require.NoError(t, err)
	assert.JSONEq(t, `{"device":"490154203237518","others":["356656423384345"]}`, string(out))

	var back payload
	require.NoError(t, json.Unmarshal([]byte(`{"device":490154203237518,"others":["356656423384345"]}`), &back))
	assert.Equal(t, known, back.Device.IMEI)
	require.Len(t, back.Others, 1)
	assert.Equal(t, imei.MustParse("356656423384345"), back.Others[0].IMEI)

	err = json.Unmarshal([]byte(`{"device":"123456789012345"}`), &back)
	var de *DecodeError
	assert.ErrorAs(t, err, &de)
}

func TestParseWriteOption(t *testing.T) {
	tests := []struct {
		in   string
		want WriteOption
	}{
		{"", WriteDefault},
		{"default", WriteDefault},
		{"Number", WriteAsNumber},
		{" string ", WriteAsString},
	}
	for _, tt := range tests {
		got, err := ParseWriteOption(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseWriteOption("hex")
	assert.Error(t, err)

	for _, o := range []WriteOption{WriteDefault, WriteAsNumber, WriteAsString} {
		back, err := ParseWriteOption(o.String())
		require.NoError(t, err)
		assert.Equal(t, o, back)
	}
	assert.Equal(t, "unknown", WriteOption(7).String())
}

func TestParseNumberHandling(t *testing.T) {
	got, err := ParseNumberHandling("")
	require.NoError(t, err)
	assert.Equal(t, NumberHandlingStrict, got)

	got, err = ParseNumberHandling("string")
	require.NoError(t, err)
	assert.Equal(t, NumberHandlingWriteAsString, got)

	_, err = ParseNumberHandling("loose")
	assert.Error(t, err)
}
