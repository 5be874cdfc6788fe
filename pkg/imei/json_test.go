package imei

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type device struct {
	IMEI IMEI `json:"val"`
}

type optionalDevice struct {
	IMEI *IMEI `json:"val"`
}

func TestIMEI_UnmarshalJSON(t *testing.T) {
	want := MustParse("490154203237518")

	tests := []struct {
		name string
		body string
	}{
		{"string", `{"val":"490154203237518"}`},
		{"number", `{"val":490154203237518}`},
		{"escaped string", `{"val":"\u003490154203237518"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d device
			require.NoError(t, json.Unmarshal([]byte(tt.body), &d))
			assert.Equal(t, want, d.IMEI)

			var od optionalDevice
			require.NoError(t, json.Unmarshal([]byte(tt.body), &od))
			require.NotNil(t, od.IMEI)
			assert.Equal(t, want, *od.IMEI)
		})
	}
}

func TestIMEI_UnmarshalJSON_Invalid(t *testing.T) {
	for _, body := range []string{
		`{"val":"abc"}`,
		`{"val":111111111111111}`,
		`{"val":null}`,
		`{"val":4.90154203237518e14}`,
		`{"val":-490154203237518}`,
		`{"val":true}`,
	} {
		t.Run(body, func(t *testing.T) {
			var d device
			err := json.Unmarshal([]byte(body), &d)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidFormat)
		})
	}
}

func TestIMEI_UnmarshalJSON_NullPointer(t *testing.T) {
	var od optionalDevice
	require.NoError(t, json.Unmarshal([]byte(`{"val":null}`), &od))
	assert.Nil(t, od.IMEI)
}

func TestIMEI_UnmarshalJSON_List(t *testing.T) {
	var list []*IMEI
	require.NoError(t, json.Unmarshal([]byte(`["490154203237518", 356303489916807, null]`), &list))

	require.Len(t, list, 3)
	assert.Equal(t, MustParse("490154203237518"), *list[0])
	assert.Equal(t, MustParse("356303489916807"), *list[1])
	assert.Nil(t, list[2])
}

func TestIMEI_MarshalJSON(t *testing.T) {
	out, err := json.Marshal(device{IMEI: MustParse("490154203237518")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"val":490154203237518}`, string(out))

	tests := []struct {
		name string
		id   IMEI
		want string
	}{
		{"smallest", MustParse("000000000000018"), `"000000000000018"`},
		{"reporting body 01", MustParse("010000000000008"), `"010000000000008"`},
		{"full width", MustParse("100000000000009"), `100000000000009`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := json.Marshal(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))

			var back IMEI
			require.NoError(t, json.Unmarshal(out, &back))
			assert.Equal(t, tt.id, back)
		})
	}
}

func TestIMEI_UnmarshalJSON_NumberNeedsAllDigits(t *testing.T) {
	tests := []struct {
		body  string
		valid bool
	}{
		{`18`, false},
		{`10000000000008`, false},
		{`"000000000000018"`, true},
		{`"010000000000008"`, true},
		{`100000000000009`, true},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			var id IMEI
			err := json.Unmarshal([]byte(tt.body), &id)

			raw := []byte(tt.body)
			if raw[0] == '"' {
				raw = raw[1 : len(raw)-1]
			}
			_, ok := TryParseBytes(raw)
			assert.Equal(t, ok, err == nil, "JSON decoding must agree with TryParseBytes")

			if tt.valid {
				require.NoError(t, err)
				assert.True(t, id.IsValid())
				return
			}
			var fe *FormatError
			require.ErrorAs(t, err, &fe)
			assert.Equal(t, ReasonLength, fe.Reason)
			assert.Equal(t, Invalid, id)
		})
	}
}

func TestIMEI_FitsJSONNumber(t *testing.T) {
	assert.True(t, MustParse("490154203237518").FitsJSONNumber())
	assert.True(t, MustParse("100000000000009").FitsJSONNumber())
	assert.False(t, MustParse("010000000000008").FitsJSONNumber())
	assert.False(t, MustParse("000000000000018").FitsJSONNumber())
	assert.False(t, Invalid.FitsJSONNumber())
}

func TestIMEI_MapKeys(t *testing.T) {
	body := `{"490154203237518":"A","356303489916807":"B","356656423384345":null}`

	var byIMEI map[IMEI]*string
	require.NoError(t, json.Unmarshal([]byte(body), &byIMEI))
	require.Len(t, byIMEI, 3)
	assert.Equal(t, "A", *byIMEI[MustParse("490154203237518")])
	assert.Equal(t, "B", *byIMEI[MustParse("356303489916807")])
	assert.Nil(t, byIMEI[MustParse("356656423384345")])

	out, err := json.Marshal(map[IMEI]string{MustParse("000000000000018"): "min"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"000000000000018":"min"}`, string(out))

	err = json.Unmarshal([]byte(`{"123456789012345":"bad"}`), &byIMEI)
	assert.ErrorIs(t, err, ErrInvalidFormat)
}

func TestIMEI_MapValues(t *testing.T) {
	var byName map[string]*IMEI
	require.NoError(t, json.Unmarshal([]byte(`{"A":"490154203237518","B":356303489916807,"C":null}`), &byName))

	assert.Equal(t, MustParse("490154203237518"), *byName["A"])
	assert.Equal(t, MustParse("356303489916807"), *byName["B"])
	assert.Nil(t, byName["C"])
}
