package xipv4

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetMarshalText(t *testing.T) {
	n := MustParse("10.0.0.0/24")
	data, err := n.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "10.0.0.0/24", string(data))

	var back Net
	require.NoError(t, back.UnmarshalText(data))
	assert.Equal(t, n, back)

	// extended form is accepted on the way in
	require.NoError(t, back.UnmarshalText([]byte("10.0.0.0 255.255.255.0")))
	assert.Equal(t, n, back)

	assert.ErrorIs(t, back.UnmarshalText([]byte("10.0.0.0/33")), ErrInvalidPrefixLen)
}

func TestNetmaskMarshalText(t *testing.T) {
	m, err := NetmaskFromPrefix(22)
	require.NoError(t, err)

	data, err := m.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "/22", string(data))

	var back Netmask
	require.NoError(t, back.UnmarshalText(data))
	assert.Equal(t, m, back)

	require.NoError(t, back.UnmarshalText([]byte("255.255.252.0")))
	assert.Equal(t, m, back)

	assert.Error(t, back.UnmarshalText([]byte("255.0.255.0")))
}

func TestNetJSONRoundTrip(t *testing.T) {
	type allocation struct {
		Name string  `json:"name"`
		Net  Net     `json:"net"`
		Mask Netmask `json:"mask"`
	}

	in := allocation{
		Name: "lab",
		Net:  MustParse("192.168.1.0/24"),
		Mask: MustParse("192.168.1.0/24").Netmask(),
	}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"lab","net":"192.168.1.0/24","mask":"/24"}`, string(data))

	var out allocation
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, in, out)

	assert.Error(t, json.Unmarshal([]byte(`{"net":"not-a-network"}`), &out))
}
