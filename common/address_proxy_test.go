package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAddress(t *testing.T) {
	addr, err := ParseAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F")
	require.NoError(t, err)
	assert.Equal(t, HexToAddress("0x6B175474E89094C44Da98b954EedeAC495271d0F"), addr)

	addr, err = ParseAddress("5d3a536e4d6dbd6114cc1ead35777bab948e3643")
	require.NoError(t, err)
	assert.Equal(t, "0x5d3a536E4D6DbD6114cc1Ead35777bAB948E3643", addr.String())

	for _, s := range []string{"", "0x1234", "0xZZ175474E89094C44Da98b954EedeAC495271d0F"} {
		_, err := ParseAddress(s)
		assert.ErrorIs(t, err, ErrInvalidAddressFormat, s)
	}
}
