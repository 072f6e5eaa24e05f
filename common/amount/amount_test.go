package amount

import (
	"encoding/json"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Amount(t *testing.T) {
	a := COIN.DivC(1000)
	b := COIN.MulC(10000)
	assert.Equal(t, "0.001", a.String())
	assert.Equal(t, "10000", b.String())
	assert.Equal(t, "10000.001", a.Add(b).String())
	assert.Equal(t, "-9999.999", a.Sub(b).String())
	assert.Equal(t, "0.0000001", a.DivC(10000).String())
	assert.Equal(t, "90", a.MulC(90000).String())

	c, err := ParseAmount("10000.00121454")
	require.NoError(t, err)
	assert.Equal(t, "10000.00121454", c.String())
}

func Test_NewAmount(t *testing.T) {
	assert.Equal(t, "1", NewAmount(1, 0).String())
	assert.Equal(t, "0.5", NewAmount(0, 500000000000000000).String())
	assert.Equal(t, "2.25", NewAmount(2, 250000000000000000).String())
	assert.True(t, NewAmount(0, 1).IsPlus())
	assert.True(t, NewAmount(0, 0).IsZero())
	assert.True(t, NewAmount(0, 0).Sub(COIN).IsMinus())
}

func Test_ParseAmount(t *testing.T) {
	big1, err := ParseAmount("100000000000000000000000")
	require.NoError(t, err)
	want, _ := new(big.Int).SetString("100000000000000000000000000000000000000000", 10)
	assert.Equal(t, 0, big1.Cmp(want))

	small, err := ParseAmount("0.05")
	require.NoError(t, err)
	assert.Equal(t, int64(50000000000000000), small.Int64())

	for _, s := range []string{"", "abc", "1.", "-1", "1.0000000000000000001", "1.2.3"} {
		_, err := ParseAmount(s)
		assert.ErrorIs(t, err, ErrInvalidAmountFormat, s)
	}
	assert.Panics(t, func() { MustParseAmount("x") })
}

func Test_AmountJSON(t *testing.T) {
	bs, err := json.Marshal(MustParseAmount("12.5"))
	require.NoError(t, err)
	assert.Equal(t, `"12.5"`, string(bs))

	var am Amount
	require.NoError(t, json.Unmarshal([]byte(`"3.14"`), &am))
	assert.Equal(t, "3.14", am.String())
	assert.Error(t, json.Unmarshal([]byte(`3`), &am))
}
