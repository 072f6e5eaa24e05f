package util

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMulDivRoundUp(t *testing.T) {
	assert.Equal(t, int64(4), MulDivRoundUp(big.NewInt(7), big.NewInt(1), big.NewInt(2)).Int64())
	assert.Equal(t, int64(3), MulDivRoundUp(big.NewInt(6), big.NewInt(1), big.NewInt(2)).Int64())
	assert.Equal(t, int64(3), MulDiv(big.NewInt(7), big.NewInt(1), big.NewInt(2)).Int64())
}

func TestConstants(t *testing.T) {
	assert.Equal(t, "1000000000000000000", Ether.String())
	assert.Equal(t, 256, MaxUint256.BitLen())
	assert.Equal(t, big.NewInt(2), Min(big.NewInt(2), big.NewInt(3)))
	assert.True(t, IsPlus(big.NewInt(1)))
	assert.False(t, IsPlus(Zero))

	a := big.NewInt(5)
	b := ToAmount(a)
	a.SetInt64(6)
	assert.Equal(t, int64(5), b.Int64())
}
