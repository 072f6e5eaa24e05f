package util

import (
	"math/big"

	"github.com/meverselabs/defizap/common/amount"
)

func IsPlus(a *big.Int) bool {
	return a.Cmp(Zero) > 0
}
func Clone(a *big.Int) *big.Int {
	return big.NewInt(0).Set(a)
}
func Sqrt(a *big.Int) *big.Int {
	return big.NewInt(0).Sqrt(a)
}
func Exp(a, b *big.Int) *big.Int {
	return big.NewInt(0).Exp(a, b, nil)
}
func Min(a, b *big.Int) *big.Int {
	if a.Cmp(b) < 0 {
		return a
	}
	return b
}
func Add(a, b *big.Int) *big.Int {
	return big.NewInt(0).Add(a, b)
}
func Sub(a, b *big.Int) *big.Int {
	return big.NewInt(0).Sub(a, b)
}
func Mul(a, b *big.Int) *big.Int {
	return big.NewInt(0).Mul(a, b)
}
func Div(a, b *big.Int) *big.Int {
	return big.NewInt(0).Div(a, b)
}
func AddC(a *big.Int, b int64) *big.Int {
	return big.NewInt(0).Add(a, big.NewInt(b))
}
func SubC(a *big.Int, b int64) *big.Int {
	return big.NewInt(0).Sub(a, big.NewInt(b))
}
func MulC(a *big.Int, b int64) *big.Int {
	return big.NewInt(0).Mul(a, big.NewInt(b))
}
func DivC(a *big.Int, b int64) *big.Int {
	return big.NewInt(0).Div(a, big.NewInt(b))
}
func MulDiv(a, b, denominator *big.Int) *big.Int {
	return Div(Mul(a, b), denominator)
}
func MulDivC(a, b *big.Int, denominator int64) *big.Int {
	return DivC(Mul(a, b), denominator)
}

// MulDivRoundUp returns ceil(a*b/denominator)
func MulDivRoundUp(a, b, denominator *big.Int) *big.Int {
	q, r := big.NewInt(0).QuoRem(Mul(a, b), denominator, big.NewInt(0))
	if r.Sign() > 0 {
		q.Add(q, big.NewInt(1))
	}
	return q
}
func Pow10(a int) *big.Int {
	return Exp(big.NewInt(10), big.NewInt(int64(a)))
}

func ToAmount(b *big.Int) *amount.Amount {
	return &amount.Amount{Int: Clone(b)}
}
