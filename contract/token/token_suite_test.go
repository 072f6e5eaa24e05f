package token_test

import (
	"testing"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/common/bin"
	"github.com/meverselabs/defizap/contract/token"
	"github.com/meverselabs/defizap/core/types"

	. "github.com/meverselabs/defizap/contract/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestToken(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Token Suite")
}

var (
	admin = common.HexToAddress("0x477C578843cBe53C3568736347f640c2cdA4616F")
	alice = common.HexToAddress("0x1000000000000000000000000000000000000001")
	bob   = common.HexToAddress("0x1000000000000000000000000000000000000002")
)

func deployToken(ctx *types.Context, supply map[common.Address]*amount.Amount) common.Address {
	ClassID := types.MustRegisterContractType(&token.TokenContract{})
	bs, _, err := bin.WriterToBytes(&token.TokenContractConstruction{
		Name:             "Dai Stablecoin",
		Symbol:           "DAI",
		InitialSupplyMap: supply,
	})
	Expect(err).To(Succeed())
	cont, err := ctx.DeployContract(admin, ClassID, bs)
	Expect(err).To(Succeed())
	return cont.Address()
}

func balanceOf(ctx *types.Context, tokenAddr common.Address, user common.Address) string {
	am, err := BalanceOf(ctx, tokenAddr, user)
	Expect(err).To(Succeed())
	return am.String()
}
