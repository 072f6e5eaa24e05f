package token_test

import (
	"math/big"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/core/types"

	. "github.com/meverselabs/defizap/contract/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Token", func() {
	var (
		ctx *types.Context
		tok common.Address
	)

	BeforeEach(func() {
		ctx = types.NewEmptyContext()
		tok = deployToken(ctx, map[common.Address]*amount.Amount{
			alice: amount.NewAmount(100, 0),
		})
	})

	It("metadata", func() {
		is, err := Exec(ctx, alice, tok, "Name", nil)
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal("Dai Stablecoin"))

		is, err = Exec(ctx, alice, tok, "Symbol", nil)
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal("DAI"))

		is, err = Exec(ctx, alice, tok, "Decimals", nil)
		Expect(err).To(Succeed())
		Expect(is[0].(*big.Int).Int64()).To(Equal(int64(18)))

		ts, err := ViewAmount(ctx, tok, "TotalSupply")
		Expect(err).To(Succeed())
		Expect(ts.String()).To(Equal("100"))
	})

	It("transfer", func() {
		_, err := Exec(ctx, alice, tok, "Transfer", []interface{}{bob, amount.NewAmount(30, 0)})
		Expect(err).To(Succeed())
		Expect(balanceOf(ctx, tok, alice)).To(Equal("70"))
		Expect(balanceOf(ctx, tok, bob)).To(Equal("30"))

		_, err = Exec(ctx, bob, tok, "Transfer", []interface{}{alice, amount.NewAmount(31, 0)})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Token: TRANSFER_EXCEED_BALANCE"))

		_, err = Exec(ctx, alice, tok, "Transfer", []interface{}{ZeroAddress, amount.NewAmount(1, 0)})
		Expect(err).To(MatchError("Token: TRANSFER_TO_ZEROADDRESS"))

		_, err = Exec(ctx, ZeroAddress, tok, "Transfer", []interface{}{bob, amount.NewAmount(1, 0)})
		Expect(err).To(MatchError("Token: TRANSFER_FROM_ZEROADDRESS"))

		_, err = Exec(ctx, alice, tok, "Transfer", []interface{}{bob, ZeroAmount.Sub(amount.COIN)})
		Expect(err).To(MatchError("Token: NEGATIVE_AMOUNT"))
	})

	It("approve and transferFrom", func() {
		_, err := Exec(ctx, bob, tok, "TransferFrom", []interface{}{alice, bob, amount.NewAmount(1, 0)})
		Expect(err.Error()).To(ContainSubstring("Token: TRANSFER_EXCEED_ALLOWANCE"))

		_, err = Exec(ctx, alice, tok, "Approve", []interface{}{bob, amount.NewAmount(10, 0)})
		Expect(err).To(Succeed())

		_, err = Exec(ctx, bob, tok, "TransferFrom", []interface{}{alice, admin, amount.NewAmount(4, 0)})
		Expect(err).To(Succeed())
		Expect(balanceOf(ctx, tok, admin)).To(Equal("4"))

		al, err := ViewAmount(ctx, tok, "Allowance", alice, bob)
		Expect(err).To(Succeed())
		Expect(al.String()).To(Equal("6"))

		_, err = Exec(ctx, alice, tok, "Approve", []interface{}{ZeroAddress, amount.NewAmount(1, 0)})
		Expect(err).To(MatchError("Token: APPROVE_TO_ZEROADDRESS"))
	})

	It("mint and burn", func() {
		_, err := Exec(ctx, alice, tok, "Mint", []interface{}{alice, amount.NewAmount(1, 0)})
		Expect(err).To(MatchError("Token: NOT_MINTER"))

		_, err = Exec(ctx, admin, tok, "SetMinter", []interface{}{alice, true})
		Expect(err).To(Succeed())
		_, err = Exec(ctx, admin, tok, "SetMinter", []interface{}{alice, true})
		Expect(err).To(MatchError("Token: ALREADY_MINTER"))

		_, err = Exec(ctx, alice, tok, "Mint", []interface{}{bob, amount.NewAmount(5, 0)})
		Expect(err).To(Succeed())
		_, err = Exec(ctx, admin, tok, "MintBatch", []interface{}{[]common.Address{alice, bob}, []*amount.Amount{amount.NewAmount(1, 0), amount.NewAmount(2, 0)}})
		Expect(err).To(Succeed())
		Expect(balanceOf(ctx, tok, bob)).To(Equal("7"))

		_, err = Exec(ctx, bob, tok, "Burn", []interface{}{amount.NewAmount(7, 0)})
		Expect(err).To(Succeed())
		Expect(balanceOf(ctx, tok, bob)).To(Equal("0"))

		ts, err := ViewAmount(ctx, tok, "TotalSupply")
		Expect(err).To(Succeed())
		Expect(ts.String()).To(Equal("101"))
	})

	It("pause", func() {
		_, err := Exec(ctx, alice, tok, "Pause", nil)
		Expect(err).To(MatchError("Token: NOT_MASTER"))

		_, err = Exec(ctx, admin, tok, "Pause", nil)
		Expect(err).To(Succeed())
		_, err = Exec(ctx, alice, tok, "Transfer", []interface{}{bob, amount.NewAmount(1, 0)})
		Expect(err).To(MatchError("Token: PAUSED"))

		_, err = Exec(ctx, admin, tok, "Unpause", nil)
		Expect(err).To(Succeed())
		_, err = Exec(ctx, alice, tok, "Transfer", []interface{}{bob, amount.NewAmount(1, 0)})
		Expect(err).To(Succeed())
	})
})
