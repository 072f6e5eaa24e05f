package lending_test

import (
	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/core/types"

	. "github.com/meverselabs/defizap/contract/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("CToken", func() {
	var (
		ctx  *types.Context
		dai  common.Address
		cdai common.Address
	)

	BeforeEach(func() {
		ctx = types.NewEmptyContext()
		dai = deployDai(ctx)
		cdai = deployCToken(ctx, dai, nil)
		_, err := Exec(ctx, alice, dai, "Approve", []interface{}{cdai, MaxUint256})
		Expect(err).To(Succeed())
	})

	It("metadata", func() {
		is, err := Exec(ctx, alice, cdai, "Symbol", nil)
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal("cDAI"))

		is, err = Exec(ctx, alice, cdai, "Underlying", nil)
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(dai))

		is, err = Exec(ctx, alice, cdai, "Owner", nil)
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(admin))

		rate, err := ViewAmount(ctx, cdai, "ExchangeRateStored")
		Expect(err).To(Succeed())
		Expect(rate.String()).To(Equal("0.02"))
	})

	It("Mint", func() {
		minted := execAmount(ctx, alice, cdai, "Mint", amount.NewAmount(100, 0))
		Expect(minted.String()).To(Equal("5000"))

		Expect(balanceOf(ctx, cdai, alice)).To(Equal("5000"))
		Expect(balanceOf(ctx, dai, alice)).To(Equal("900"))
		Expect(balanceOf(ctx, dai, cdai)).To(Equal("100"))

		cash, err := ViewAmount(ctx, cdai, "GetCash")
		Expect(err).To(Succeed())
		Expect(cash.String()).To(Equal("100"))

		under, err := ViewAmount(ctx, cdai, "BalanceOfUnderlying", alice)
		Expect(err).To(Succeed())
		Expect(under.String()).To(Equal("100"))

		ts, err := ViewAmount(ctx, cdai, "TotalSupply")
		Expect(err).To(Succeed())
		Expect(ts.String()).To(Equal("5000"))
	})

	It("Mint errors", func() {
		_, err := Exec(ctx, alice, cdai, "Mint", []interface{}{amount.NewAmount(0, 0)})
		Expect(err).To(MatchError("CToken: INVALID_AMOUNT"))

		_, err = Exec(ctx, bob, cdai, "Mint", []interface{}{amount.NewAmount(1, 0)})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Token: TRANSFER_EXCEED_ALLOWANCE"))
		Expect(balanceOf(ctx, cdai, bob)).To(Equal("0"))
	})

	It("Redeem", func() {
		execAmount(ctx, alice, cdai, "Mint", amount.NewAmount(100, 0))

		out := execAmount(ctx, alice, cdai, "Redeem", amount.NewAmount(2500, 0))
		Expect(out.String()).To(Equal("50"))
		Expect(balanceOf(ctx, cdai, alice)).To(Equal("2500"))
		Expect(balanceOf(ctx, dai, alice)).To(Equal("950"))

		_, err := Exec(ctx, alice, cdai, "Redeem", []interface{}{amount.NewAmount(2501, 0)})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("CToken: INSUFFICIENT_CASH"))
	})

	It("Redeem more than owned", func() {
		execAmount(ctx, alice, cdai, "Mint", amount.NewAmount(100, 0))
		_, err := Exec(ctx, bob, cdai, "Redeem", []interface{}{amount.NewAmount(1, 0)})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("CToken: EXCEED_BALANCE"))
		Expect(balanceOf(ctx, dai, cdai)).To(Equal("100"))
	})

	It("RedeemUnderlying", func() {
		execAmount(ctx, alice, cdai, "Mint", amount.NewAmount(100, 0))

		burned := execAmount(ctx, alice, cdai, "RedeemUnderlying", amount.NewAmount(30, 0))
		Expect(burned.String()).To(Equal("1500"))
		Expect(balanceOf(ctx, cdai, alice)).To(Equal("3500"))
		Expect(balanceOf(ctx, dai, alice)).To(Equal("930"))
	})

	It("RedeemUnderlying rounds the burn up", func() {
		_, err := Exec(ctx, admin, cdai, "SetExchangeRate", []interface{}{amount.NewAmount(0, 30000000000000000)})
		Expect(err).To(Succeed())
		execAmount(ctx, alice, cdai, "Mint", amount.NewAmount(30, 0))

		burned := execAmount(ctx, alice, cdai, "RedeemUnderlying", amount.NewAmount(10, 0))
		Expect(burned.String()).To(Equal("333.333333333333333334"))
	})

	It("SetExchangeRate", func() {
		execAmount(ctx, alice, cdai, "Mint", amount.NewAmount(100, 0))

		_, err := Exec(ctx, alice, cdai, "SetExchangeRate", []interface{}{amount.NewAmount(0, 40000000000000000)})
		Expect(err).To(MatchError("CToken: NOT_OWNER"))

		_, err = Exec(ctx, admin, cdai, "SetExchangeRate", []interface{}{amount.NewAmount(0, 0)})
		Expect(err).To(MatchError("CToken: INVALID_EXCHANGE_RATE"))

		_, err = Exec(ctx, admin, cdai, "SetExchangeRate", []interface{}{amount.NewAmount(0, 40000000000000000)})
		Expect(err).To(Succeed())

		under, err := ViewAmount(ctx, cdai, "BalanceOfUnderlying", alice)
		Expect(err).To(Succeed())
		Expect(under.String()).To(Equal("200"))

		_, err = Exec(ctx, alice, cdai, "Redeem", []interface{}{amount.NewAmount(5000, 0)})
		Expect(err).To(MatchError("CToken: INSUFFICIENT_CASH"))

		out := execAmount(ctx, alice, cdai, "Redeem", amount.NewAmount(2500, 0))
		Expect(out.String()).To(Equal("100"))
	})

	It("Transfer, TransferFrom", func() {
		execAmount(ctx, alice, cdai, "Mint", amount.NewAmount(100, 0))

		_, err := Exec(ctx, alice, cdai, "Transfer", []interface{}{bob, amount.NewAmount(1000, 0)})
		Expect(err).To(Succeed())
		Expect(balanceOf(ctx, cdai, alice)).To(Equal("4000"))
		Expect(balanceOf(ctx, cdai, bob)).To(Equal("1000"))

		_, err = Exec(ctx, admin, cdai, "TransferFrom", []interface{}{alice, admin, amount.NewAmount(1, 0)})
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("CToken: TRANSFER_EXCEED_ALLOWANCE"))

		_, err = Exec(ctx, alice, cdai, "Approve", []interface{}{admin, amount.NewAmount(10, 0)})
		Expect(err).To(Succeed())
		_, err = Exec(ctx, admin, cdai, "TransferFrom", []interface{}{alice, admin, amount.NewAmount(4, 0)})
		Expect(err).To(Succeed())
		Expect(balanceOf(ctx, cdai, admin)).To(Equal("4"))

		allowance, err := ViewAmount(ctx, cdai, "Allowance", alice, admin)
		Expect(err).To(Succeed())
		Expect(allowance.String()).To(Equal("6"))

		ts, err := ViewAmount(ctx, cdai, "TotalSupply")
		Expect(err).To(Succeed())
		Expect(ts.String()).To(Equal("5000"))
	})
})
