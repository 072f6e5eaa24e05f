package test

import (
	"math/big"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/contract/exchange/trade"

	. "github.com/meverselabs/defizap/contract/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("price", func() {
	It("GetInputPrice", func() {
		out, err := trade.GetInputPrice(trade.DEFAULT_FEE, big.NewInt(1000), big.NewInt(1000), big.NewInt(1000))
		Expect(err).To(Succeed())
		Expect(out.Int64()).To(Equal(int64(499)))

		_, err = trade.GetInputPrice(trade.DEFAULT_FEE, big.NewInt(0), big.NewInt(1000), big.NewInt(1000))
		Expect(err).To(MatchError("Exchange: INSUFFICIENT_INPUT_AMOUNT"))

		_, err = trade.GetInputPrice(trade.DEFAULT_FEE, big.NewInt(1000), big.NewInt(0), big.NewInt(1000))
		Expect(err).To(MatchError("Exchange: INSUFFICIENT_LIQUIDITY"))
	})

	It("GetOutputPrice", func() {
		in, err := trade.GetOutputPrice(trade.DEFAULT_FEE, big.NewInt(500), big.NewInt(1000), big.NewInt(1000))
		Expect(err).To(Succeed())
		Expect(in.Int64()).To(Equal(int64(1004)))

		_, err = trade.GetOutputPrice(trade.DEFAULT_FEE, big.NewInt(1000), big.NewInt(1000), big.NewInt(1000))
		Expect(err).To(MatchError("Exchange: INSUFFICIENT_LIQUIDITY"))
	})

	It("zero fee keeps the constant product", func() {
		out, err := trade.GetInputPrice(0, big.NewInt(100), big.NewInt(100), big.NewInt(100))
		Expect(err).To(Succeed())
		Expect(out.Int64()).To(Equal(int64(50)))
	})
})

var _ = Describe("exchange", func() {
	var exchange common.Address

	BeforeEach(func() {
		beforeEach()
		exchange = createExchange(dai)
	})

	AfterEach(func() {
		afterEach()
	})

	It("metadata", func() {
		is, err := Exec(genesis, alice, exchange, "TokenAddress", nil)
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(dai))

		is, err = Exec(genesis, alice, exchange, "FactoryAddress", nil)
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(factoryAddr))

		is, err = Exec(genesis, alice, exchange, "Fee", nil)
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(uint64(trade.DEFAULT_FEE)))

		is, err = Exec(genesis, alice, exchange, "Symbol", nil)
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal("EXV1"))
	})

	It("swap on an empty exchange", func() {
		approve(bob, mainToken, exchange)
		_, err := Exec(genesis, bob, exchange, "EthToTokenSwapInput", []interface{}{amount.NewAmount(1, 0), ZeroAmount})
		Expect(err).To(MatchError("Exchange: INSUFFICIENT_LIQUIDITY"))
	})

	Describe("AddLiquidity", func() {
		It("initial deposit", func() {
			seedLiquidity(exchange, alice)

			Expect(balanceOf(exchange, alice)).To(Equal("10"))
			Expect(balanceOf(mainToken, exchange)).To(Equal("10"))
			Expect(balanceOf(dai, exchange)).To(Equal("20000"))
			Expect(balanceOf(mainToken, alice)).To(Equal("999990"))
			Expect(balanceOf(dai, alice)).To(Equal("980000"))

			is, err := Exec(genesis, alice, exchange, "Reserves", nil)
			Expect(err).To(Succeed())
			Expect(is[0].(*amount.Amount).String()).To(Equal("10"))
			Expect(is[1].(*amount.Amount).String()).To(Equal("20000"))
		})

		It("initial deposit below minimum", func() {
			approve(alice, mainToken, exchange)
			approve(alice, dai, exchange)
			_, err := Exec(genesis, alice, exchange, "AddLiquidity", []interface{}{ZeroAmount, _SeedTokens, amount.NewAmount(0, 1)})
			Expect(err).To(MatchError("Exchange: INSUFFICIENT_INITIAL_AMOUNT"))
		})

		It("zero coin", func() {
			_, err := Exec(genesis, alice, exchange, "AddLiquidity", []interface{}{ZeroAmount, _SeedTokens, ZeroAmount})
			Expect(err).To(MatchError("Exchange: INSUFFICIENT_INPUT_AMOUNT"))
		})

		It("without allowance", func() {
			_, err := Exec(genesis, alice, exchange, "AddLiquidity", []interface{}{ZeroAmount, _SeedTokens, _SeedCoin})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Token: TRANSFER_EXCEED_ALLOWANCE"))
			Expect(balanceOf(exchange, alice)).To(Equal("0"))
		})

		It("proportional deposit", func() {
			seedLiquidity(exchange, alice)
			approve(bob, mainToken, exchange)
			approve(bob, dai, exchange)

			_, err := Exec(genesis, bob, exchange, "AddLiquidity", []interface{}{amount.NewAmount(1, 0), amount.NewAmount(1999, 0), amount.NewAmount(1, 0)})
			Expect(err).To(MatchError("Exchange: EXCESSIVE_INPUT_AMOUNT"))

			_, err = Exec(genesis, bob, exchange, "AddLiquidity", []interface{}{amount.NewAmount(2, 0), amount.NewAmount(3000, 0), amount.NewAmount(1, 0)})
			Expect(err).To(MatchError("Exchange: INSUFFICIENT_LIQUIDITY_MINTED"))

			is, err := Exec(genesis, bob, exchange, "AddLiquidity", []interface{}{amount.NewAmount(1, 0), amount.NewAmount(3000, 0), amount.NewAmount(1, 0)})
			Expect(err).To(Succeed())
			Expect(is[0].(*amount.Amount).String()).To(Equal("1"))

			Expect(balanceOf(exchange, bob)).To(Equal("1"))
			Expect(balanceOf(dai, bob)).To(Equal("997999.999999999999999999"))
			Expect(balanceOf(mainToken, exchange)).To(Equal("11"))
		})
	})

	Describe("RemoveLiquidity", func() {
		BeforeEach(func() {
			seedLiquidity(exchange, alice)
		})

		It("half", func() {
			is, err := Exec(genesis, alice, exchange, "RemoveLiquidity", []interface{}{amount.NewAmount(5, 0), amount.NewAmount(5, 0), amount.NewAmount(10000, 0)})
			Expect(err).To(Succeed())
			Expect(is[0].(*amount.Amount).String()).To(Equal("5"))
			Expect(is[1].(*amount.Amount).String()).To(Equal("10000"))

			Expect(balanceOf(exchange, alice)).To(Equal("5"))
			Expect(balanceOf(mainToken, alice)).To(Equal("999995"))
			Expect(balanceOf(dai, alice)).To(Equal("990000"))
		})

		It("minimum not met", func() {
			_, err := Exec(genesis, alice, exchange, "RemoveLiquidity", []interface{}{amount.NewAmount(5, 0), amount.NewAmount(6, 0), ZeroAmount})
			Expect(err).To(MatchError("Exchange: INSUFFICIENT_OUTPUT_AMOUNT"))
			Expect(balanceOf(exchange, alice)).To(Equal("10"))
		})

		It("more than owned", func() {
			_, err := Exec(genesis, bob, exchange, "RemoveLiquidity", []interface{}{amount.NewAmount(1, 0), ZeroAmount, ZeroAmount})
			Expect(err).To(MatchError("LPToken: BURN_EXCEED_BALANCE"))
		})
	})

	Describe("swap", func() {
		BeforeEach(func() {
			seedLiquidity(exchange, alice)
			approve(bob, mainToken, exchange)
			approve(bob, dai, exchange)
		})

		It("EthToTokenSwapInput", func() {
			ethSold := amount.NewAmount(1, 0)
			expected, err := trade.GetInputPrice(trade.DEFAULT_FEE, ethSold.Int, _SeedCoin.Int, _SeedTokens.Int)
			Expect(err).To(Succeed())

			quote, err := ViewAmount(genesis, exchange, "GetEthToTokenInputPrice", ethSold)
			Expect(err).To(Succeed())
			Expect(quote.String()).To(Equal(ToAmount(expected).String()))

			is, err := Exec(genesis, bob, exchange, "EthToTokenSwapInput", []interface{}{ethSold, quote})
			Expect(err).To(Succeed())
			Expect(is[0].(*amount.Amount).String()).To(Equal(quote.String()))

			Expect(balanceOf(dai, bob)).To(Equal(_Supply.Add(quote).String()))
			Expect(balanceOf(mainToken, bob)).To(Equal("999999"))
			Expect(balanceOf(mainToken, exchange)).To(Equal("11"))
		})

		It("EthToTokenSwapInput below minimum reverts", func() {
			_, err := Exec(genesis, bob, exchange, "EthToTokenSwapInput", []interface{}{amount.NewAmount(1, 0), amount.NewAmount(2000, 0)})
			Expect(err).To(MatchError("Exchange: INSUFFICIENT_OUTPUT_AMOUNT"))
			Expect(balanceOf(mainToken, bob)).To(Equal("1000000"))
			Expect(balanceOf(dai, bob)).To(Equal("1000000"))
		})

		It("EthToTokenTransferInput", func() {
			is, err := Exec(genesis, bob, exchange, "EthToTokenTransferInput", []interface{}{amount.NewAmount(1, 0), ZeroAmount, admin})
			Expect(err).To(Succeed())
			Expect(balanceOf(dai, admin)).To(Equal(is[0].(*amount.Amount).String()))
			Expect(balanceOf(dai, bob)).To(Equal("1000000"))
		})

		It("TokenToEthSwapInput", func() {
			tokensSold := amount.NewAmount(2000, 0)
			quote, err := ViewAmount(genesis, exchange, "GetTokenToEthInputPrice", tokensSold)
			Expect(err).To(Succeed())
			expected, err := trade.GetInputPrice(trade.DEFAULT_FEE, tokensSold.Int, _SeedTokens.Int, _SeedCoin.Int)
			Expect(err).To(Succeed())
			Expect(quote.String()).To(Equal(ToAmount(expected).String()))

			is, err := Exec(genesis, bob, exchange, "TokenToEthSwapInput", []interface{}{tokensSold, ZeroAmount})
			Expect(err).To(Succeed())
			Expect(is[0].(*amount.Amount).String()).To(Equal(quote.String()))
			Expect(balanceOf(dai, bob)).To(Equal("998000"))
			Expect(balanceOf(mainToken, bob)).To(Equal(_Supply.Add(quote).String()))
		})

		It("output price covers the input price", func() {
			want := amount.NewAmount(100, 0)
			in, err := ViewAmount(genesis, exchange, "GetEthToTokenOutputPrice", want)
			Expect(err).To(Succeed())
			out, err := ViewAmount(genesis, exchange, "GetEthToTokenInputPrice", in)
			Expect(err).To(Succeed())
			Expect(out.Cmp(want.Int)).To(BeNumerically(">=", 0))
		})
	})
})
