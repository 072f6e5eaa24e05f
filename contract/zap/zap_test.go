package zap_test

import (
	"math/big"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/contract/exchange/trade"
	"github.com/meverselabs/defizap/contract/zap"

	. "github.com/meverselabs/defizap/contract/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

const (
	daiHex  = "0x6B175474E89094C44Da98b954EedeAC495271d0F"
	cdaiHex = "0x5d3a536E4D6DbD6114cc1Ead35777bAB948E3643"
	ethHex  = "0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE"
)

var _ = Describe("Zap", func() {

	BeforeEach(func() {
		beforeEach()
	})

	AfterEach(func() {
		afterEach()
	})

	It("checking parameters", func() {
		initialize()

		Expect(exec(admin, zapAddr, "NEWDAI_TOKEN_ADDRESS")[0].(common.Address).Hex()).To(Equal(daiHex))
		Expect(exec(admin, zapAddr, "COMPOUND_TOKEN_ADDRESS")[0].(common.Address).Hex()).To(Equal(cdaiHex))
		Expect(exec(admin, zapAddr, "DAI_TOKEN_ADDRESS")[0].(common.Address).Hex()).To(Equal(daiHex))
		Expect(exec(admin, zapAddr, "ETH_TOKEN_ADDRESS")[0].(common.Address).Hex()).To(Equal(ethHex))
		Expect(exec(admin, zapAddr, "isOwner")[0]).To(Equal(true))

		Expect(exec(alice, zapAddr, "isOwner")[0]).To(Equal(false))
		Expect(exec(alice, zapAddr, "Owner")[0]).To(Equal(admin))
		Expect(exec(alice, zapAddr, "Slippage")[0]).To(Equal(_Slippage))
		Expect(exec(alice, zapAddr, "IsStopped")[0]).To(Equal(false))
	})

	It("initialize once", func() {
		Expect(exec(admin, zapAddr, "isOwner")[0]).To(Equal(false))
		initialize()

		_, err := Exec(genesis, alice, zapAddr, "initialize", nil)
		Expect(err).To(MatchError("Zap: ALREADY_INITIALIZED"))
		Expect(exec(alice, zapAddr, "Owner")[0]).To(Equal(admin))
	})

	Describe("invest", func() {
		BeforeEach(func() {
			initialize()
			approve(alice, mainToken, zapAddr)
		})

		It("lets invest", func() {
			exec(alice, zapAddr, "send", 1)
			exec(alice, zapAddr, "send", 1)
			Expect(balanceOf(mainToken, alice)).To(Equal("999.999999999999999998"))
		})

		It("one coin", func() {
			ethSold := amount.NewAmount(1, 0)
			daiBought, err := trade.GetInputPrice(trade.DEFAULT_FEE, ethSold.Int, _SeedCoin.Int, _SeedTokens.Int)
			Expect(err).To(Succeed())
			expected := ToAmount(MulC(daiBought, 50)) // 1 / 0.02

			is := exec(alice, zapAddr, "LetsInvest", ethSold)
			Expect(is[0].(*amount.Amount).String()).To(Equal(expected.String()))

			Expect(balanceOf(cdai, alice)).To(Equal(expected.String()))
			Expect(balanceOf(mainToken, alice)).To(Equal("999"))
			Expect(balanceOf(mainToken, exchange)).To(Equal("101"))
			Expect(balanceOf(dai, cdai)).To(Equal(ToAmount(daiBought).String()))

			Expect(balanceOf(mainToken, zapAddr)).To(Equal("0"))
			Expect(balanceOf(dai, zapAddr)).To(Equal("0"))
			Expect(balanceOf(cdai, zapAddr)).To(Equal("0"))
		})

		It("invest errors", func() {
			_, err := Exec(genesis, alice, zapAddr, "send", []interface{}{ZeroAmount})
			Expect(err).To(MatchError("Zap: INVALID_AMOUNT"))

			_, err = Exec(genesis, bob, zapAddr, "send", []interface{}{amount.NewAmount(1, 0)})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Token: TRANSFER_EXCEED_BALANCE"))

			_, err = Exec(genesis, alice, zapAddr, "send", []interface{}{amount.NewAmount(1001, 0)})
			Expect(err).To(HaveOccurred())
			Expect(balanceOf(mainToken, alice)).To(Equal("1000"))
		})

		It("stopped", func() {
			exec(admin, zapAddr, "ToggleContractActive")
			Expect(exec(alice, zapAddr, "IsStopped")[0]).To(Equal(true))

			_, err := Exec(genesis, alice, zapAddr, "send", []interface{}{amount.NewAmount(1, 0)})
			Expect(err).To(MatchError("Zap: STOPPED"))

			exec(admin, zapAddr, "ToggleContractActive")
			exec(alice, zapAddr, "send", amount.NewAmount(1, 0))
		})
	})

	It("invest before initialize", func() {
		approve(alice, mainToken, zapAddr)
		_, err := Exec(genesis, alice, zapAddr, "send", []interface{}{amount.NewAmount(1, 0)})
		Expect(err).To(MatchError("Zap: NOT_INITIALIZED"))
	})

	Describe("getReturn", func() {
		BeforeEach(func() {
			initialize()
		})

		It("get return", func() {
			is := exec(admin, zapAddr, "getReturn", daiHex, daiHex, 10)
			Expect(is[0].(*amount.Amount).Int.Int64()).To(Equal(int64(10)))
		})

		It("coin to token", func() {
			ethSold := amount.NewAmount(1, 0)
			out, err := trade.GetInputPrice(trade.DEFAULT_FEE, ethSold.Int, _SeedCoin.Int, _SeedTokens.Int)
			Expect(err).To(Succeed())

			is := exec(admin, zapAddr, "getReturn", ethHex, daiHex, ethSold)
			Expect(is[0].(*amount.Amount).String()).To(Equal(ToAmount(out).String()))

			is = exec(admin, zapAddr, "getReturn", mainToken, dai, ethSold)
			Expect(is[0].(*amount.Amount).String()).To(Equal(ToAmount(out).String()))
		})

		It("token to coin", func() {
			tokensSold := amount.NewAmount(2000, 0)
			out, err := trade.GetInputPrice(trade.DEFAULT_FEE, tokensSold.Int, _SeedTokens.Int, _SeedCoin.Int)
			Expect(err).To(Succeed())

			is := exec(admin, zapAddr, "getReturn", daiHex, ethHex, tokensSold)
			Expect(is[0].(*amount.Amount).String()).To(Equal(ToAmount(out).String()))
		})

		It("token to token routes through the coin", func() {
			usdc := deploy(classMap["Token"], tokenArgs("USD Coin", "USDC", map[common.Address]*amount.Amount{
				admin: amount.NewAmount(1000000, 0),
			}))
			createMarket(usdc, amount.NewAmount(50, 0), amount.NewAmount(100000, 0))

			tokensSold := amount.NewAmount(1000, 0)
			ethBought, err := trade.GetInputPrice(trade.DEFAULT_FEE, tokensSold.Int, _SeedTokens.Int, _SeedCoin.Int)
			Expect(err).To(Succeed())
			out, err := trade.GetInputPrice(trade.DEFAULT_FEE, ethBought, amount.NewAmount(50, 0).Int, amount.NewAmount(100000, 0).Int)
			Expect(err).To(Succeed())

			is := exec(admin, zapAddr, "getReturn", dai, usdc, tokensSold)
			Expect(is[0].(*amount.Amount).String()).To(Equal(ToAmount(out).String()))
		})

		It("token without exchange", func() {
			_, err := Exec(genesis, admin, zapAddr, "getReturn", []interface{}{ethHex, bob, amount.NewAmount(1, 0)})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("Zap: EXCHANGE_NOT_FOUND"))
		})
	})

	Describe("getMaxTokens", func() {
		BeforeEach(func() {
			initialize()
		})

		It("get max", func() {
			is := exec(admin, zapAddr, "getMaxTokens", daiHex, daiHex, 10)
			Expect(is[0]).NotTo(BeNil())
			Expect(is[0].(*amount.Amount).String()).To(Equal("0"))
		})

		It("reserves of the exchange", func() {
			is := exec(admin, zapAddr, "getMaxTokens", exchange, dai, amount.NewAmount(1, 0))
			Expect(is[0].(*amount.Amount).String()).To(Equal("1980.198019801980198019"))
		})

		It("zero value", func() {
			is := exec(admin, zapAddr, "getMaxTokens", exchange, dai, ZeroAmount)
			Expect(is[0].(*amount.Amount).String()).To(Equal("0"))
		})
	})

	Describe("Redeem", func() {
		BeforeEach(func() {
			initialize()
		})

		It("redeem", func() {
			is := exec(admin, zapAddr, "Redeem", admin, 10)
			Expect(is[0].(*amount.Amount).String()).To(Equal("0"))
		})

		It("only owner", func() {
			_, err := Exec(genesis, alice, zapAddr, "Redeem", []interface{}{alice, 10})
			Expect(err).To(MatchError("Zap: NOT_OWNER"))
		})

		It("releases the DAI of held cDAI", func() {
			approve(alice, mainToken, zapAddr)
			exec(alice, zapAddr, "send", amount.NewAmount(1, 0))
			exec(alice, cdai, "Transfer", zapAddr, amount.NewAmount(500, 0))

			is := exec(admin, zapAddr, "Redeem", bob, amount.NewAmount(500, 0))
			Expect(is[0].(*amount.Amount).String()).To(Equal("10"))
			Expect(balanceOf(dai, bob)).To(Equal("10"))
			Expect(balanceOf(cdai, zapAddr)).To(Equal("0"))
		})

		It("caps at the held cDAI", func() {
			approve(alice, mainToken, zapAddr)
			exec(alice, zapAddr, "send", amount.NewAmount(1, 0))
			exec(alice, cdai, "Transfer", zapAddr, amount.NewAmount(100, 0))

			is := exec(admin, zapAddr, "Redeem", bob, amount.NewAmount(500, 0))
			Expect(is[0].(*amount.Amount).String()).To(Equal("2"))
			Expect(balanceOf(dai, bob)).To(Equal("2"))
		})
	})

	Describe("owner", func() {
		BeforeEach(func() {
			initialize()
		})

		It("SetSlippage", func() {
			_, err := Exec(genesis, alice, zapAddr, "SetSlippage", []interface{}{uint64(100)})
			Expect(err).To(MatchError("Zap: NOT_OWNER"))

			_, err = Exec(genesis, admin, zapAddr, "SetSlippage", []interface{}{uint64(zap.SLIPPAGE_DENOMINATOR + 1)})
			Expect(err).To(MatchError("Zap: INVALID_SLIPPAGE"))

			exec(admin, zapAddr, "SetSlippage", uint64(100))
			Expect(exec(admin, zapAddr, "Slippage")[0]).To(Equal(uint64(100)))
		})

		It("SetSlippage moves the swap bound", func() {
			ethSold := amount.NewAmount(1, 0)
			quote := exec(alice, zapAddr, "getReturn", mainToken, dai, ethSold)[0].(*amount.Amount)

			exec(admin, zapAddr, "SetSlippage", uint64(0))
			Expect(exec(alice, zapAddr, "GetMinTokens", ethSold)[0].(*amount.Amount).String()).To(Equal(quote.String()))

			exec(admin, zapAddr, "SetSlippage", uint64(1000))
			tenth := exec(alice, zapAddr, "GetMinTokens", ethSold)[0].(*amount.Amount)
			Expect(tenth.String()).To(Equal(ToAmount(MulDivC(quote.Int, big.NewInt(9000), zap.SLIPPAGE_DENOMINATOR)).String()))

			exec(admin, zapAddr, "SetSlippage", uint64(zap.SLIPPAGE_DENOMINATOR))
			Expect(exec(alice, zapAddr, "GetMinTokens", ethSold)[0].(*amount.Amount).String()).To(Equal("0"))

			approve(alice, mainToken, zapAddr)
			exec(admin, zapAddr, "SetSlippage", uint64(0))
			minted := exec(alice, zapAddr, "send", ethSold)[0].(*amount.Amount)
			Expect(minted.String()).To(Equal(ToAmount(MulC(quote.Int, 50)).String()))
		})

		It("TransferOwnership", func() {
			_, err := Exec(genesis, admin, zapAddr, "TransferOwnership", []interface{}{ZeroAddress})
			Expect(err).To(MatchError("Zap: OWNER_ZEROADDRESS"))

			exec(admin, zapAddr, "TransferOwnership", alice)
			Expect(exec(alice, zapAddr, "isOwner")[0]).To(Equal(true))
			Expect(exec(admin, zapAddr, "isOwner")[0]).To(Equal(false))

			_, err = Exec(genesis, admin, zapAddr, "ToggleContractActive", nil)
			Expect(err).To(MatchError("Zap: NOT_OWNER"))
		})

		It("WithdrawTokens", func() {
			exec(admin, mainToken, "Transfer", zapAddr, amount.NewAmount(5, 0))
			exec(admin, dai, "Transfer", zapAddr, amount.NewAmount(7, 0))

			is := exec(admin, zapAddr, "WithdrawTokens", ethHex)
			Expect(is[0].(*amount.Amount).String()).To(Equal("5"))
			is = exec(admin, zapAddr, "WithdrawTokens", dai)
			Expect(is[0].(*amount.Amount).String()).To(Equal("7"))

			Expect(balanceOf(mainToken, zapAddr)).To(Equal("0"))
			Expect(balanceOf(dai, zapAddr)).To(Equal("0"))

			is = exec(admin, zapAddr, "WithdrawTokens", dai)
			Expect(is[0].(*amount.Amount).Int.Cmp(big.NewInt(0))).To(Equal(0))
		})
	})
})
