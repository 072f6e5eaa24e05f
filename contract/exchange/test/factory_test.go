package test

import (
	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/contract/exchange/trade"

	. "github.com/meverselabs/defizap/contract/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("factory", func() {

	BeforeEach(func() {
		beforeEach()
	})

	AfterEach(func() {
		afterEach()
	})

	It("Owner, ExchangeCount", func() {
		is, err := Exec(genesis, admin, factoryAddr, "Owner", []interface{}{})
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(admin))

		is, err = Exec(genesis, admin, factoryAddr, "ExchangeCount", []interface{}{})
		Expect(err).To(Succeed())
		Expect(is[0].(uint32)).To(Equal(uint32(0)))
	})

	It("CreateExchange", func() {
		exchange := createExchange(dai)
		Expect(exchange).To(Equal(trade.ExchangeFor(factoryAddr, dai, classMap["Exchange"])))
		Expect(genesis.IsContract(exchange)).To(BeTrue())

		is, err := Exec(genesis, admin, factoryAddr, "GetExchange", []interface{}{dai})
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(exchange))

		is, err = Exec(genesis, admin, factoryAddr, "GetToken", []interface{}{exchange})
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(dai))

		is, err = Exec(genesis, admin, factoryAddr, "AllExchanges", []interface{}{})
		Expect(err).To(Succeed())
		Expect(is[0].([]common.Address)).To(Equal([]common.Address{exchange}))

		is, err = Exec(genesis, admin, factoryAddr, "ExchangeCount", []interface{}{})
		Expect(err).To(Succeed())
		Expect(is[0].(uint32)).To(Equal(uint32(1)))
	})

	It("CreateExchange errors", func() {
		createExchange(dai)

		_, err := Exec(genesis, alice, factoryAddr, "CreateExchange", []interface{}{dai})
		Expect(err).To(MatchError("Exchange: EXCHANGE_EXISTS"))

		_, err = Exec(genesis, alice, factoryAddr, "CreateExchange", []interface{}{ZeroAddress})
		Expect(err).To(MatchError("Exchange: ZERO_ADDRESS"))

		_, err = Exec(genesis, alice, factoryAddr, "CreateExchange", []interface{}{mainToken})
		Expect(err).To(MatchError("Exchange: MAIN_TOKEN"))

		_, err = Exec(genesis, alice, factoryAddr, "CreateExchange", []interface{}{bob})
		Expect(err).To(MatchError("Exchange: NOT_CONTRACT"))
	})

	It("unknown token has no exchange", func() {
		is, err := Exec(genesis, admin, factoryAddr, "GetExchange", []interface{}{bob})
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(ZeroAddress))

		is, err = Exec(genesis, admin, factoryAddr, "AllExchanges", []interface{}{})
		Expect(err).To(Succeed())
		Expect(is[0].([]common.Address)).To(BeEmpty())
	})

	It("SetOwner", func() {
		_, err := Exec(genesis, alice, factoryAddr, "SetOwner", []interface{}{alice})
		Expect(err).To(MatchError("Exchange: FORBIDDEN"))

		_, err = Exec(genesis, admin, factoryAddr, "SetOwner", []interface{}{alice})
		Expect(err).To(Succeed())

		is, err := Exec(genesis, admin, factoryAddr, "Owner", []interface{}{})
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(alice))
	})
})
