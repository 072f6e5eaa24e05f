package zap_test

import (
	"testing"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/common/bin"
	"github.com/meverselabs/defizap/contract/exchange/factory"
	"github.com/meverselabs/defizap/contract/exchange/trade"
	"github.com/meverselabs/defizap/contract/lending"
	"github.com/meverselabs/defizap/contract/token"
	"github.com/meverselabs/defizap/contract/zap"
	"github.com/meverselabs/defizap/core/types"

	. "github.com/meverselabs/defizap/contract/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestZap(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Zap Suite")
}

var (
	classMap = map[string]uint64{}

	admin = common.HexToAddress("0x477C578843cBe53C3568736347f640c2cdA4616F")
	alice = common.HexToAddress("0x1000000000000000000000000000000000000001")
	bob   = common.HexToAddress("0x1000000000000000000000000000000000000002")

	genesis *types.Context

	mainToken   common.Address
	dai         common.Address
	cdai        common.Address
	factoryAddr common.Address
	exchange    common.Address
	zapAddr     common.Address

	_SeedCoin   = amount.NewAmount(100, 0)
	_SeedTokens = amount.NewAmount(200000, 0)
	_Slippage   = uint64(50)
)

var _ = BeforeSuite(func() {
	classMap["Token"] = types.MustRegisterContractType(&token.TokenContract{})
	classMap["Exchange"] = types.MustRegisterContractType(&trade.Exchange{})
	classMap["Factory"] = types.MustRegisterContractType(&factory.FactoryContract{})
	classMap["CToken"] = types.MustRegisterContractType(&lending.CTokenContract{})
	classMap["Zap"] = types.MustRegisterContractType(&zap.ZapContract{})
})

func tokenArgs(name, symbol string, supply map[common.Address]*amount.Amount) []byte {
	bs, _, err := bin.WriterToBytes(&token.TokenContractConstruction{
		Name:             name,
		Symbol:           symbol,
		InitialSupplyMap: supply,
	})
	Expect(err).To(Succeed())
	return bs
}

func deploy(classID uint64, args []byte) common.Address {
	cont, err := genesis.DeployContract(admin, classID, args)
	Expect(err).To(Succeed())
	return cont.Address()
}

func deployAt(classID uint64, addr common.Address, args []byte) common.Address {
	cont, err := genesis.DeployContractWithAddress(admin, classID, addr, args)
	Expect(err).To(Succeed())
	return cont.Address()
}

func exec(user, cont common.Address, method string, args ...interface{}) []interface{} {
	is, err := Exec(genesis, user, cont, method, args)
	Expect(err).To(Succeed())
	return is
}

func approve(user, tokenAddr, spender common.Address) {
	exec(user, tokenAddr, "Approve", spender, MaxUint256)
}

// createMarket deploys an exchange for tokenAddr and seeds it from admin
func createMarket(tokenAddr common.Address, coin, tokens *amount.Amount) common.Address {
	ex := exec(admin, factoryAddr, "CreateExchange", tokenAddr)[0].(common.Address)
	approve(admin, mainToken, ex)
	approve(admin, tokenAddr, ex)
	exec(admin, ex, "AddLiquidity", ZeroAmount, tokens, coin)
	return ex
}

func beforeEach() {
	genesis = types.NewEmptyContext()

	mainToken = deploy(classMap["Token"], tokenArgs("Coin", "COIN", map[common.Address]*amount.Amount{
		admin: amount.NewAmount(1000000, 0),
		alice: amount.NewAmount(1000, 0),
	}))
	genesis.SetMainToken(mainToken)

	dai = deployAt(classMap["Token"], zap.NewDaiTokenAddress, tokenArgs("Dai Stablecoin", "DAI", map[common.Address]*amount.Amount{
		admin: amount.NewAmount(10000000, 0),
	}))

	bs, _, err := bin.WriterToBytes(&factory.FactoryContractConstruction{
		Owner:           admin,
		ExchangeClassID: classMap["Exchange"],
		Fee:             trade.DEFAULT_FEE,
	})
	Expect(err).To(Succeed())
	factoryAddr = deploy(classMap["Factory"], bs)
	exchange = createMarket(dai, _SeedCoin, _SeedTokens)

	bs, _, err = bin.WriterToBytes(&lending.CTokenContractConstruction{
		Name:       "Compound Dai",
		Symbol:     "cDAI",
		Underlying: dai,
		Owner:      admin,
	})
	Expect(err).To(Succeed())
	cdai = deployAt(classMap["CToken"], zap.CompoundTokenAddress, bs)

	bs, _, err = bin.WriterToBytes(&zap.ZapContractConstruction{
		Factory:  factoryAddr,
		Slippage: _Slippage,
	})
	Expect(err).To(Succeed())
	zapAddr = deploy(classMap["Zap"], bs)
}

func afterEach() {
	genesis = nil
}

func initialize() {
	exec(admin, zapAddr, "initialize")
}

func balanceOf(tokenAddr, user common.Address) string {
	am, err := BalanceOf(genesis, tokenAddr, user)
	Expect(err).To(Succeed())
	return am.String()
}
