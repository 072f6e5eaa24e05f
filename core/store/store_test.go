package store_test

import (
	"fmt"
	"math/big"
	"path/filepath"
	"sync"
	"testing"

	"github.com/meverselabs/defizap/common"
	"github.com/meverselabs/defizap/common/amount"
	"github.com/meverselabs/defizap/common/bin"
	"github.com/meverselabs/defizap/contract/token"
	"github.com/meverselabs/defizap/contract/util"
	"github.com/meverselabs/defizap/core/store"
	"github.com/meverselabs/defizap/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	admin = common.HexToAddress("0x477C578843cBe53C3568736347f640c2cdA4616F")
	alice = common.HexToAddress("0x1000000000000000000000000000000000000001")
)

func deployCoin(t *testing.T, ctx *types.Context) common.Address {
	classID := types.MustRegisterContractType(&token.TokenContract{})
	bs, _, err := bin.WriterToBytes(&token.TokenContractConstruction{
		Name:   "Coin",
		Symbol: "COIN",
		InitialSupplyMap: map[common.Address]*amount.Amount{
			admin: amount.NewAmount(1000, 0),
		},
	})
	require.NoError(t, err)
	cont, err := ctx.DeployContract(admin, classID, bs)
	require.NoError(t, err)
	ctx.SetMainToken(cont.Address())
	return cont.Address()
}

func TestStoreGenesis(t *testing.T) {
	st, err := store.OpenMemory(big.NewInt(1337), 1)
	require.NoError(t, err)
	defer st.Close()

	assert.Equal(t, uint32(0), st.Height())
	assert.Nil(t, st.MainToken())

	ctx := types.NewContext(st)
	coin := deployCoin(t, ctx)
	require.NoError(t, st.StoreGenesis(ctx, 100))

	assert.Equal(t, uint32(0), st.Height())
	assert.Equal(t, uint32(1), st.TargetHeight())
	assert.Equal(t, uint64(100), st.LastTimestamp())
	assert.Equal(t, ctx.Hash(), st.PrevHash())
	require.NotNil(t, st.MainToken())
	assert.Equal(t, coin, *st.MainToken())
	assert.True(t, st.IsContract(coin))
	assert.False(t, st.IsContract(alice))

	cds, err := st.Contracts()
	require.NoError(t, err)
	require.Len(t, cds, 1)
	assert.Equal(t, coin, cds[0].Address)

	err = st.StoreGenesis(types.NewContext(st), 100)
	assert.ErrorIs(t, err, store.ErrAlreadyGenesised)
}

func TestStoreContext(t *testing.T) {
	st, err := store.OpenMemory(big.NewInt(1337), 1)
	require.NoError(t, err)
	defer st.Close()

	gen := types.NewContext(st)
	coin := deployCoin(t, gen)
	require.NoError(t, st.StoreGenesis(gen, 100))

	ctx := types.NewContext(st)
	_, err = util.Exec(ctx, admin, coin, "Transfer", []interface{}{alice, amount.NewAmount(10, 0)})
	require.NoError(t, err)
	require.NoError(t, st.StoreContext(ctx, 200))

	assert.Equal(t, uint32(1), st.Height())
	assert.Equal(t, uint64(200), st.LastTimestamp())
	h, err := st.Hash(1)
	require.NoError(t, err)
	assert.Equal(t, ctx.Hash(), h)

	next := types.NewContext(st)
	bal, err := util.BalanceOf(next, coin, alice)
	require.NoError(t, err)
	assert.Equal(t, "10", bal.String())
	bal, err = util.BalanceOf(next, coin, admin)
	require.NoError(t, err)
	assert.Equal(t, "990", bal.String())

	err = st.StoreContext(ctx, 300)
	assert.ErrorIs(t, err, store.ErrInvalidHeight)
}

func TestStoreDeletedData(t *testing.T) {
	st, err := store.OpenMemory(big.NewInt(1337), 1)
	require.NoError(t, err)
	defer st.Close()

	gen := types.NewContext(st)
	coin := deployCoin(t, gen)
	gen.SetData(coin, alice, []byte("memo"), []byte("hello"))
	require.NoError(t, st.StoreGenesis(gen, 0))
	assert.Equal(t, []byte("hello"), st.Data(coin, alice, []byte("memo")))

	ctx := types.NewContext(st)
	ctx.SetData(coin, alice, []byte("memo"), nil)
	require.NoError(t, st.StoreContext(ctx, 1))
	assert.Nil(t, st.Data(coin, alice, []byte("memo")))
}

func TestStoreReopen(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "state")

	st, err := store.Open(dir, big.NewInt(1337), 1)
	require.NoError(t, err)
	gen := types.NewContext(st)
	coin := deployCoin(t, gen)
	require.NoError(t, st.StoreGenesis(gen, 0))
	st.Close()

	_, err = st.Hash(0)
	assert.ErrorIs(t, err, store.ErrStoreClosed)

	st, err = store.Open(dir, big.NewInt(1337), 1)
	require.NoError(t, err)
	defer st.Close()

	bal, err := util.BalanceOf(types.NewContext(st), coin, admin)
	require.NoError(t, err)
	assert.Equal(t, "1000", bal.String())
}

func TestStoreDataWhileCommitting(t *testing.T) {
	st, err := store.OpenMemory(big.NewInt(1337), 1)
	require.NoError(t, err)
	defer st.Close()

	gen := types.NewContext(st)
	coin := deployCoin(t, gen)
	require.NoError(t, st.StoreGenesis(gen, 0))

	const rounds = 300
	var name []byte
	var nameLock sync.Mutex
	done := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-done:
					return
				default:
				}
				nameLock.Lock()
				n := name
				nameLock.Unlock()
				if n != nil {
					st.Data(coin, alice, n)
				}
			}
		}()
	}

	for i := 0; i < rounds; i++ {
		n := []byte(fmt.Sprintf("key%v", i))
		nameLock.Lock()
		name = n
		nameLock.Unlock()

		ctx := types.NewContext(st)
		ctx.SetData(coin, alice, n, []byte{1})
		require.NoError(t, st.StoreContext(ctx, uint64(i+1)))
	}
	close(done)
	wg.Wait()

	var missing int
	for i := 0; i < rounds; i++ {
		if len(st.Data(coin, alice, []byte(fmt.Sprintf("key%v", i)))) == 0 {
			missing++
		}
	}
	assert.Zero(t, missing)
}
