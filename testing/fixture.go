package ibctesting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	sdkmath "cosmossdk.io/math"
	"cosmossdk.io/store"
	"cosmossdk.io/store/metrics"
	storetypes "cosmossdk.io/store/types"

	dbm "github.com/cosmos/cosmos-db"

	"github.com/cosmos/cosmos-sdk/runtime"
	sdk "github.com/cosmos/cosmos-sdk/types"

	abci "github.com/cometbft/cometbft/abci/types"
	cmtproto "github.com/cometbft/cometbft/proto/tendermint/types"

	channeltypes "github.com/cosmos/ibc-go/v8/modules/core/04-channel/types"

	wrappedtransfer "github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer"
	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/keeper"
	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
	"github.com/ibc-apps/wrapped-transfer/testing/mock"
)

const (
	// Authority is the signer allowed to register tokens and update params.
	Authority = "authority"
	// CodeHash is the code hash of the application under test.
	CodeHash = "c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00c0ffee00"

	DefaultChannelID      = "channel-0"
	CounterpartyPortID    = "transfer"
	CounterpartyChannelID = "channel-7"

	TokenAddress  = "secret1abc"
	TokenCodeHash = "abc123"
	Sender        = "alice"
	Receiver      = "cosmos1xyz"
)

// DefaultBlockTime is the block time of every fixture context.
var DefaultBlockTime = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)

// Fixture wires a wrapped transfer keeper to an in-memory store and a mock
// channel keeper which plays the host.
type Fixture struct {
	TB testing.TB

	Ctx           sdk.Context
	Logger        *mock.MockLogger
	ChannelKeeper *mock.ChannelKeeper

	Keeper      keeper.Keeper
	MsgServer   types.MsgServer
	QueryServer types.QueryServer
	IBCModule   wrappedtransfer.IBCModule
}

// NewFixture creates a fixture with the default genesis and a single open
// channel, DefaultChannelID.
func NewFixture(tb testing.TB) *Fixture {
	tb.Helper()

	key := storetypes.NewKVStoreKey(types.StoreKey)
	db := dbm.NewMemDB()
	logger := mock.NewMockLogger()

	cms := store.NewCommitMultiStore(db, logger, metrics.NewNoOpMetrics())
	cms.MountStoreWithDB(key, storetypes.StoreTypeIAVL, db)
	require.NoError(tb, cms.LoadLatestVersion())

	ctx := sdk.NewContext(cms, cmtproto.Header{Height: 1, Time: DefaultBlockTime}, false, logger)

	channelKeeper := mock.NewChannelKeeper()
	channelKeeper.AddChannel(types.PortID, DefaultChannelID, channeltypes.NewCounterparty(CounterpartyPortID, CounterpartyChannelID))

	k := keeper.NewKeeper(runtime.NewKVStoreService(key), mock.TestAddressCodec{}, channelKeeper, CodeHash, Authority)
	k.InitGenesis(ctx, *types.DefaultGenesisState())

	return &Fixture{
		TB:            tb,
		Ctx:           ctx,
		Logger:        logger,
		ChannelKeeper: channelKeeper,
		Keeper:        k,
		MsgServer:     keeper.NewMsgServerImpl(k),
		QueryServer:   keeper.NewQueryServer(k),
		IBCModule:     wrappedtransfer.NewIBCModule(k),
	}
}

// Events returns the events emitted since the last ResetEvents.
func (f *Fixture) Events() []abci.Event {
	return f.Ctx.EventManager().ABCIEvents()
}

// ResetEvents replaces the event manager of the context.
func (f *Fixture) ResetEvents() {
	f.Ctx = f.Ctx.WithEventManager(sdk.NewEventManager())
}

// RegisterToken registers a token through the msg server.
func (f *Fixture) RegisterToken(address, codeHash string) *types.Response {
	f.TB.Helper()

	res, err := f.MsgServer.RegisterTokens(f.Ctx, types.NewMsgRegisterTokens(Authority, types.NewTokenInfo(address, codeHash)))
	require.NoError(f.TB, err)

	return res
}

// Deposit delivers a deposit notification of TokenAddress from Sender
// carrying the given transfer request. TokenAddress is registered first if
// needed, since only registered tokens notify the application.
func (f *Fixture) Deposit(amount sdkmath.Uint, req types.TransferRequest) (*types.Response, error) {
	if !f.Keeper.IsTokenRegistered(f.Ctx, TokenAddress) {
		f.RegisterToken(TokenAddress, TokenCodeHash)
	}

	msg := types.NewMsgReceive(TokenAddress, Sender, Sender, amount, "", req.GetBytes())
	return f.MsgServer.Receive(f.Ctx, msg)
}

// Transfer deposits amount and dispatches the resulting packet, returning it
// as the counterparty would see it.
func (f *Fixture) Transfer(amount sdkmath.Uint, req types.TransferRequest) channeltypes.Packet {
	f.TB.Helper()

	res, err := f.Deposit(amount, req)
	require.NoError(f.TB, err)

	effect := SendPacketEffect(f.TB, res)
	packet, err := f.ChannelKeeper.SendPacket(effect)
	require.NoError(f.TB, err)

	return packet
}

// SendPacketEffect returns the single SendPacketEffect of a response.
func SendPacketEffect(tb testing.TB, res *types.Response) types.SendPacketEffect {
	tb.Helper()

	require.NotNil(tb, res)
	require.Len(tb, res.Effects, 1)
	effect, ok := res.Effects[0].(types.SendPacketEffect)
	require.True(tb, ok, "expected %T, got %T", types.SendPacketEffect{}, res.Effects[0])

	return effect
}

// DefaultTransferRequest sends to Receiver on DefaultChannelID with a ten
// minute timeout.
func DefaultTransferRequest() types.TransferRequest {
	return types.NewTransferRequest(DefaultChannelID, Receiver, 600, "")
}
