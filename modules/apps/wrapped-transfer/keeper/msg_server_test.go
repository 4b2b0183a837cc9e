package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	ibcerrors "github.com/cosmos/ibc-go/v8/modules/core/errors"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
	ibctesting "github.com/ibc-apps/wrapped-transfer/testing"
)

func (suite *KeeperTestSuite) TestMsgReceive() {
	var msg *types.MsgReceive

	testCases := []struct {
		name     string
		malleate func()
		expError error
	}{
		{
			"success",
			func() {},
			nil,
		},
		{
			"failure: missing transfer message",
			func() {
				msg.Msg = nil
			},
			types.ErrMissingTransferMsg,
		},
		{
			"failure: malformed transfer message",
			func() {
				msg.Msg = []byte(`{"channel":`)
			},
			types.ErrInvalidTransferMsg,
		},
		{
			"failure: missing transfer message is reported before zero amount",
			func() {
				msg.Msg = nil
				msg.Amount = sdkmath.ZeroUint()
			},
			types.ErrMissingTransferMsg,
		},
		{
			"failure: zero amount",
			func() {
				msg.Amount = sdkmath.ZeroUint()
			},
			types.ErrNoFunds,
		},
		{
			"failure: zero amount is reported before unknown channel",
			func() {
				msg.Amount = sdkmath.ZeroUint()
				msg.Msg = types.NewTransferRequest("channel-9", ibctesting.Receiver, 600, "").GetBytes()
			},
			types.ErrNoFunds,
		},
		{
			"failure: unknown channel",
			func() {
				msg.Msg = types.NewTransferRequest("channel-9", ibctesting.Receiver, 600, "").GetBytes()
			},
			types.ErrNoSuchChannel,
		},
		{
			"failure: notifying token not registered",
			func() {
				msg.Token = "secret1def"
			},
			types.ErrTokenNotRegistered,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.fixture.RegisterToken(ibctesting.TokenAddress, ibctesting.TokenCodeHash)

			msg = types.NewMsgReceive(
				ibctesting.TokenAddress,
				ibctesting.Sender,
				ibctesting.Sender,
				sdkmath.NewUint(1000),
				"",
				ibctesting.DefaultTransferRequest().GetBytes(),
			)

			tc.malleate()

			res, err := suite.fixture.MsgServer.Receive(suite.fixture.Ctx, msg)

			if tc.expError != nil {
				suite.Require().ErrorIs(err, tc.expError)
				suite.Require().Nil(res)

				balance, err := suite.fixture.Keeper.GetChannelBalance(suite.fixture.Ctx, ibctesting.DefaultChannelID, msg.Token)
				suite.Require().NoError(err)
				suite.Require().True(balance.IsZero())
				return
			}

			suite.Require().NoError(err)
			effect := ibctesting.SendPacketEffect(suite.T(), res)
			suite.Require().Equal(ibctesting.DefaultChannelID, effect.SourceChannel)
		})
	}
}

func (suite *KeeperTestSuite) TestMsgReceiveUsesNotifiedSender() {
	suite.fixture.RegisterToken(ibctesting.TokenAddress, ibctesting.TokenCodeHash)

	// the deposit is credited to Sender, From only names the previous owner
	msg := types.NewMsgReceive(ibctesting.TokenAddress, "bob", ibctesting.Sender, sdkmath.NewUint(5), "", ibctesting.DefaultTransferRequest().GetBytes())

	res, err := suite.fixture.MsgServer.Receive(suite.fixture.Ctx, msg)
	suite.Require().NoError(err)

	sender, found := res.GetAttribute(types.AttributeKeySender)
	suite.Require().True(found)
	suite.Require().Equal("bob", sender)
}

func (suite *KeeperTestSuite) TestMsgReceiveMemo() {
	testCases := []struct {
		name       string
		notifyMemo string
		reqMemo    string
		expMemo    string
	}{
		{"request memo wins", "notify", "request", "request"},
		{"notification memo used when request has none", "notify", "", "notify"},
		{"no memo", "", "", ""},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()
			suite.fixture.RegisterToken(ibctesting.TokenAddress, ibctesting.TokenCodeHash)

			req := ibctesting.DefaultTransferRequest()
			req.Memo = tc.reqMemo
			msg := types.NewMsgReceive(ibctesting.TokenAddress, ibctesting.Sender, ibctesting.Sender, sdkmath.NewUint(5), tc.notifyMemo, req.GetBytes())

			res, err := suite.fixture.MsgServer.Receive(suite.fixture.Ctx, msg)
			suite.Require().NoError(err)

			packet, err := types.UnmarshalTransferPacket(ibctesting.SendPacketEffect(suite.T(), res).Data)
			suite.Require().NoError(err)
			suite.Require().Equal(tc.expMemo, packet.Memo)
		})
	}
}

func (suite *KeeperTestSuite) TestMsgUpdateParams() {
	var msg *types.MsgUpdateParams

	testCases := []struct {
		name     string
		malleate func()
		expError error
	}{
		{
			"success: disable sends",
			func() {},
			nil,
		},
		{
			"failure: signer is not the authority",
			func() {
				msg.Signer = ibctesting.Sender
			},
			ibcerrors.ErrUnauthorized,
		},
		{
			"failure: default timeout exceeds maximum",
			func() {
				msg.Params.DefaultTimeoutSeconds = types.MaxTimeoutSeconds + 1
			},
			types.ErrInvalidParams,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			msg = types.NewMsgUpdateParams(ibctesting.Authority, types.NewParams(false, 60))

			tc.malleate()

			ctx := suite.fixture.Ctx
			res, err := suite.fixture.MsgServer.UpdateParams(ctx, msg)

			if tc.expError != nil {
				suite.Require().ErrorIs(err, tc.expError)
				suite.Require().Nil(res)
				suite.Require().Equal(types.DefaultParams(), suite.fixture.Keeper.GetParams(ctx))
				return
			}

			suite.Require().NoError(err)
			suite.Require().Equal(msg.Params, suite.fixture.Keeper.GetParams(ctx))

			_, err = suite.fixture.Deposit(sdkmath.NewUint(1000), ibctesting.DefaultTransferRequest())
			suite.Require().ErrorIs(err, types.ErrSendDisabled)
		})
	}
}
