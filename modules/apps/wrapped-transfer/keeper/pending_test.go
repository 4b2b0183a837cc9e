package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
	ibctesting "github.com/ibc-apps/wrapped-transfer/testing"
)

func (suite *KeeperTestSuite) TestPendingTransfers() {
	k := suite.fixture.Keeper
	ctx := suite.fixture.Ctx

	_, err := k.GetPendingTransfer(ctx, ibctesting.DefaultChannelID, 1)
	suite.Require().ErrorIs(err, types.ErrPendingTransferNotFound)

	expPending := []types.PendingTransfer{
		types.NewPendingTransfer(ibctesting.DefaultChannelID, 1, ibctesting.TokenAddress, sdkmath.NewUint(10), ibctesting.Sender, ibctesting.Receiver),
		types.NewPendingTransfer(ibctesting.DefaultChannelID, 2, ibctesting.TokenAddress, sdkmath.NewUint(20), ibctesting.Sender, ibctesting.Receiver),
		types.NewPendingTransfer("channel-1", 1, ibctesting.TokenAddress, sdkmath.NewUint(30), ibctesting.Sender, ibctesting.Receiver),
	}

	for _, pending := range expPending {
		suite.Require().NoError(k.SetPendingTransfer(ctx, pending))
	}

	for _, exp := range expPending {
		suite.Require().True(k.HasPendingTransfer(ctx, exp.ChannelID, exp.Sequence))

		pending, err := k.GetPendingTransfer(ctx, exp.ChannelID, exp.Sequence)
		suite.Require().NoError(err)
		suite.Require().Equal(exp.TokenAddress, pending.TokenAddress)
		suite.Require().Equal(exp.Amount.String(), pending.Amount.String())
	}

	suite.Require().NoError(k.RemovePendingTransfer(ctx, ibctesting.DefaultChannelID, 1))
	suite.Require().False(k.HasPendingTransfer(ctx, ibctesting.DefaultChannelID, 1))
	suite.Require().True(k.HasPendingTransfer(ctx, ibctesting.DefaultChannelID, 2))

	all, err := k.GetAllPendingTransfers(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 2)
}
