package keeper_test

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
	ibctesting "github.com/ibc-apps/wrapped-transfer/testing"
)

func (suite *KeeperTestSuite) TestIncreaseChannelBalance() {
	var initial sdkmath.Uint

	testCases := []struct {
		name       string
		malleate   func()
		amount     sdkmath.Uint
		expBalance sdkmath.Uint
		expError   error
	}{
		{
			"success: missing entry starts at zero",
			func() {},
			sdkmath.NewUint(1000),
			sdkmath.NewUint(1000),
			nil,
		},
		{
			"success: adds to existing balance",
			func() {
				initial = sdkmath.NewUint(250)
			},
			sdkmath.NewUint(1000),
			sdkmath.NewUint(1250),
			nil,
		},
		{
			"success: reaches maximum",
			func() {
				initial = types.MaxAmount.Sub(sdkmath.OneUint())
			},
			sdkmath.OneUint(),
			types.MaxAmount,
			nil,
		},
		{
			"failure: overflow leaves balance untouched",
			func() {
				initial = types.MaxAmount
			},
			sdkmath.OneUint(),
			types.MaxAmount,
			types.ErrBalanceOverflow,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			k := suite.fixture.Keeper
			ctx := suite.fixture.Ctx
			initial = sdkmath.ZeroUint()

			tc.malleate()

			if !initial.IsZero() {
				suite.Require().NoError(k.IncreaseChannelBalance(ctx, ibctesting.DefaultChannelID, ibctesting.TokenAddress, initial))
			}

			err := k.IncreaseChannelBalance(ctx, ibctesting.DefaultChannelID, ibctesting.TokenAddress, tc.amount)
			if tc.expError == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expError)
			}

			balance, err := k.GetChannelBalance(ctx, ibctesting.DefaultChannelID, ibctesting.TokenAddress)
			suite.Require().NoError(err)
			suite.Require().Equal(tc.expBalance.String(), balance.String())
		})
	}
}

func (suite *KeeperTestSuite) TestDecreaseChannelBalance() {
	testCases := []struct {
		name       string
		initial    sdkmath.Uint
		amount     sdkmath.Uint
		expBalance sdkmath.Uint
		expError   error
	}{
		{
			"success: partial decrease",
			sdkmath.NewUint(1000),
			sdkmath.NewUint(400),
			sdkmath.NewUint(600),
			nil,
		},
		{
			"success: decrease to zero",
			sdkmath.NewUint(1000),
			sdkmath.NewUint(1000),
			sdkmath.ZeroUint(),
			nil,
		},
		{
			"failure: amount exceeds balance",
			sdkmath.NewUint(1000),
			sdkmath.NewUint(1001),
			sdkmath.NewUint(1000),
			types.ErrInsufficientChannelBalance,
		},
		{
			"failure: missing entry is a zero balance",
			sdkmath.ZeroUint(),
			sdkmath.OneUint(),
			sdkmath.ZeroUint(),
			types.ErrInsufficientChannelBalance,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			k := suite.fixture.Keeper
			ctx := suite.fixture.Ctx

			if !tc.initial.IsZero() {
				suite.Require().NoError(k.IncreaseChannelBalance(ctx, ibctesting.DefaultChannelID, ibctesting.TokenAddress, tc.initial))
			}

			err := k.DecreaseChannelBalance(ctx, ibctesting.DefaultChannelID, ibctesting.TokenAddress, tc.amount)
			if tc.expError == nil {
				suite.Require().NoError(err)
			} else {
				suite.Require().ErrorIs(err, tc.expError)
			}

			balance, err := k.GetChannelBalance(ctx, ibctesting.DefaultChannelID, ibctesting.TokenAddress)
			suite.Require().NoError(err)
			suite.Require().Equal(tc.expBalance.String(), balance.String())
		})
	}
}

func (suite *KeeperTestSuite) TestChannelBalancesAreIndependent() {
	k := suite.fixture.Keeper
	ctx := suite.fixture.Ctx

	suite.Require().NoError(k.IncreaseChannelBalance(ctx, "channel-0", "secret1abc", sdkmath.NewUint(10)))
	suite.Require().NoError(k.IncreaseChannelBalance(ctx, "channel-0", "secret1def", sdkmath.NewUint(20)))
	suite.Require().NoError(k.IncreaseChannelBalance(ctx, "channel-1", "secret1abc", sdkmath.NewUint(30)))

	suite.Require().NoError(k.DecreaseChannelBalance(ctx, "channel-0", "secret1abc", sdkmath.NewUint(10)))

	balance, err := k.GetChannelBalance(ctx, "channel-0", "secret1def")
	suite.Require().NoError(err)
	suite.Require().Equal("20", balance.String())

	balance, err = k.GetChannelBalance(ctx, "channel-1", "secret1abc")
	suite.Require().NoError(err)
	suite.Require().Equal("30", balance.String())

	balances, err := k.GetAllChannelBalances(ctx)
	suite.Require().NoError(err)
	suite.Require().ElementsMatch([]string{
		"channel-0/secret1abc/0",
		"channel-0/secret1def/20",
		"channel-1/secret1abc/30",
	}, balanceStrings(balances))
}

func balanceStrings(balances []types.ChannelBalance) []string {
	strs := make([]string, len(balances))
	for i, balance := range balances {
		strs[i] = fmt.Sprintf("%s/%s/%s", balance.ChannelID, balance.TokenAddress, balance.Amount)
	}
	return strs
}
