package keeper_test

import (
	ibcerrors "github.com/cosmos/ibc-go/v8/modules/core/errors"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
	ibctesting "github.com/ibc-apps/wrapped-transfer/testing"
)

func (suite *KeeperTestSuite) TestRegisterTokens() {
	var msg *types.MsgRegisterTokens

	testCases := []struct {
		name     string
		malleate func()
		expError error
	}{
		{
			"success: single token",
			func() {},
			nil,
		},
		{
			"success: multiple tokens",
			func() {
				msg.Tokens = append(msg.Tokens, types.NewTokenInfo("secret1def", "def456"))
			},
			nil,
		},
		{
			"success: no tokens",
			func() {
				msg.Tokens = nil
			},
			nil,
		},
		{
			"success: re-registration replaces the code hash",
			func() {
				msg.Tokens = append(msg.Tokens, types.NewTokenInfo(ibctesting.TokenAddress, "fedcba"))
			},
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
			"failure: invalid token address",
			func() {
				msg.Tokens = append(msg.Tokens, types.NewTokenInfo("Not An Address", "def456"))
			},
			types.ErrInvalidAddress,
		},
		{
			"failure: token address too long",
			func() {
				msg.Tokens = append(msg.Tokens, types.NewTokenInfo("secret1"+ibctesting.GenerateString(100), "def456"))
			},
			types.ErrInvalidAddress,
		},
		{
			"failure: blank token address",
			func() {
				msg.Tokens = append(msg.Tokens, types.NewTokenInfo("", "def456"))
			},
			types.ErrInvalidAddress,
		},
		{
			"failure: blank code hash",
			func() {
				msg.Tokens = append(msg.Tokens, types.NewTokenInfo("secret1def", ""))
			},
			types.ErrInvalidCodeHash,
		},
	}

	for _, tc := range testCases {
		suite.Run(tc.name, func() {
			suite.SetupTest()

			msg = types.NewMsgRegisterTokens(ibctesting.Authority, types.NewTokenInfo(ibctesting.TokenAddress, ibctesting.TokenCodeHash))

			tc.malleate()

			ctx := suite.fixture.Ctx
			res, err := suite.fixture.MsgServer.RegisterTokens(ctx, msg)

			if tc.expError != nil {
				suite.Require().ErrorIs(err, tc.expError)
				suite.Require().Nil(res)

				// nothing is registered when any entry is invalid
				tokens, err := suite.fixture.Keeper.GetAllRegisteredTokens(ctx)
				suite.Require().NoError(err)
				suite.Require().Empty(tokens)
				suite.Require().Empty(ibctesting.ParseTokenAddressesFromEvents(suite.fixture.Events()))
				return
			}

			suite.Require().NoError(err)
			suite.Require().Len(res.Effects, 2*len(msg.Tokens))

			expCodeHashes := make(map[string]string)
			for i, token := range msg.Tokens {
				expCodeHashes[token.Address] = token.CodeHash

				suite.Require().Equal(types.RegisterReceiveEffect{
					CodeHash:      ibctesting.CodeHash,
					BlockSize:     types.TokenMsgBlockSize,
					TokenCodeHash: token.CodeHash,
					TokenAddress:  token.Address,
				}, res.Effects[2*i])

				suite.Require().Equal(types.SetViewingKeyEffect{
					Key:           types.ViewingKey,
					BlockSize:     types.TokenMsgBlockSize,
					TokenCodeHash: token.CodeHash,
					TokenAddress:  token.Address,
				}, res.Effects[2*i+1])
			}

			// the last registration of an address wins
			for address, codeHash := range expCodeHashes {
				storedCodeHash, found := suite.fixture.Keeper.GetTokenCodeHash(ctx, address)
				suite.Require().True(found)
				suite.Require().Equal(codeHash, storedCodeHash)
				suite.Require().True(suite.fixture.Keeper.IsTokenRegistered(ctx, address))
			}

			tokens, err := suite.fixture.Keeper.GetAllRegisteredTokens(ctx)
			suite.Require().NoError(err)
			suite.Require().Len(tokens, len(expCodeHashes))

			var expAddresses []string
			for _, token := range msg.Tokens {
				expAddresses = append(expAddresses, token.Address)
			}
			suite.Require().Equal(expAddresses, ibctesting.ParseTokenAddressesFromEvents(suite.fixture.Events()))
		})
	}
}

func (suite *KeeperTestSuite) TestGetTokenCodeHashUnregistered() {
	codeHash, found := suite.fixture.Keeper.GetTokenCodeHash(suite.fixture.Ctx, ibctesting.TokenAddress)
	suite.Require().False(found)
	suite.Require().Empty(codeHash)
	suite.Require().False(suite.fixture.Keeper.IsTokenRegistered(suite.fixture.Ctx, ibctesting.TokenAddress))
}
