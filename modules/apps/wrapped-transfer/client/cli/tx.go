package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/codec/address"
	"github.com/cosmos/cosmos-sdk/version"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
)

const (
	flagTimeout      = "timeout"
	flagMemo         = "memo"
	flagBech32Prefix = "bech32-prefix"

	defaultBech32Prefix = "secret"
)

// NewTransferMsgCmd returns the command printing the transfer message to embed
// in a token send to the application.
func NewTransferMsgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transfer-msg [channel] [remote-address]",
		Short: "Build the transfer message embedded in a token send",
		Long: strings.TrimSpace(`Build the JSON transfer message a token holder embeds in the send of a
registered token to the application. The timeout is relative, in seconds. When it is 0 the
application applies its default timeout of 10 minutes.`),
		Example: fmt.Sprintf("%s transfer-msg channel-0 cosmos1... --timeout 600", version.AppName),
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			timeout, err := cmd.Flags().GetUint64(flagTimeout)
			if err != nil {
				return err
			}

			memo, err := cmd.Flags().GetString(flagMemo)
			if err != nil {
				return err
			}

			req := types.NewTransferRequest(args[0], args[1], timeout, memo)
			if err := req.ValidateBasic(); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(req.GetBytes()))
			return err
		},
	}

	cmd.Flags().Uint64(flagTimeout, 0, "Packet timeout in seconds from the block time. The default timeout is used when set to 0.")
	cmd.Flags().String(flagMemo, "", "Memo to be sent along with the packet.")

	return cmd
}

// NewRegisterTokensMsgCmd returns the command printing a token registration
// message. Token addresses are checked against the bech32 prefix, which may
// also be set through the WRAPPED_TRANSFER_BECH32_PREFIX environment variable.
func NewRegisterTokensMsgCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "register-tokens-msg [signer] [address:code-hash]...",
		Short:   "Build a token registration message",
		Example: fmt.Sprintf("%s register-tokens-msg secret1... secret1...:0123abcd", version.AppName),
		Args:    cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := newViper()
			if err := v.BindPFlag(flagBech32Prefix, cmd.Flags().Lookup(flagBech32Prefix)); err != nil {
				return err
			}

			codec := address.NewBech32Codec(v.GetString(flagBech32Prefix))

			tokens := make([]types.TokenInfo, 0, len(args)-1)
			for _, arg := range args[1:] {
				addr, codeHash, found := strings.Cut(arg, ":")
				if !found {
					return fmt.Errorf("expected address:code-hash, got %s", arg)
				}

				if _, err := codec.StringToBytes(addr); err != nil {
					return fmt.Errorf("invalid token address %s: %w", addr, err)
				}

				token := types.NewTokenInfo(addr, codeHash)
				if err := token.ValidateBasic(); err != nil {
					return err
				}

				tokens = append(tokens, token)
			}

			bz, err := json.Marshal(types.NewMsgRegisterTokens(args[0], tokens...))
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(bz))
			return err
		},
	}

	cmd.Flags().String(flagBech32Prefix, defaultBech32Prefix, "Bech32 prefix of the token addresses.")

	return cmd
}
