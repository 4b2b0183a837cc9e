package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cosmos/cosmos-sdk/version"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
)

// NewDenomCmd returns the command printing the packet denomination of a token.
func NewDenomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "denom [token-address]",
		Short:   "Print the packet denomination of a token",
		Example: fmt.Sprintf("%s denom secret1...", version.AppName),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			denom := types.DenomForToken(args[0])
			if _, err := types.ParseAddressFromDenom(denom); err != nil {
				return err
			}

			_, err := fmt.Fprintln(cmd.OutOrStdout(), denom)
			return err
		},
	}

	return cmd
}

// NewParseDenomCmd returns the command printing the token address carried by a
// packet denomination.
func NewParseDenomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "parse-denom [denom]",
		Short:   "Print the token address of a packet denomination",
		Example: fmt.Sprintf("%s parse-denom %s%ssecret1...", version.AppName, types.DenomTag, types.DenomSeparator),
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			address, err := types.ParseAddressFromDenom(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), address)
			return err
		},
	}

	return cmd
}
