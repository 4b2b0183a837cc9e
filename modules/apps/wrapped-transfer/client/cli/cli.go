package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
)

// GetCmd returns the root command of the wrapped transfer tooling.
func GetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:                        "wrapped-transfer",
		Short:                      "Wrapped token ICS20 transfer helpers",
		Long:                       "Helpers for building the payloads exchanged with the " + types.ModuleName + " application",
		SuggestionsMinimumDistance: 2,
		SilenceUsage:               true,
		SilenceErrors:              true,
	}

	cmd.AddCommand(
		NewTransferMsgCmd(),
		NewRegisterTokensMsgCmd(),
		NewDenomCmd(),
		NewParseDenomCmd(),
	)

	return cmd
}

// envPrefix prefixes the environment variables read in place of unset flags.
const envPrefix = "WRAPPED_TRANSFER"

func newViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}
