package telemetry

import (
	"github.com/hashicorp/go-metrics"

	sdkmath "cosmossdk.io/math"

	"github.com/cosmos/cosmos-sdk/telemetry"

	"github.com/ibc-apps/wrapped-transfer/modules/apps/wrapped-transfer/types"
)

const (
	LabelSourceChannel = "source_channel"
	LabelTokenAddress  = "token_address"
)

func ReportTransfer(sourceChannel, tokenAddress string, amount sdkmath.Uint) {
	labels := []metrics.Label{
		telemetry.NewLabel(LabelSourceChannel, sourceChannel),
		telemetry.NewLabel(LabelTokenAddress, tokenAddress),
	}

	if amount.BigInt().IsInt64() {
		telemetry.SetGaugeWithLabels(
			[]string{"tx", "msg", "ibc", types.ModuleName},
			float32(amount.Uint64()),
			labels,
		)
	}

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "send"},
		1,
		labels,
	)
}

func ReportRefund(sourceChannel, tokenAddress string, amount sdkmath.Uint) {
	labels := []metrics.Label{
		telemetry.NewLabel(LabelSourceChannel, sourceChannel),
		telemetry.NewLabel(LabelTokenAddress, tokenAddress),
	}

	if amount.BigInt().IsInt64() {
		telemetry.SetGaugeWithLabels(
			[]string{"ibc", types.ModuleName, "packet", "refund"},
			float32(amount.Uint64()),
			labels,
		)
	}

	telemetry.IncrCounterWithLabels(
		[]string{"ibc", types.ModuleName, "refund"},
		1,
		labels,
	)
}
