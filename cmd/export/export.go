package export

import (
	"context"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github/chapool/hdderive/internal/export"
	"github/chapool/hdderive/internal/util/command"
)

const (
	countFlag = "count"
	startFlag = "start"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("export",
		newEnv(),
		newKeystore(),
	)
}

func addBatchFlags(cmd *cobra.Command) {
	cmd.Flags().Int(countFlag, 1, "number of accounts to export")
	cmd.Flags().Uint32(startFlag, 0, "index of the first account")
}

// exportBatch derives the whole batch first and hands it to the exporter only if derivation succeeded.
func exportBatch(ctx context.Context, cmd *cobra.Command, d *command.Deriver, exporter export.Exporter) error {
	count, _ := cmd.Flags().GetInt(countFlag)
	start, _ := cmd.Flags().GetUint32(startFlag)

	accounts, err := d.Accounts.Generate(ctx, d.Request(start, count))
	if err != nil {
		return errors.Wrap(err, "failed to derive accounts")
	}

	return exporter.Export(ctx, accounts)
}
