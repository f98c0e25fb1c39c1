package cli

import (
	"fmt"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"revenueplatform/internal/exporter"
)

func exportCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "export <path>",
		Short: "Write the dashboard report workbook (.xlsx)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			records, err := rt.app.Records()
			if err != nil {
				return err
			}

			bar := progressbar.NewOptions(100,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSetDescription("Exporting"),
				progressbar.OptionSetWidth(40),
				progressbar.OptionClearOnFinish(),
			)
			progress := func(p exporter.ProgressEvent) {
				_ = bar.Set(p.Percent)
				bar.Describe(p.Stage)
			}

			file, err := exporter.NewExporter(progress).Export(records)
			if err != nil {
				return err
			}
			defer file.Close()

			if err := file.SaveAs(args[0]); err != nil {
				return fmt.Errorf("save %s: %w", args[0], err)
			}
			_ = bar.Finish()

			fmt.Fprintln(cmd.OutOrStdout(), successStyle.Render("Report written to "+args[0]))
			return nil
		},
	}
}
