package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"revenueplatform/internal/importer"
)

func uploadCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "upload <file>...",
		Short: "Run the simulated upload and print the resulting overview",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			files := make([]importer.FileInfo, 0, len(args))
			for _, path := range args {
				fi, err := os.Stat(path)
				if err != nil {
					return err
				}
				files = append(files, importer.FileInfo{Name: filepath.Base(path), Size: fi.Size()})
			}

			out := cmd.OutOrStdout()
			bar := progressbar.NewOptions(-1,
				progressbar.OptionSetWriter(cmd.ErrOrStderr()),
				progressbar.OptionSpinnerType(14),
				progressbar.OptionSetDescription(importer.MessageProcessing),
				progressbar.OptionClearOnFinish(),
			)

			ch := rt.coord.Import(importer.ImportOptions{Files: files})
			ticker := time.NewTicker(100 * time.Millisecond)
			defer ticker.Stop()

			var last importer.ProgressEvent
		wait:
			for {
				select {
				case evt, ok := <-ch:
					if !ok {
						break wait
					}
					last = evt
				case <-ticker.C:
					_ = bar.Add(1)
				}
			}
			_ = bar.Finish()

			if last.Type == importer.EventError {
				fmt.Fprintln(out, errorStyle.Render(last.Message))
				return errors.New(last.Message)
			}
			fmt.Fprintln(out, successStyle.Render(last.Message))

			records, err := rt.app.Records()
			if err != nil {
				return err
			}
			return renderSummary(out, records, rt.format)
		},
	}
}
