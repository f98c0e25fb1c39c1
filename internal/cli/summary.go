package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"revenueplatform/internal/calculator"
	"revenueplatform/internal/format"
	"revenueplatform/internal/model"
)

func summaryCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "summary",
		Short: "Print the overview cards for the sample records",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := setup(cmd, opts)
			if err != nil {
				return err
			}
			defer rt.Close()

			records, err := rt.app.Records()
			if err != nil {
				return err
			}
			return renderSummary(cmd.OutOrStdout(), records, rt.format)
		},
	}
}

// renderSummary 以卡片形式输出概览
func renderSummary(w io.Writer, records []model.RevenueRecord, f *format.Formatter) error {
	ov, err := calculator.BuildOverview(records)
	if err != nil {
		if errors.Is(err, calculator.ErrNoRecords) {
			fmt.Fprintln(w, errorStyle.Render("Insufficient data: no revenue records"))
		}
		return err
	}

	fmt.Fprintln(w, titleStyle.Render("Revenue Overview · "+ov.Period))

	for _, group := range calculator.Cards(ov) {
		cards := make([]string, 0, len(group.Indicators))
		for _, it := range group.Indicators {
			value := f.Amount(it.Value)
			if it.Unit == "%" {
				value = f.Percent(it.Value)
			}
			if it.ID == "growth" {
				value = "n/a"
				if ov.Growth != nil {
					value = f.Growth(*ov.Growth)
				}
			}
			body := cardNameStyle.Render(it.Name) + "\n" + cardValueStyle.Render(value)
			if it.Note != "" {
				body += "\n" + cardNoteStyle.Render(it.Note)
			}
			cards = append(cards, cardStyle.Render(body))
		}
		fmt.Fprintln(w, subtleStyle.Render(group.Name))
		fmt.Fprintln(w, lipgloss.JoinHorizontal(lipgloss.Top, cards...))
	}

	fmt.Fprintln(w)
	for _, p := range calculator.TrendSeries(records) {
		fmt.Fprintf(w, "%-10s %s\n", p.Period, f.Amount(p.Total))
	}
	return nil
}
