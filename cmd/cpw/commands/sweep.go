package commands

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rnorris7756/CPW/pkg/sweep"
	"github.com/rnorris7756/CPW/pkg/util"
)

func sweepCmd() *cobra.Command {
	var (
		startStr string
		stopStr  string
		points   int
		scale    string
		xlsxOut  string
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Tabulate line parameters over a frequency range",
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := util.ParseValue(startStr)
			if err != nil {
				return fmt.Errorf("invalid --start: %v", err)
			}
			stop, err := util.ParseValue(stopStr)
			if err != nil {
				return fmt.Errorf("invalid --stop: %v", err)
			}

			freqs, err := sweep.Points(start, stop, points, sweep.Scale(strings.ToUpper(scale)))
			if err != nil {
				return err
			}
			slog.Debug("sweeping", "points", len(freqs), "start", start, "stop", stop)

			res := sweep.Run(line, freqs)
			if xlsxOut != "" {
				if err := res.SaveXLSX(xlsxOut); err != nil {
					return fmt.Errorf("writing %s: %v", xlsxOut, err)
				}
				slog.Info("sweep written", "file", xlsxOut, "rows", len(freqs))
				return nil
			}
			return res.WriteTable(os.Stdout)
		},
	}

	cmd.Flags().StringVar(&startStr, "start", "1G", "start frequency in Hz")
	cmd.Flags().StringVar(&stopStr, "stop", "20G", "stop frequency in Hz")
	cmd.Flags().IntVar(&points, "points", 20, "point count, per decade for DEC and per octave for OCT")
	cmd.Flags().StringVar(&scale, "scale", "LIN", "frequency spacing, one of DEC, OCT, LIN")
	cmd.Flags().StringVar(&xlsxOut, "xlsx", "", "write the sweep to an xlsx workbook instead of stdout")
	return cmd
}
