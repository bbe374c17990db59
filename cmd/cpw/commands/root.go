package commands

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/rnorris7756/CPW/pkg/cpw"
	"github.com/rnorris7756/CPW/pkg/util"
)

// Shared across subcommands, filled in by the root PersistentPreRunE.
var line *cpw.Line

var (
	verbose bool

	epsilonR float64
	tanDelta float64

	kappaStr       string
	widthStr       string
	gapStr         string
	thicknessStr   string
	groundWidthStr string
	lambda0Str     string
)

// Execute builds the command tree and runs it.
func Execute() error {
	root := &cobra.Command{
		Use:           "cpw",
		Short:         "Superconducting coplanar waveguide line parameters",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(
				tint.NewHandler(os.Stderr, &tint.Options{
					Level:      level,
					TimeFormat: "15:04:05",
				}),
			))

			p := cpw.Params{EpsilonR: epsilonR, TanDelta: tanDelta}
			for _, f := range []struct {
				name string
				in   string
				dst  *float64
			}{
				{"kappa", kappaStr, &p.Kappa},
				{"width", widthStr, &p.W},
				{"gap", gapStr, &p.S},
				{"thickness", thicknessStr, &p.T},
				{"ground-width", groundWidthStr, &p.Wg},
				{"lambda0", lambda0Str, &p.Lambda0},
			} {
				v, err := util.ParseValue(f.in)
				if err != nil {
					return fmt.Errorf("invalid --%s: %v", f.name, err)
				}
				*f.dst = v
			}

			l, err := cpw.New(p)
			if err != nil {
				return err
			}
			line = l
			slog.Debug("line built",
				"w", p.W, "s", p.S, "t", p.T, "wg", p.Wg,
				"kappa", p.Kappa, "lambda0", p.Lambda0)
			return nil
		},
	}

	def := cpw.DefaultParams()
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().Float64Var(&epsilonR, "epsilon-r", def.EpsilonR, "substrate relative permittivity")
	root.PersistentFlags().Float64Var(&tanDelta, "tan-delta", def.TanDelta, "substrate loss tangent")
	root.PersistentFlags().StringVar(&kappaStr, "kappa", "3.53e50", "conductor conductivity in S/m")
	root.PersistentFlags().StringVar(&widthStr, "width", "19u", "center conductor width in m")
	root.PersistentFlags().StringVar(&gapStr, "gap", "11.5u", "slot width in m")
	root.PersistentFlags().StringVar(&thicknessStr, "thickness", "100n", "metal thickness in m")
	root.PersistentFlags().StringVar(&groundWidthStr, "ground-width", "200u", "ground strip width in m")
	root.PersistentFlags().StringVar(&lambda0Str, "lambda0", "40n", "London penetration depth in m")

	root.AddCommand(sweepCmd(), resonatorCmd())

	return root.Execute()
}
