package commands

import (
	"fmt"
	"math/cmplx"

	"github.com/spf13/cobra"

	"github.com/rnorris7756/CPW/pkg/ladder"
	"github.com/rnorris7756/CPW/pkg/util"
)

func resonatorCmd() *cobra.Command {
	var (
		lengthStr string
		freqStr   string
		sections  int
	)

	cmd := &cobra.Command{
		Use:   "resonator",
		Short: "Quarter wave resonator report for a line segment",
		RunE: func(cmd *cobra.Command, args []string) error {
			length, err := util.ParseValue(lengthStr)
			if err != nil {
				return fmt.Errorf("invalid --length: %v", err)
			}
			if !(length > 0) {
				return fmt.Errorf("length must be positive, got %v", length)
			}
			freq, err := util.ParseValue(freqStr)
			if err != nil {
				return fmt.Errorf("invalid --freq: %v", err)
			}
			if !(freq > 0) {
				return fmt.Errorf("frequency must be positive, got %v", freq)
			}

			fmt.Printf("Quarter wave resonator, length %s\n\n", util.FormatValueFactor(length, "m"))
			fmt.Printf("Resonance frequency: %s\n", util.FormatFrequency(line.ResonanceFrequencyLambda4(length)))
			fmt.Printf("Z0  at %s: %s\n", util.FormatFrequency(freq), util.FormatValueFactor(line.Z0At(freq), "Ohm"))
			fmt.Printf("Leq at %s: %s\n", util.FormatFrequency(freq), util.FormatValueFactor(line.LeqLambda4At(freq, length), "H"))
			fmt.Printf("Ceq at %s: %s\n", util.FormatFrequency(freq), util.FormatValueFactor(line.CeqLambda4At(freq, length), "F"))
			fmt.Printf("Req at %s: %s\n", util.FormatFrequency(freq), util.FormatValueFactor(line.ReqLambda4At(freq, length), "Ohm"))
			fmt.Printf("Q   at %s: %.1f\n", util.FormatFrequency(freq), line.QLambda4At(freq, length))

			net, err := ladder.New(line, length, sections, ladder.Short)
			if err != nil {
				return err
			}
			zin, err := net.InputImpedance([]float64{freq})
			if err != nil {
				return err
			}
			fmt.Printf("\nShorted ladder check, %d sections:\n", sections)
			fmt.Printf("|Zin| at %s: %s\n", util.FormatFrequency(freq), util.FormatValueFactor(cmplx.Abs(zin[0]), "Ohm"))
			return nil
		},
	}

	cmd.Flags().StringVar(&lengthStr, "length", "5mm", "physical length in m")
	cmd.Flags().StringVar(&freqStr, "freq", "9G", "evaluation frequency in Hz")
	cmd.Flags().IntVar(&sections, "sections", 200, "ladder sections for the lumped check")
	return cmd
}
