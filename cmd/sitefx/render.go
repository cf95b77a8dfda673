package main

import (
	"github.com/spf13/cobra"

	"github.com/dgallion1/sitefx/internal/contact"
)

var (
	renderSteps  string
	renderStride float64
)

var renderCmd = &cobra.Command{
	Use:   "render <page>",
	Short: "Print page HTML with effect styles applied after a scroll run",
	Long: `Render replays the same steps as audit, then writes the page markup with
the inline styles and attributes the effects left behind: revealed cards,
highlighted nav links, loaded images, the navbar shadow.`,
	Args: pageArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		sim, _, err := simulate(args[0], renderSteps, renderStride, contact.NotifierFunc(func(string) {}))
		if err != nil {
			return err
		}
		return sim.Document().Render(cmd.OutOrStdout())
	},
}

func init() {
	renderCmd.Flags().StringVar(&renderSteps, "steps", "", "comma-separated scroll positions and link clicks (default: sweep the page)")
	renderCmd.Flags().Float64Var(&renderStride, "stride", 0, "sweep increment in px (default: half the viewport)")
	rootCmd.AddCommand(renderCmd)
}
