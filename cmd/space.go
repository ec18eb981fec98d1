package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/probelab/lawspace/internal/variant"
)

var spaceCmd = &cobra.Command{
	Use:   "space",
	Short: "Show the registered variant space and its combination count",
	Long: `Show how many variants are registered per operation role and the total
number of bundles the exhaustive walk would visit.

Examples:
  lawspace space`,
	RunE: runSpace,
}

func init() {
	rootCmd.AddCommand(spaceCmd)
}

func runSpace(cmd *cobra.Command, args []string) error {
	space := variant.DemoSpace()
	sizes := space.Sizes()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, headerStyle.Render("Variant space"))
	for role := variant.Role(0); role < variant.NumRoles; role++ {
		fmt.Fprintf(out, "  %s %s\n",
			labelStyle.Render(fmt.Sprintf("%-10s", role.String())),
			valueStyle.Render(fmt.Sprintf("%d", sizes[role])))
	}
	fmt.Fprintf(out, "  %s %s\n",
		labelStyle.Render(fmt.Sprintf("%-10s", "total")),
		valueStyle.Render(fmt.Sprintf("%d", space.Combinations())))
	return nil
}
