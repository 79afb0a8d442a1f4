package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kprsnt/brandscore/internal/validation"
)

func categoriesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the known brand categories",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, c := range validation.Categories {
				fmt.Fprintf(out, "%-14s %s\n", c.Value, c.Label)
			}
			return nil
		},
	}
}
