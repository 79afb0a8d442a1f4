package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/kprsnt/brandscore/internal/usecase/check"
	"github.com/kprsnt/brandscore/internal/validation"
)

func checkCommand(checker BrandChecker) *cobra.Command {
	var (
		category       string
		recommendation bool
		asJSON         bool
	)

	cmd := &cobra.Command{
		Use:   "check BRAND",
		Short: "Score one brand's visibility across the configured models",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if checker == nil {
				return fmt.Errorf("checker not configured")
			}

			input, err := validation.ValidateBrandInput(args[0], category)
			if err != nil {
				return err
			}

			mode := check.ModeAnalysis
			if recommendation {
				mode = check.ModeRecommendation
			}

			result, err := checker.Check(cmd.Context(), check.Request{
				Brand:    input.Brand,
				Category: input.Category,
				Mode:     mode,
			})
			if err != nil {
				return err
			}

			if asJSON || !isOutputTerminal() {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(result)
			}

			renderResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&category, "category", "", "Brand category (default \"general\")")
	cmd.Flags().BoolVar(&recommendation, "recommendation", false,
		"Ask models for top brands in the category instead of analyzing the brand directly")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Emit the raw result as JSON")
	return cmd
}

// isOutputTerminal reports whether stdout is a TTY; piped output falls back
// to JSON.
func isOutputTerminal() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func renderResult(cmd *cobra.Command, result check.Result) {
	out := cmd.OutOrStdout()
	caser := cases.Title(language.English)

	fmt.Fprintf(out, "%s — %s\n", result.Brand, caser.String(result.Category))
	fmt.Fprintf(out, "Score: %d/100\n\n", result.Score)

	fmt.Fprintf(out, "Breakdown:\n")
	fmt.Fprintf(out, "  Recommendation: %d/40\n", result.Breakdown.Recommendation)
	fmt.Fprintf(out, "  Sentiment:      %d/30\n", result.Breakdown.Sentiment)
	fmt.Fprintf(out, "  Prominence:     %d/20\n", result.Breakdown.Prominence)
	fmt.Fprintf(out, "  Accuracy:       %d/10\n\n", result.Breakdown.Accuracy)

	fmt.Fprintf(out, "Models (%d queried):\n", result.ModelsQueried)
	for _, resp := range result.Responses {
		fmt.Fprintf(out, "  %s [%s] — %d mention(s)\n", resp.Model, resp.Sentiment, resp.MentionsCount)
		fmt.Fprintf(out, "    %s\n", summarize(resp.Text, 200))
	}

	if len(result.Tips) > 0 {
		fmt.Fprintf(out, "\nTips:\n")
		for _, tip := range result.Tips {
			fmt.Fprintf(out, "  - %s\n", tip)
		}
	}
}

func summarize(text string, max int) string {
	text = strings.Join(strings.Fields(text), " ")
	if len(text) <= max {
		return text
	}
	return text[:max] + "..."
}
