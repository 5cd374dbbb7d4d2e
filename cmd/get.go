package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"china-division/feature/lookup"

	"github.com/spf13/cobra"
)

// getCmd represents the get command
var getCmd = &cobra.Command{
	Use:   "get <code>",
	Short: "Resolve a division code",
	Long: `Resolves a six digit division code in the current revision, in the revision
given by --revision, or in the most recent revision holding it with --search.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logg, err := setup()
		if err != nil {
			return err
		}
		defer logg.Sync()

		resolver, err := openResolver(cmd.Context(), cfg, logg)
		if err != nil {
			return err
		}

		revision, _ := cmd.Flags().GetString("revision")
		search, _ := cmd.Flags().GetBool("search")
		jsonOutput, _ := cmd.Flags().GetBool("json")

		svc := lookup.NewService(resolver, logg)
		report, err := svc.Resolve(lookup.Query{Code: args[0], Revision: revision, Search: search})
		if err != nil {
			return fmt.Errorf("failed to resolve %s: %w", args[0], err)
		}

		return printReport(cmd.OutOrStdout(), report, jsonOutput)
	},
}

func printReport(w io.Writer, report *lookup.Report, jsonOutput bool) error {
	if jsonOutput {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	}

	names := make([]string, 0, len(report.Stack))
	for _, item := range report.Stack {
		names = append(names, item.Name)
	}
	_, err := fmt.Fprintf(w, "%s %s [%s, %s]\n%s\n",
		report.Code, report.Name, report.Level, report.Revision, strings.Join(names, " / "))
	return err
}

func init() {
	RootCmd.AddCommand(getCmd)

	getCmd.Flags().String("revision", "", "Resolve in this revision instead of the current one")
	getCmd.Flags().Bool("search", false, "Resolve in the most recent revision holding the code")
	getCmd.Flags().Bool("json", false, "Output JSON")
}
