package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// revisionsCmd represents the revisions command
var revisionsCmd = &cobra.Command{
	Use:   "revisions",
	Short: "List dataset revisions, newest first",
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

		store := resolver.Store()
		for _, revision := range store.Newest() {
			table, _ := store.Table(revision)
			marker := " "
			if revision == resolver.Current() {
				marker = "*"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %-16s %d divisions\n", marker, revision, table.Len())
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(revisionsCmd)
}
