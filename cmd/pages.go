package cmd

import (
	"fmt"
	"github.com/openswoop/catalog/pkg/scrape"
	"github.com/spf13/cobra"
)

// pagesCmd represents the pages command
var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Print how many pages the catalog listing spans",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		fetcher, err := scrape.NewCollyFetcher(c, cfg.Url, cfg.Timeout)
		if err != nil {
			return err
		}
		n, err := scrape.DiscoverPages(cmd.Context(), fetcher)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(pagesCmd)
}
