package cmd

import (
	"context"
	"github.com/openswoop/catalog/pkg/config"
	"github.com/openswoop/catalog/pkg/report"
	"github.com/openswoop/catalog/pkg/scrape"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// scrapeCmd represents the scrape command
var scrapeCmd = &cobra.Command{
	Use:   "scrape",
	Short: "Scrape every course in the catalog to JSON",
	Long: `Fetches every page of the course catalog in parallel and writes the
courses as a single JSON array (or CSV with --format csv). Nothing is
written unless every page was scraped successfully.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cmd.ErrOrStderr(), cfg.Verbose)

		courses, _, err := runScrape(cmd.Context(), cfg, log)
		if err != nil {
			return err
		}
		return writeCourses(cfg, courses, log)
	},
}

func init() {
	rootCmd.AddCommand(scrapeCmd)
	addScrapeFlags(scrapeCmd)
}

// addScrapeFlags registers the flags shared by the commands that scrape.
func addScrapeFlags(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringP("out", "o", "", "Write scraped data to FILE (default: stdout)")
	flags.IntP("threads", "t", 0, "Fetch N pages in parallel (default: number of cores)")
	flags.String("format", "", "Output format, json or csv (default: json)")
	flags.String("code-mode", "", "Read course codes up to the first period (period) or as the first two words (tokens)")
	flags.String("prereq-mode", "", "Join every prerequisite line (append) or keep the last one (last)")
	flags.String("corrections", "", "YAML file of hand-written course entries to append")
	flags.Bool("no-corrections", false, "Do not append any hand-written course entries")

	cmd.PreRun = func(cmd *cobra.Command, args []string) {
		_ = viper.BindPFlag("output", flags.Lookup("out"))
		_ = viper.BindPFlag("threads", flags.Lookup("threads"))
		_ = viper.BindPFlag("format", flags.Lookup("format"))
		_ = viper.BindPFlag("code_mode", flags.Lookup("code-mode"))
		_ = viper.BindPFlag("prereq_mode", flags.Lookup("prereq-mode"))
		_ = viper.BindPFlag("corrections", flags.Lookup("corrections"))
		_ = viper.BindPFlag("no_corrections", flags.Lookup("no-corrections"))
	}
}

func newScraper(cfg config.Config, log logrus.FieldLogger) (*scrape.Scraper, error) {
	fetcher, err := scrape.NewCollyFetcher(c, cfg.Url, cfg.Timeout)
	if err != nil {
		return nil, err
	}
	corrections, err := cfg.LoadCorrections()
	if err != nil {
		return nil, err
	}
	return &scrape.Scraper{
		Fetcher:     fetcher,
		Extractor:   cfg.Extractor(),
		Workers:     cfg.Threads,
		Corrections: corrections,
		Log:         log,
	}, nil
}

// runScrape scrapes the whole catalog and reports the page count alongside.
func runScrape(ctx context.Context, cfg config.Config, log logrus.FieldLogger) ([]scrape.Course, int, error) {
	s, err := newScraper(cfg, log)
	if err != nil {
		return nil, 0, err
	}
	catalog, err := s.ScrapeCatalog(ctx)
	if err != nil {
		return nil, 0, err
	}
	return catalog.Courses, catalog.Pages, nil
}

func writeCourses(cfg config.Config, courses []scrape.Course, log logrus.FieldLogger) error {
	format, _ := report.ParseFormat(cfg.Format)
	if err := report.Write(cfg.Output, format, courses); err != nil {
		return err
	}
	name := cfg.Output
	if name == "" || name == report.Stdout {
		name = "<stdout>"
	}
	log.Infof("%d courses written to %s", len(courses), name)
	return nil
}
