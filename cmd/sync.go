package cmd

import (
	"github.com/openswoop/catalog/pkg/notify"
	"github.com/spf13/cobra"
	"time"
)

const (
	projectID = "openswoop-catalog"
	topicID   = "catalog-refreshed"
)

var (
	dryRun          bool
	syncProject     string
	syncTopic       string
	credentialsFile string
)

// syncCmd represents the sync command
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Scrape the catalog and announce the refresh on Pub/Sub",
	Long: `This command scrapes the whole catalog like "scrape", writes the
courses to --out and then publishes a catalog-refreshed event so the
prerequisite graphs can be rebuilt.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		log := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
		ctx := cmd.Context()

		courses, pages, err := runScrape(ctx, cfg, log)
		if err != nil {
			return err
		}
		if err := writeCourses(cfg, courses, log); err != nil {
			return err
		}

		event := notify.NewRefreshed(pages, courses, time.Now())
		if dryRun {
			log.WithField("departments", len(event.Departments)).Warn("Dry run: event will not be published")
			return nil
		}

		// Connect to PubSub
		publisher, err := notify.NewPublisher(ctx, syncProject, syncTopic, credentialsFile)
		if err != nil {
			return err
		}
		defer publisher.Close()

		id, err := publisher.Publish(ctx, event)
		if err != nil {
			return err
		}
		log.WithField("id", id).Infof("published to %s", syncTopic)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	addScrapeFlags(syncCmd)

	syncCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Scrape without publishing the event (default: false)")
	syncCmd.Flags().StringVar(&syncProject, "project", projectID, "Google Cloud project of the topic")
	syncCmd.Flags().StringVar(&syncTopic, "topic", topicID, "Pub/Sub topic to publish to")
	syncCmd.Flags().StringVar(&credentialsFile, "credentials", "", "Service account key file (default: application default credentials)")
}
