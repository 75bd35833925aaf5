package cmd

import (
	"context"
	"fmt"
	"github.com/gocolly/colly/v2"
	"github.com/openswoop/catalog/pkg/config"
	"github.com/openswoop/catalog/pkg/scrape"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"io"
	"os"
	"os/signal"
	"path/filepath"
)

var c *colly.Collector

// cleanupCache removes the per-run web cache, if any
var cleanupCache = func() {}

// initErr holds a failure of the initializers, reported by loadConfig
var initErr error

var cacheDir = "catalog/web-cache"
var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "catalog",
	Short: "A tool for scraping the Swarthmore course catalog",
	Long: `Scrapes every course listed in the Swarthmore course catalog into a
JSON array of course codes, departments, descriptions and prerequisites,
suitable for building prerequisite graphs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx)
	stop()
	os.Exit(code)
}

// run executes the command line and returns the process exit code.
func run(ctx context.Context) int {
	defer func() { cleanupCache() }()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "error:", err)
		return 1
	}
	return 0
}

func init() {
	cobra.OnInitialize(initConfig, initColly)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default: $HOME/.catalog.yaml)")
	flags.BoolP("verbose", "v", false, "Be verbose")
	flags.Bool("cache", false, "Keep fetched pages in a persistent web cache across runs (default: false)")
	flags.Bool("no-cache", false, "Bypass the web cache, even within a run (default: false)")
	flags.String("url", "", "Catalog URL template with a {page} placeholder")
	flags.Duration("timeout", 0, "Timeout of each page request (default: 30s)")
	flags.String("user-agent", "", "Override the User-Agent header")

	bindFlags()
}

// bindFlags connects the persistent flags and the defaults to viper.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("cache", flags.Lookup("cache"))
	_ = viper.BindPFlag("no_cache", flags.Lookup("no-cache"))
	_ = viper.BindPFlag("url", flags.Lookup("url"))
	_ = viper.BindPFlag("timeout", flags.Lookup("timeout"))
	_ = viper.BindPFlag("user_agent", flags.Lookup("user-agent"))

	config.SetDefaults(viper.GetViper())
}

func initConfig() {
	initErr = nil
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.AddConfigPath(".")
		viper.SetConfigName(".catalog")
		viper.SetConfigType("yaml")
	}
	viper.SetEnvPrefix(config.EnvPrefix)
	viper.AutomaticEnv()

	// A missing config file is fine, a broken one is not
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			initErr = fmt.Errorf("failed to read config: %w", err)
		}
	}
}

func initColly() {
	opts := []colly.CollectorOption{}
	if ua := viper.GetString("user_agent"); ua != "" {
		opts = append(opts, colly.UserAgent(ua))
	}
	c = colly.NewCollector(opts...)
	cleanupCache()
	cleanupCache = func() {}

	// The catalog changes between runs, so pages are only kept for one run
	// unless a persistent cache is asked for
	switch {
	case viper.GetBool("no_cache"):
	case viper.GetBool("cache"):
		userCacheDir, _ := os.UserCacheDir()
		c.CacheDir = filepath.Join(userCacheDir, cacheDir)
	default:
		cleanup, err := scrape.RunCache(c)
		if err != nil && initErr == nil {
			initErr = err
		} else if err == nil {
			cleanupCache = cleanup
		}
	}
}

// loadConfig resolves the settings of the running command.
func loadConfig() (config.Config, error) {
	if initErr != nil {
		return config.Config{}, initErr
	}
	return config.Load(viper.GetViper())
}

// newLogger writes diagnostics to w (stderr), keeping stdout free for the output.
func newLogger(w io.Writer, verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetLevel(logrus.WarnLevel)
	}
	return log
}
