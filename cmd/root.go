package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/woodmark/curatectl/config"
	"github.com/woodmark/curatectl/curated"
)

var (
	cfgFile       string
	publicationID string
	cfg           *config.Config
	logger        zerolog.Logger
	client        *curated.Client
	pub           *curated.Publication

	version   = "dev"
	buildTime = "unknown"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "curatectl",
	Short: "A CLI for managing Curated newsletters",
	Long: `curatectl talks to the Curated (curated.co) publishing API: collect and
manage links for the next issue, inspect draft and published issues, and
work with the subscriber and unsubscriber lists of a publication.`,
	PersistentPreRunE: initializeApp,
}

// SetVersion records build information injected by the linker.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
	rootCmd.Version = fmt.Sprintf("%s (built %s)", v, bt)
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVarP(&publicationID, "publication", "P", "", "publication ID (overrides config)")
}

// initializeApp initializes the configuration and the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	// Load configuration
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Setup logger
	logger = setupLogger(cfg.Logging)

	// Create Curated client
	client, err = curated.NewClient(cfg.Curated.APIKey, logger,
		curated.WithBaseURL(cfg.Curated.URL),
		curated.WithPageSize(cfg.Curated.PageSize))
	if err != nil {
		return fmt.Errorf("failed to create Curated client: %w", err)
	}

	// Resolve the publication scope: the flag wins over the config file.
	id := cfg.Curated.PublicationID
	if publicationID != "" {
		id = publicationID
	}
	if id != "" {
		client.SetPublicationID(id)
		pub = client.Publication(id)
		logger.Debug().Str("publication", id).Msg("Publication scope selected")
	}

	return nil
}

// scoped returns the selected publication scope, which most subcommands need.
func scoped() (*curated.Publication, error) {
	if pub == nil {
		return nil, fmt.Errorf("no publication selected: set curated.publication_id in the config or pass --publication")
	}
	return pub, nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	// Set log level
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	// Configure output format
	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	// Console format; color only when stderr is an actual terminal
	noColor := !cfg.Color || !isatty.IsTerminal(os.Stderr.Fd())
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}
