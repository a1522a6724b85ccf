package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/spotlease/stripe-go/client"
	"github.com/spotlease/stripe-go/config"
	"github.com/spotlease/stripe-go/metrics"
)

var (
	cfgFile     string
	accountFlag string
	cfg         *config.Config
	logger      zerolog.Logger
	apiClient   *client.Client
	registry    *prometheus.Registry
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "stripectl",
	Short: "Work with Stripe customers, charges, invoices and plans",
	Long: `stripectl is a command-line front end for the Stripe API. Every command
prints the decoded API object as indented JSON on stdout.

Credentials are read from stripectl.yaml or the STRIPE_SECRET_KEY environment
variable. Use --account to act on behalf of a connected account.`,
	PersistentPreRunE:  initializeApp,
	PersistentPostRunE: writeMetrics,
	SilenceUsage:       true,
	SilenceErrors:      true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		printError(os.Stderr, err)
		stop()
		os.Exit(exitCode(err))
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./stripectl.yaml)")
	rootCmd.PersistentFlags().StringVar(&accountFlag, "account", "", "connected account to act as (overrides stripe.account)")

	rootCmd.AddCommand(customerCmd)
	rootCmd.AddCommand(chargeCmd)
	rootCmd.AddCommand(invoiceCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(withoutClient(fieldsCmd))
	rootCmd.AddCommand(withoutClient(versionCmd))
}

// withoutClient marks commands that run without configuration or credentials
func withoutClient(cmd *cobra.Command) *cobra.Command {
	noop := func(*cobra.Command, []string) error { return nil }
	cmd.PersistentPreRunE = noop
	cmd.PersistentPostRunE = noop
	return cmd
}

// initializeApp loads configuration and builds the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	account := cfg.Stripe.Account
	if cmd.Flags().Changed("account") {
		account = accountFlag
	}

	stripeCfg, err := client.NewConfig(cfg.Stripe.SecretKey,
		client.WithBaseURL(cfg.Stripe.BaseURL),
		client.WithAccount(account),
	)
	if err != nil {
		return fmt.Errorf("failed to create client config: %w", err)
	}

	opts := []client.Option{
		client.WithLogger(logger),
		client.WithTimeout(cfg.Client.Timeout),
	}

	registry = nil
	if cfg.Metrics.Textfile != "" {
		registry = prometheus.NewRegistry()
		opts = append(opts, client.WithMetrics(metrics.NewPrometheusRecorder(registry)))
	}

	apiClient = client.New(stripeCfg, opts...)

	logger.Debug().
		Str("base_url", stripeCfg.BaseURL()).
		Bool("connected_account", account != "").
		Msg("Client initialized")

	return nil
}

// writeMetrics dumps the request metrics of this run for the node exporter
// textfile collector
func writeMetrics(cmd *cobra.Command, args []string) error {
	if registry == nil || cfg == nil || cfg.Metrics.Textfile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(cfg.Metrics.Textfile, registry); err != nil {
		return fmt.Errorf("failed to write metrics: %w", err)
	}
	return nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	if cfg.Format == "json" {
		return zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()
	}

	fd := os.Stderr.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color || !tty,
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}
