// Package cli implements the kraken command-line client.
package cli

import (
	"context"
	"fmt"
	"github.com/haleyga/kraken-cryptoexchange-api/constants"
	"github.com/haleyga/kraken-cryptoexchange-api/exchange/kraken"
	"github.com/spf13/cobra"
	"log"
	"os"
	"time"
)

const (
	Name = "≪kraken-cli≫"
)

var (
	logger *log.Logger
)

func init() {
	//
	// Initialize the logger.
	//
	logger = log.New(os.Stderr, fmt.Sprintf(constants.LogPrefixFmt, Name), log.Ldate|log.Ltime|log.Lmsgprefix)
}

//
// options holds everything the commands share: the parsed persistent flags and the client built
// from them.
//
type options struct {
	configPath string
	rootURL    string
	timeout    time.Duration
	apiVersion int
	output     string
	otp        string
	verbose    bool

	config *Config
	client *kraken.Client
}

//
// NewRootCommand builds the complete command tree. Each call returns an independent tree, which is
// what lets the tests run commands side by side.
//
func NewRootCommand() *cobra.Command {
	o := &options{}

	root := &cobra.Command{
		Use:   "kraken",
		Short: "Command-line client for the Kraken REST API",
		Long: `kraken queries public market data and, given an API key pair, the private account and
trading endpoints of the Kraken REST API.

Credentials are read from ~/.config/kraken/config.yaml (public_key, private_key) or from the
KRAKEN_API_KEY and KRAKEN_API_SECRET environment variables.`,
		Version:       constants.ClientVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := o.loadConfig(); err != nil {
				return err
			}

			o.client = kraken.NewClient(o.credentials(), kraken.WithConfig(o.clientConfig(cmd)))

			return nil
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&o.configPath, "config", "", "Configuration file (default: ~/.config/kraken/config.yaml)")
	flags.StringVar(&o.rootURL, "root-url", kraken.BaseURL, "Base address of the REST API")
	flags.DurationVar(&o.timeout, "timeout", kraken.DefaultTimeout, "Deadline for each request")
	flags.IntVar(&o.apiVersion, "api-version", kraken.DefaultVersion, "API version embedded in endpoint paths")
	flags.StringVarP(&o.output, "output", "o", "json", "Output format: json, yaml")
	flags.StringVar(&o.otp, "otp", "", "One-time password for private endpoints, if the key requires one")
	flags.BoolVarP(&o.verbose, "verbose", "v", false, "Log every request that is sent")

	root.AddCommand(
		newTimeCommand(o),
		newStatusCommand(o),
		newTickerCommand(o),
		newOHLCCommand(o),
		newDepthCommand(o),
		newBalanceCommand(o),
		newTradeBalanceCommand(o),
		newOpenOrdersCommand(o),
		newAddOrderCommand(o),
		newCancelOrderCommand(o),
		newSignCommand(o),
	)

	return root
}

//
// Execute runs the root command. Cancelling the context abandons any request in flight.
//
func Execute(ctx context.Context) error {
	return NewRootCommand().ExecuteContext(ctx)
}

func (o *options) loadConfig() error {
	if o.verbose {
		kraken.SetLogOutput(os.Stderr)
	}

	path := o.configPath
	explicit := path != ""

	if !explicit {
		path = ConfigPath()
	}

	config, err := LoadConfig(path, explicit)
	if err != nil {
		return err
	}

	o.config = config

	if o.verbose {
		logger.Printf("Loaded configuration. (Path: %s, Authenticated: %t)", path, o.credentials() != nil)
	}

	return nil
}

//
// clientConfig layers the request configuration: library defaults, then the file, then any flag the
// user set explicitly.
//
func (o *options) clientConfig(cmd *cobra.Command) kraken.Config {
	config := kraken.DefaultConfig()
	flags := cmd.Flags()

	if o.config.RootURL != "" {
		config.RootURL = o.config.RootURL
	}

	if o.config.Timeout > 0 {
		config.Timeout = o.config.Timeout
	}

	if o.config.APIVersion != nil {
		config.Version = *o.config.APIVersion
	}

	if flags.Changed("root-url") {
		config.RootURL = o.rootURL
	}

	if flags.Changed("timeout") {
		config.Timeout = o.timeout
	}

	if flags.Changed("api-version") {
		config.Version = o.apiVersion
	}

	return config
}

func (o *options) credentials() *kraken.Credentials {
	if o.config == nil || o.config.PublicKey == "" || o.config.PrivateKey == "" {
		return nil
	}

	return &kraken.Credentials{
		PublicKey:  o.config.PublicKey,
		PrivateKey: o.config.PrivateKey,
	}
}
