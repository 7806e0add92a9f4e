package cmd

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/logrusorgru/aurora"
	"github.com/lukehollenback/ionomy/constants"
	"github.com/lukehollenback/ionomy/exchange/ionomy"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const (
	Name = "≪ionomy-cli≫"

	EnvAPI       = "IONOMY_API"
	EnvAPIKey    = "IONOMY_API_KEY"
	EnvAPISecret = "IONOMY_API_SECRET"
)

//
// options holds the values of the persistent flags shared by every subcommand.
//
type options struct {
	api         string
	key         string
	secret      string
	envFile     string
	timeout     time.Duration
	noKeepAlive bool
	noColor     bool
	verbose     bool
}

//
// Execute builds the command tree and runs it with the provided context. Any error is printed to
// stderr before being returned so that the caller only has to pick an exit code.
//
func Execute(ctx context.Context) error {
	root, opts := newRootCommand()

	err := root.ExecuteContext(ctx)
	if err != nil {
		printError(root.ErrOrStderr(), aurora.NewAurora(!opts.noColor), err)
	}

	return err
}

func newRootCommand() (*cobra.Command, *options) {
	opts := &options{}

	root := &cobra.Command{
		Use:   "ionomy",
		Short: "Command-line client for the Ionomy exchange API",
		Long: `ionomy maps every Ionomy REST endpoint onto a subcommand and prints the
"data" payload of the response as indented JSON.

Credentials are read from --key/--secret, or from the ` + EnvAPIKey + ` and
` + EnvAPISecret + ` environment variables (optionally loaded from a .env file).
Without credentials only the public endpoints will succeed.

Examples:
  ionomy markets
  ionomy orderbook btc-hive bid
  ionomy balance hive
  ionomy buy btc-hive 1 0.00005`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&opts.api, "api", "", "base URL of the API (default "+ionomy.DefaultAPI+", env "+EnvAPI+")")
	flags.StringVar(&opts.key, "key", "", "API key (env "+EnvAPIKey+")")
	flags.StringVar(&opts.secret, "secret", "", "API secret (env "+EnvAPISecret+")")
	flags.StringVar(&opts.envFile, "env-file", ".env", "file to load environment variables from if it exists")
	flags.DurationVar(&opts.timeout, "timeout", ionomy.DefaultTimeout, "timeout of each request")
	flags.BoolVar(&opts.noKeepAlive, "no-keep-alive", false, "disable persistent HTTP connections")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored error output")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "log every request to stderr")

	root.AddCommand(publicCommands(opts)...)
	root.AddCommand(marketCommands(opts)...)
	root.AddCommand(accountCommands(opts)...)

	return root, opts
}

//
// client builds an Ionomy client from the flags, falling back to environment variables for
// anything not provided on the command line.
//
func (o *options) client(cmd *cobra.Command) (*ionomy.Client, error) {
	//
	// Load the environment file. A missing default file is not an error, but a missing file that
	// was explicitly asked for is.
	//
	if o.envFile != "" {
		if err := godotenv.Load(o.envFile); err != nil {
			if cmd.Flags().Changed("env-file") || !errors.Is(err, fs.ErrNotExist) {
				return nil, errors.Wrapf(err, "failed to load environment file %s", o.envFile)
			}
		}
	}

	logger := o.logger(cmd)

	client := ionomy.New(ionomy.Config{
		API:               firstNonEmpty(o.api, os.Getenv(EnvAPI)),
		APIKey:            firstNonEmpty(o.key, os.Getenv(EnvAPIKey)),
		APISecret:         firstNonEmpty(o.secret, os.Getenv(EnvAPISecret)),
		DisableKeepAlives: o.noKeepAlive,
		Timeout:           o.timeout,
		Logger:            &logger,
	})

	logger.Debug().
		Str("api", client.API()).
		Bool("authenticated", client.Authenticated()).
		Msg("Client configured.")

	return client, nil
}

func (o *options) logger(cmd *cobra.Command) zerolog.Logger {
	level := zerolog.InfoLevel
	if o.verbose {
		level = zerolog.DebugLevel
	}

	writer := zerolog.ConsoleWriter{
		Out:        cmd.ErrOrStderr(),
		NoColor:    o.noColor,
		TimeFormat: time.RFC3339,
		FormatMessage: func(i interface{}) string {
			prefix := fmt.Sprintf(constants.LogPrefixFmt, Name)
			if i == nil {
				return prefix
			}

			return prefix + fmt.Sprint(i)
		},
	}

	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}

	return ""
}
