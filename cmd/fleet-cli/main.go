package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/corvusHold/fleet/fleet"
	"github.com/corvusHold/fleet/internal/config"
	"github.com/corvusHold/fleet/internal/logger"
	"github.com/corvusHold/fleet/internal/version"
	"github.com/corvusHold/fleet/transport"
)

var (
	cfgFile   string
	endpoint  string
	accessKey string
	secretKey string
	verbose   bool
	outputFmt string
	timeout   time.Duration
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "fleet-cli",
	Short: "Corvus Fleet CLI - remote instance configuration management",
	Long: `Fleet CLI provides command-line access to the Corvus Fleet service.
Manage configuration documents, associations, and remote commands from the terminal.`,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the CLI version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fleet-cli.yaml)")
	rootCmd.PersistentFlags().StringVar(&endpoint, "endpoint", "", "Fleet API endpoint URL")
	rootCmd.PersistentFlags().StringVar(&accessKey, "access-key", "", "API access key")
	rootCmd.PersistentFlags().StringVar(&secretKey, "secret-key", "", "API secret key")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "json", "output format (json, table)")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 0, "per-call timeout")

	viper.BindPFlag("endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	viper.BindPFlag("access_key", rootCmd.PersistentFlags().Lookup("access-key"))
	viper.BindPFlag("secret_key", rootCmd.PersistentFlags().Lookup("secret-key"))

	rootCmd.AddCommand(documentCmd)
	rootCmd.AddCommand(associationCmd)
	rootCmd.AddCommand(commandCmd)
	rootCmd.AddCommand(instanceCmd)
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	// A local .env is honoured for development setups; absence is fine.
	_ = godotenv.Load()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".fleet-cli")
	}

	viper.SetEnvPrefix("FLEET")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}

	cfg, err := config.Load()
	cobra.CheckErr(err)

	if endpoint == "" {
		endpoint = viper.GetString("endpoint")
	}
	if endpoint == "" {
		endpoint = cfg.Endpoint
	}
	if accessKey == "" {
		accessKey = viper.GetString("access_key")
	}
	if accessKey == "" {
		accessKey = cfg.AccessKey
	}
	if secretKey == "" {
		secretKey = viper.GetString("secret_key")
	}
	if secretKey == "" {
		secretKey = cfg.SecretKey
	}
	if timeout == 0 {
		timeout = cfg.CallTimeout
	}
}

// newClient builds the SDK client from the resolved CLI configuration.
func newClient() (*fleet.Client, error) {
	log := logger.New(os.Getenv("FLEET_ENV"), verbose)

	var signer transport.Signer = transport.NopSigner{}
	if accessKey != "" {
		signer = &transport.HMACSigner{AccessKey: accessKey, SecretKey: secretKey}
	}
	inv := transport.New(endpoint,
		transport.WithSigner(signer),
		transport.WithLogger(log),
	)
	return fleet.NewClient(endpoint,
		fleet.WithInvoker(inv),
		fleet.WithLogger(log),
		fleet.WithMetrics(),
	)
}

// callCtx returns the context used for one CLI-driven API call.
func callCtx() (context.Context, context.CancelFunc) {
	if timeout > 0 {
		return context.WithTimeout(context.Background(), timeout)
	}
	return context.Background(), func() {}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// parseFilters converts repeated --filter Name=v1,v2 flags into SDK
// filters, preserving flag order.
func parseFilters(raw []string) ([]*fleet.Filter, error) {
	if len(raw) == 0 {
		return nil, nil
	}
	filters := make([]*fleet.Filter, 0, len(raw))
	for _, f := range raw {
		name, values, ok := strings.Cut(f, "=")
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid filter %q, expected Name=value[,value...]", f)
		}
		flt := &fleet.Filter{Name: fleet.String(name)}
		for _, v := range strings.Split(values, ",") {
			flt.Values = append(flt.Values, fleet.String(v))
		}
		filters = append(filters, flt)
	}
	return filters, nil
}

// optString returns nil for an empty flag value so unset flags stay off
// the wire.
func optString(s string) *string {
	if s == "" {
		return nil
	}
	return fleet.String(s)
}
