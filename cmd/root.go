// Root of command-line argument parsing for s3ctl.
package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/miniobject/s3ctl/pkg/s3client"
)

var (
	cfgFile string
	verbose bool
	timeout time.Duration

	log = logrus.New()
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "s3ctl",
	Short: "Command-line client for the miniobject storage gateway",
	Long: `s3ctl talks to an S3-compatible miniobject gateway using its native
HMAC-SHA256 authentication scheme. Credentials and the gateway address come
from flags, environment variables (S3CTL_*), or a config file.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Error(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ~/.s3ctl.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "per-operation timeout")

	rootCmd.PersistentFlags().String("base-url", "http://localhost:9000", "base URL of the storage gateway")
	rootCmd.PersistentFlags().String("access-key", "", "gateway access key")
	rootCmd.PersistentFlags().String("secret-key", "", "gateway secret key")
	viper.BindPFlag("base-url", rootCmd.PersistentFlags().Lookup("base-url"))
	viper.BindPFlag("access-key", rootCmd.PersistentFlags().Lookup("access-key"))
	viper.BindPFlag("secret-key", rootCmd.PersistentFlags().Lookup("secret-key"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		viper.AddConfigPath(home)
		viper.SetConfigName(".s3ctl")
	}

	viper.SetEnvPrefix("s3ctl")
	viper.AutomaticEnv()
	viper.SetDefault("metrics-url", "http://localhost:9091/metrics")

	if err := viper.ReadInConfig(); err == nil {
		log.Debug("Using config file: ", viper.ConfigFileUsed())
	}
}

// getClient builds the gateway client from the resolved configuration.
func getClient() (*s3client.Client, error) {
	return s3client.New(s3client.Config{
		BaseURL:   viper.GetString("base-url"),
		AccessKey: viper.GetString("access-key"),
		SecretKey: viper.GetString("secret-key"),
		Logger:    log,
	})
}

// opContext returns the context every gateway operation runs under.
func opContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}
