// The 's3ctl metrics' command. Summarizes the gateway's metrics endpoint.
package cmd

import (
	"fmt"
	"io/ioutil"
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// The storage counters worth surfacing from the full Prometheus dump.
var metricsOfInterest = []string{
	"s3_requests_total",
	"s3_auth_success_total",
	"s3_auth_failure_total",
	"s3_objects_stored_total",
	"s3_bytes_stored_total",
}

var metricsCmd = &cobra.Command{
	Use:   "metrics",
	Short: "Print a summary of the gateway's storage metrics.",
	Long: `Metrics fetches the gateway's Prometheus endpoint (metrics-url in the
config, default http://localhost:9091/metrics) and prints the storage
counters of interest.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		metricsURL := viper.GetString("metrics-url")

		resp, err := http.Get(metricsURL)
		if err != nil {
			return errors.Wrap(err, "Could not fetch metrics")
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return errors.Errorf("metrics endpoint returned HTTP %d", resp.StatusCode)
		}

		body, err := ioutil.ReadAll(resp.Body)
		if err != nil {
			return errors.Wrap(err, "Could not read metrics response")
		}

		lines := strings.Split(string(body), "\n")
		for _, name := range metricsOfInterest {
			for _, line := range lines {
				if strings.HasPrefix(line, name) && !strings.HasPrefix(line, "#") {
					fmt.Println(" ", line)
					break
				}
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(metricsCmd)
}
