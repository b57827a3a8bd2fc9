// The 's3ctl presign' command. Generates a time-limited capability URL.
package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	presignMethod  string
	presignExpires time.Duration
)

var presignCmd = &cobra.Command{
	Use:   "presign BUCKET KEY",
	Short: "Generate a presigned URL for an object.",
	Long: `Presign produces a URL granting access to BUCKET/KEY until the expiry
elapses, without the holder needing the secret key. Anyone with the URL can
perform the signed method, so treat it as a credential.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}

		method := strings.ToUpper(presignMethod)
		switch method {
		case "GET", "PUT", "DELETE":
		default:
			return errors.Errorf("unsupported method %q, expected GET, PUT or DELETE", presignMethod)
		}

		url, expires := client.PresignURL(args[0], args[1], method, presignExpires)
		fmt.Println(url)
		fmt.Printf("Expires: %s\n", time.Unix(expires, 0).UTC().Format(time.RFC1123))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(presignCmd)
	presignCmd.Flags().StringVar(&presignMethod, "method", "GET", "HTTP method the URL grants")
	presignCmd.Flags().DurationVar(&presignExpires, "expires", time.Hour, "how long the URL stays valid")
}
