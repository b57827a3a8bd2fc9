// The 's3ctl ls' command. Lists objects in a bucket.
package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/miniobject/s3ctl/pkg/listing"
)

var (
	lsPrefix  string
	lsMaxKeys int
	lsRaw     bool
)

var lsCmd = &cobra.Command{
	Use:   "ls BUCKET",
	Short: "List objects in a bucket.",
	Long: `Ls runs a ListObjectsV2 request against BUCKET and prints one object
per line. --raw skips decoding and dumps the gateway's XML payload as-is.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}

		ctx, cancel := opContext()
		defer cancel()

		payload, err := client.ListObjects(ctx, args[0], lsPrefix, lsMaxKeys)
		if err != nil {
			return errors.Wrap(err, "List failed")
		}

		if lsRaw {
			_, err := os.Stdout.Write(payload)
			return err
		}

		result, err := listing.Parse(payload)
		if err != nil {
			return errors.Wrap(err, "Could not decode listing (try --raw)")
		}
		for _, obj := range result.Contents {
			fmt.Printf("%12d  %s  %s\n", obj.Size, obj.LastModified, obj.Key)
		}
		if result.IsTruncated {
			fmt.Printf("(truncated at %d keys)\n", len(result.Contents))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lsCmd)
	lsCmd.Flags().StringVar(&lsPrefix, "prefix", "", "only list keys with this prefix")
	lsCmd.Flags().IntVar(&lsMaxKeys, "max-keys", 1000, "maximum number of keys to return")
	lsCmd.Flags().BoolVar(&lsRaw, "raw", false, "print the raw XML payload")
}
