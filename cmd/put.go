// The 's3ctl put' command. Uploads an object from a file or stdin.
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var (
	putContentType string
	putVerifyMD5   bool
)

var putCmd = &cobra.Command{
	Use:   "put BUCKET KEY [FILE]",
	Short: "Upload an object to the gateway.",
	Long: `Put uploads the contents of FILE (or stdin when FILE is omitted) to
BUCKET/KEY. With --verify-md5 the upload carries a Content-MD5 header so the
gateway rejects a payload corrupted in transit.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}

		var data []byte
		if len(args) == 3 {
			if data, err = ioutil.ReadFile(args[2]); err != nil {
				return errors.Wrap(err, "Failed to read input file")
			}
		} else {
			if data, err = ioutil.ReadAll(os.Stdin); err != nil {
				return errors.Wrap(err, "Failed to read stdin")
			}
		}

		ctx, cancel := opContext()
		defer cancel()

		result, err := client.PutObject(ctx, args[0], args[1], data, putContentType, putVerifyMD5)
		if err != nil {
			return errors.Wrap(err, "Upload failed")
		}
		fmt.Printf("Uploaded %d bytes to %s/%s (ETag %s)\n", len(data), args[0], args[1], result.ETag)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(putCmd)
	putCmd.Flags().StringVar(&putContentType, "content-type", "application/octet-stream", "Content-Type for the object")
	putCmd.Flags().BoolVar(&putVerifyMD5, "verify-md5", false, "send a Content-MD5 integrity header")
}
