// The 's3ctl head' command. Prints object metadata.
package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var headCmd = &cobra.Command{
	Use:   "head BUCKET KEY",
	Short: "Show object metadata without downloading it.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}

		ctx, cancel := opContext()
		defer cancel()

		meta, err := client.HeadObject(ctx, args[0], args[1])
		if err != nil {
			return errors.Wrap(err, "Head request failed")
		}

		fmt.Printf("Size:          %d\n", meta.Size)
		fmt.Printf("ETag:          %s\n", meta.ETag)
		fmt.Printf("Content-Type:  %s\n", meta.ContentType)
		fmt.Printf("Last-Modified: %s\n", meta.LastModified)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(headCmd)
}
