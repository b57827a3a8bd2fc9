// The 's3ctl rm' command. Deletes an object.
package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var rmCmd = &cobra.Command{
	Use:   "rm BUCKET KEY",
	Short: "Delete an object from the gateway.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}

		ctx, cancel := opContext()
		defer cancel()

		if err := client.DeleteObject(ctx, args[0], args[1]); err != nil {
			return errors.Wrap(err, "Delete failed")
		}
		fmt.Printf("Deleted %s/%s\n", args[0], args[1])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rmCmd)
}
