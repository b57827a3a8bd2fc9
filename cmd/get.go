// The 's3ctl get' command. Downloads an object to a file or stdout.
package cmd

import (
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/miniobject/s3ctl/pkg/s3client"
)

var getRange string

var getCmd = &cobra.Command{
	Use:   "get BUCKET KEY [FILE]",
	Short: "Download an object from the gateway.",
	Long: `Get downloads BUCKET/KEY to FILE, or to stdout when FILE is omitted.
--range START-END fetches an inclusive byte window of the object.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		client, err := getClient()
		if err != nil {
			return err
		}

		rng, err := parseByteRange(getRange)
		if err != nil {
			return err
		}

		ctx, cancel := opContext()
		defer cancel()

		data, err := client.GetObject(ctx, args[0], args[1], rng)
		if err != nil {
			return errors.Wrap(err, "Download failed")
		}

		if len(args) == 3 {
			if err := ioutil.WriteFile(args[2], data, 0644); err != nil {
				return errors.Wrap(err, "Failed to write output file")
			}
			fmt.Printf("Wrote %d bytes to %s\n", len(data), args[2])
			return nil
		}
		_, err = os.Stdout.Write(data)
		return err
	},
}

func parseByteRange(spec string) (*s3client.ByteRange, error) {
	if spec == "" {
		return nil, nil
	}
	parts := strings.SplitN(spec, "-", 2)
	if len(parts) != 2 {
		return nil, errors.Errorf("invalid range %q, expected START-END", spec)
	}
	start, err1 := strconv.ParseInt(parts[0], 10, 64)
	end, err2 := strconv.ParseInt(parts[1], 10, 64)
	if err1 != nil || err2 != nil {
		return nil, errors.Errorf("invalid range %q, expected START-END", spec)
	}
	return &s3client.ByteRange{Start: start, End: end}, nil
}

func init() {
	rootCmd.AddCommand(getCmd)
	getCmd.Flags().StringVar(&getRange, "range", "", "inclusive byte range START-END")
}
