package main

import "github.com/miniobject/s3ctl/cmd"

// s3ctl is a thin demonstration harness around pkg/s3client and pkg/s3auth;
// the protocol logic all lives in those packages. We keep the CLI as a
// single executable with subcommands so the library and its driver travel
// together.
func main() {
	cmd.Execute()
}
