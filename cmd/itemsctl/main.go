// ABOUTME: Command line tool that loads and resets the local item cache
// ABOUTME: Thin wrapper around pkg/cli so the commands stay testable

package main

import (
	"context"
	"os"

	"items-app-api/pkg/cli"
)

func main() {
	code, _ := cli.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
	os.Exit(code)
}
