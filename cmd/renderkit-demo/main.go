package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// Version information set at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

const banner = `
  ┬─┐┌─┐┌┐┌┌┬┐┌─┐┬─┐┬┌─┬┌┬┐
  ├┬┘├┤ │││ ││├┤ ├┬┘├┴┐│ │
  ┴└─└─┘┘└┘─┴┘└─┘┴└─┴ ┴┴ ┴
`

func main() {
	rootCmd := &cobra.Command{
		Use:   "renderkit-demo",
		Short: "Demo CLI for the renderkit reactive vdom renderer",
		Long: `renderkit-demo drives the renderkit reconciler against an
in-memory host tree, and can serve a devtools console over HTTP/WebSocket
to watch a live render session.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(
		renderCmd(),
		serveCmd(),
		snapshotCmd(),
		versionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		os.Exit(1)
	}
}

func printBanner() {
	fmt.Print(banner)
}

func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}
