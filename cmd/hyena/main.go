// Command hyena scans a source tree and reports architectural signals:
// dead files, circular dependencies, god files, deep hierarchies and the
// rest of the catalog internal/signal implements.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hyena",
	Short: "Static architecture analyzer",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
