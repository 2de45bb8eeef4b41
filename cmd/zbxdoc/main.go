// zbxdoc generates Markdown documentation from Zabbix template
// exports.
package main

import (
	"fmt"
	"os"

	"github.com/zbx-tools/zbxdoc/internal/cli"
)

// Build-time variables set via ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
)

func main() {
	cli.SetVersion(Version, Commit)
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
