// Command weathercodes validates, exports, looks up and serves the bundled
// present-weather code tables.
//
// Usage:
//
//	weathercodes validate [--snapshot tables.json]
//	weathercodes export --format yaml --out tables.yaml
//	weathercodes lookup [table] <code|key>
//	weathercodes serve [--addr :8080]
package main

import (
	"os"

	"github.com/couchcryptid/weather-codes/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
