// Command cadence runs configured commands as singleton daemon services
// controlled through PID marker files.
package main

import (
	"os"

	"github.com/tessro/cadence/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
