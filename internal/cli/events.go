package cli

import (
	"fmt"
	"os"

	"github.com/tessro/cadence/internal/lifecycle"
)

// printEvent returns a lifecycle event sink that renders informational
// console lines for a service. Log records carry the detail; these lines
// are for the operator at the terminal.
func printEvent(name string) func(lifecycle.Event) {
	return func(e lifecycle.Event) {
		switch e {
		case lifecycle.EventStarted:
			fmt.Printf("🥁 %s started (pid %d)\n", name, os.Getpid())
		case lifecycle.EventAlreadyRunning:
			fmt.Printf("🥁 %s is already running\n", name)
		case lifecycle.EventStaleCleaned:
			fmt.Printf("🥁 cleaned up stale marker for %s\n", name)
		case lifecycle.EventStopping:
			fmt.Printf("🥁 asking %s to stop\n", name)
		case lifecycle.EventStopped:
			fmt.Printf("🥁 %s stopped\n", name)
		case lifecycle.EventNotRunning:
			fmt.Printf("🥁 %s is not running\n", name)
		case lifecycle.EventWorkFailed:
			fmt.Printf("🥁 %s work cycle failed, see log for details\n", name)
		}
	}
}
