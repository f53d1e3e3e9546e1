// ringdemo exercises a byte ring end to end: bulk write, peek, read, an
// empty-read failure, filling to capacity and an overflow failure.
//
// Usage:
//
//	ringdemo run --capacity 128 --backend mmap
//	ringdemo run --config ring.yaml
package main

import (
	"os"

	"github.com/momentics/hioload-ring/cmd/ringdemo/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
