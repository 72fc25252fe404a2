// Command mrpnet runs the MRP engine's CLI, replacing the teacher's
// flag.String-based cmd/mrp/main.go with a cobra command tree.
package main

import (
	"fmt"
	"os"

	"github.com/devkrishnan/mrpnet/pkg/interfaces/cli/commands"
)

func main() {
	root := commands.NewRootCommand()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
