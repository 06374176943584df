// Command briosort dispatches generate, sort, and query operations against
// kdsort: CLI glue that ships alongside the engine so it has somewhere to
// be driven from.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

// RootCmd is the entry point every subcommand attaches itself to in its own
// init().
var RootCmd = &cobra.Command{
	Use:   "briosort",
	Short: "Generate, sort, and query synthetic 3D point sets with BRIO ordering",
	Long: `briosort exercises the kdsort BRIO engine end to end:

  briosort generate  writes a synthetic point set to a node file
  briosort sort      permutes a node file's points into BRIO order
  briosort query     answers nearest/radius queries and reports locality metrics

None of these subcommands are part of the kdsort engine itself; they are the
collaborators kdsort.Sort expects to be driven by.`,
}

func main() {
	klog.InitFlags(nil)
	defer klog.Flush()
	if err := RootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
