package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/briokit/briosort/kdsort"
	"github.com/briokit/briosort/nodefile"
	"github.com/briokit/briosort/pointgen"
)

var (
	generateDistribution string
	generateCount        int
	generateSeed         uint64
	generateOutput       string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Write a synthetic point set to a node file",
	Long: `generate produces n points from one of the built-in synthetic
distributions and writes them, along with their bounding box, to a node
file. See "briosort generate --help" for the list of distributions.`,
	RunE: runGenerate,
}

func init() {
	RootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateDistribution, "distribution", "d", string(pointgen.Cube),
		"point distribution: "+strings.Join(distributionNames(), ", "))
	generateCmd.Flags().IntVarP(&generateCount, "count", "n", 10000, "number of points (ignored for liu)")
	generateCmd.Flags().Uint64Var(&generateSeed, "seed", pointgen.DefaultSeed, "random seed")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "points.node", "output node file")
}

func distributionNames() []string {
	names := make([]string, len(pointgen.All))
	for i, d := range pointgen.All {
		names[i] = string(d)
	}
	return names
}

func runGenerate(cmd *cobra.Command, args []string) error {
	// pointgen.Generate treats a bad distribution or count as a programmer
	// error and panics, so the flag values have to be screened here first.
	dist := pointgen.Distribution(generateDistribution)
	known := false
	for _, d := range pointgen.All {
		if d == dist {
			known = true
			break
		}
	}
	if !known {
		return fmt.Errorf("briosort generate: unknown distribution %q, choose one of: %s",
			generateDistribution, strings.Join(distributionNames(), ", "))
	}
	if dist != pointgen.Liu && generateCount <= 0 {
		return fmt.Errorf("briosort generate: --count must be positive, got %d", generateCount)
	}

	points := pointgen.Generate(dist, generateCount, generateSeed)
	bbox := kdsort.BoundingBoxOf(points)

	f, err := os.Create(generateOutput)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := nodefile.Write(f, nodefile.Set{BBox: bbox, Points: points}); err != nil {
		return err
	}
	klog.Infof("wrote %s points (%s) to %s", humanize.Comma(int64(len(points))), dist, generateOutput)
	return nil
}
