package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"k8s.io/klog/v2"

	"github.com/briokit/briosort/nodefile"
	"github.com/briokit/briosort/query"
)

var (
	queryInput      string
	queryMetric     bool
	queryRadius     float64
	queryPointIndex int
)

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Answer nearest/radius queries over a node file, or report locality metrics",
	Long: `query stands in for the downstream consumer kdsort is built to
serve: it builds a static KDTree over a node file's points and either
answers a single nearest/radius lookup, or (with --metric) reports the
BFS prefix-spread and neighbor-index-gap locality metrics for the file
as a whole.`,
	RunE: runQuery,
}

func init() {
	RootCmd.AddCommand(queryCmd)

	queryCmd.Flags().StringVarP(&queryInput, "input", "i", "sorted.node", "input node file")
	queryCmd.Flags().BoolVar(&queryMetric, "metric", false, "report locality metrics instead of a single lookup")
	queryCmd.Flags().Float64Var(&queryRadius, "radius", 0, "if > 0, run a radius query instead of nearest-point")
	queryCmd.Flags().IntVar(&queryPointIndex, "point", 0, "index of the point in the file to query from")
}

func runQuery(cmd *cobra.Command, args []string) error {
	f, err := os.Open(queryInput)
	if err != nil {
		return err
	}
	set, err := nodefile.Read(f)
	f.Close()
	if err != nil {
		return err
	}
	if len(set.Points) == 0 {
		return fmt.Errorf("briosort query: %s has no points", queryInput)
	}

	if queryMetric {
		return reportMetrics(set)
	}
	return runLookup(set)
}

func reportMetrics(set nodefile.Set) error {
	for _, spread := range query.PrefixSpreads(set.Points, set.BBox) {
		fmt.Printf("prefix %8d: volume ratio %.4f\n", spread.Length, spread.Ratio)
	}
	gap, err := query.NeighborIndexGap(set.Points, 8)
	if err != nil {
		return err
	}
	fmt.Printf("average neighbor index gap: %.2f (of %d points)\n", gap, len(set.Points))
	klog.V(1).Infof("computed locality metrics over %d points", len(set.Points))
	return nil
}

func runLookup(set nodefile.Set) error {
	if queryPointIndex < 0 || queryPointIndex >= len(set.Points) {
		return fmt.Errorf("briosort query: --point %d out of range [0,%d)", queryPointIndex, len(set.Points))
	}
	tree, err := query.NewKDTree(set.Points, 8)
	if err != nil {
		return err
	}
	from := set.Points[queryPointIndex]

	if queryRadius > 0 {
		indices := query.RadiusQuery(tree, from, queryRadius)
		fmt.Printf("%d points within radius %g of point %d\n", len(indices), queryRadius, queryPointIndex)
		for _, idx := range indices {
			fmt.Printf("  %d: %s\n", idx, set.Points[idx])
		}
		return nil
	}

	res := query.NearestPoint(tree, from)
	fmt.Printf("nearest to point %d is %d at squared distance %g (%d descents)\n",
		queryPointIndex, res.Index, res.Dist2, res.Descents)
	return nil
}
