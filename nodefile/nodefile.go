// Package nodefile reads and writes the simple line-oriented point format
// the CLI uses to hand a point set between the generate, sort, and query
// subcommands. It is the collaborator that hands kdsort.Sort its mutable
// point array and the bounding box that bounds it; the format itself carries
// no knowledge of BRIO or kd-trees.
//
// Format (all fields whitespace-separated, one record per line):
//
//	<n>
//	<min.x> <min.y> <min.z> <max.x> <max.y> <max.z>
//	<x> <y> <z> <payload>
//	... n lines total ...
package nodefile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/briokit/briosort/kdsort"
)

// Set bundles the points a file carries alongside the bounding box they were
// generated or sorted within.
type Set struct {
	BBox   kdsort.BoundingBox
	Points []kdsort.Point
}

// Read parses a node file from r. It returns an error if the file is
// malformed or truncated, or if it holds fewer than n point lines; anything
// after the n-th point line is not read.
func Read(r io.Reader) (Set, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)

	n, err := readCountLine(sc)
	if err != nil {
		return Set{}, err
	}

	bbox, err := readBBoxLine(sc)
	if err != nil {
		return Set{}, err
	}

	points := make([]kdsort.Point, 0, n)
	for len(points) < n {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return Set{}, errors.Wrap(err, "nodefile: reading point line")
			}
			return Set{}, errors.Errorf("nodefile: expected %d points, found %d before EOF", n, len(points))
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		p, err := parsePointLine(line)
		if err != nil {
			return Set{}, err
		}
		points = append(points, p)
	}
	return Set{BBox: bbox, Points: points}, nil
}

func readCountLine(sc *bufio.Scanner) (int, error) {
	if !sc.Scan() {
		return 0, errors.New("nodefile: missing point-count line")
	}
	n, err := strconv.Atoi(strings.TrimSpace(sc.Text()))
	if err != nil {
		return 0, errors.Wrap(err, "nodefile: parsing point-count line")
	}
	if n < 0 {
		return 0, errors.Errorf("nodefile: negative point count %d", n)
	}
	return n, nil
}

func readBBoxLine(sc *bufio.Scanner) (kdsort.BoundingBox, error) {
	if !sc.Scan() {
		return kdsort.BoundingBox{}, errors.New("nodefile: missing bounding-box line")
	}
	fields := strings.Fields(sc.Text())
	if len(fields) != 2*kdsort.Dimension {
		return kdsort.BoundingBox{}, errors.Errorf("nodefile: bounding-box line must have %d fields, got %d", 2*kdsort.Dimension, len(fields))
	}
	var bbox kdsort.BoundingBox
	for axis := 0; axis < kdsort.Dimension; axis++ {
		v, err := strconv.ParseFloat(fields[axis], 64)
		if err != nil {
			return kdsort.BoundingBox{}, errors.Wrapf(err, "nodefile: parsing bbox min[%d]", axis)
		}
		bbox.Min[axis] = v
	}
	for axis := 0; axis < kdsort.Dimension; axis++ {
		v, err := strconv.ParseFloat(fields[kdsort.Dimension+axis], 64)
		if err != nil {
			return kdsort.BoundingBox{}, errors.Wrapf(err, "nodefile: parsing bbox max[%d]", axis)
		}
		bbox.Max[axis] = v
	}
	return bbox, nil
}

func parsePointLine(line string) (kdsort.Point, error) {
	fields := strings.Fields(line)
	if len(fields) != kdsort.Dimension+1 {
		return kdsort.Point{}, errors.Errorf("nodefile: point line must have %d fields, got %d: %q", kdsort.Dimension+1, len(fields), line)
	}
	var p kdsort.Point
	for axis := 0; axis < kdsort.Dimension; axis++ {
		v, err := strconv.ParseFloat(fields[axis], 64)
		if err != nil {
			return kdsort.Point{}, errors.Wrapf(err, "nodefile: parsing coordinate %d of %q", axis, line)
		}
		p.Coord[axis] = v
	}
	payload, err := strconv.ParseInt(fields[kdsort.Dimension], 10, 64)
	if err != nil {
		return kdsort.Point{}, errors.Wrapf(err, "nodefile: parsing payload of %q", line)
	}
	p.Payload = payload
	return p, nil
}

// Write serializes set to w in the format Read expects.
func Write(w io.Writer, set Set) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintln(bw, len(set.Points)); err != nil {
		return errors.Wrap(err, "nodefile: writing point count")
	}
	bbox := set.BBox
	if _, err := fmt.Fprintf(bw, "%g %g %g %g %g %g\n",
		bbox.Min[0], bbox.Min[1], bbox.Min[2], bbox.Max[0], bbox.Max[1], bbox.Max[2]); err != nil {
		return errors.Wrap(err, "nodefile: writing bounding box")
	}
	for _, p := range set.Points {
		if _, err := fmt.Fprintf(bw, "%g %g %g %d\n", p.Coord[0], p.Coord[1], p.Coord[2], p.Payload); err != nil {
			return errors.Wrap(err, "nodefile: writing point")
		}
	}
	return bw.Flush()
}
