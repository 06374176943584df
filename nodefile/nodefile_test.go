package nodefile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/briokit/briosort/kdsort"
)

func TestWriteRead_RoundTrip(t *testing.T) {
	set := Set{
		BBox: kdsort.BoundingBox{Min: [3]float64{0, 0, 0}, Max: [3]float64{1, 1, 1}},
		Points: []kdsort.Point{
			{Coord: [3]float64{0.1, 0.2, 0.3}, Payload: 1},
			{Coord: [3]float64{0.9, 0.8, 0.7}, Payload: 2},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, set))

	got, err := Read(&buf)
	require.NoError(t, err)
	require.Equal(t, set.BBox, got.BBox)
	require.Equal(t, set.Points, got.Points)
}

func TestRead_Empty(t *testing.T) {
	r := strings.NewReader("0\n0 0 0 0 0 0\n")
	set, err := Read(r)
	require.NoError(t, err)
	require.Empty(t, set.Points)
}

func TestRead_TruncatedFile(t *testing.T) {
	r := strings.NewReader("3\n0 0 0 1 1 1\n0.1 0.1 0.1 1\n")
	_, err := Read(r)
	require.Error(t, err)
}

func TestRead_MalformedBBox(t *testing.T) {
	r := strings.NewReader("1\n0 0 0\n0.1 0.1 0.1 1\n")
	_, err := Read(r)
	require.Error(t, err)
}

func TestRead_MalformedPoint(t *testing.T) {
	r := strings.NewReader("1\n0 0 0 1 1 1\nnotanumber 0.1 0.1 1\n")
	_, err := Read(r)
	require.Error(t, err)
}

func TestRead_BadCount(t *testing.T) {
	r := strings.NewReader("-1\n0 0 0 1 1 1\n")
	_, err := Read(r)
	require.Error(t, err)
}
