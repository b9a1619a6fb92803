// Package pointfile reads and writes point sets as text, one point per line
// with the two coordinates separated by whitespace:
//
//	0.206107 0.095492
//	0.975528 0.654508
//
// Blank lines and lines starting with '#' are ignored.
package pointfile

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"

	"github.com/peterstace/kdtree"
)

// Read parses all points from r.
func Read(r io.Reader) ([]kdtree.Point, error) {
	var points []kdtree.Point
	s := bufio.NewScanner(r)
	var line int
	for s.Scan() {
		line++
		text := strings.TrimSpace(s.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("line %d: expected 2 coordinates, found %d", line, len(fields))
		}
		x, err := strconv.ParseFloat(fields[0], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		y, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		points = append(points, kdtree.Point{X: x, Y: y})
	}
	return points, s.Err()
}

// ReadFile parses all points from the named file.
func ReadFile(name string) ([]kdtree.Point, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Write writes points to w in the format Read accepts.
func Write(w io.Writer, points []kdtree.Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range points {
		bw.WriteString(strconv.FormatFloat(p.X, 'f', -1, 64))
		bw.WriteByte(' ')
		bw.WriteString(strconv.FormatFloat(p.Y, 'f', -1, 64))
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// Generate gives n points drawn uniformly from the unit square.
func Generate(rnd *rand.Rand, n int) []kdtree.Point {
	points := make([]kdtree.Point, n)
	for i := range points {
		points[i] = kdtree.Point{X: rnd.Float64(), Y: rnd.Float64()}
	}
	return points
}
