package pointset

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/peterstace/kdtree"
)

func TestSet(t *testing.T) {
	s := New()
	assert.True(t, s.IsEmpty())
	_, ok, err := s.Nearest(kdtree.Point{X: 0.5, Y: 0.5})
	require.NoError(t, err)
	assert.False(t, ok)

	for _, p := range []kdtree.Point{{X: 0.7, Y: 0.2}, {X: 0.5, Y: 0.4}, {X: 0.2, Y: 0.3}, {X: 0.4, Y: 0.7}, {X: 0.9, Y: 0.6}, {X: 0.5, Y: 0.4}} {
		require.NoError(t, s.Insert(p))
	}
	assert.Equal(t, 5, s.Size())

	ok, err = s.Contains(kdtree.Point{X: 0.4, Y: 0.7})
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := s.Range(kdtree.Rect{MinX: 0, MinY: 0, MaxX: 0.5, MaxY: 0.5})
	require.NoError(t, err)
	assert.Equal(t, []kdtree.Point{{X: 0.2, Y: 0.3}, {X: 0.5, Y: 0.4}}, got)

	p, ok, err := s.Nearest(kdtree.Point{X: 0.6, Y: 0.5})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, kdtree.Point{X: 0.5, Y: 0.4}, p)
}

func TestSetInvalidArguments(t *testing.T) {
	s := New()
	nan := math.NaN()
	assert.ErrorIs(t, s.Insert(kdtree.Point{X: nan}), kdtree.ErrInvalidArgument)
	_, err := s.Contains(kdtree.Point{Y: nan})
	assert.ErrorIs(t, err, kdtree.ErrInvalidArgument)
	_, err = s.Range(kdtree.Rect{MinY: 1})
	assert.ErrorIs(t, err, kdtree.ErrInvalidArgument)
	_, _, err = s.Nearest(kdtree.Point{X: nan, Y: nan})
	assert.ErrorIs(t, err, kdtree.ErrInvalidArgument)
}

// TestAgainstTree checks that a Set and a Tree holding the same points
// answer every query identically.
func TestAgainstTree(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))
	s := New()
	tr := kdtree.New()
	for i := 0; i < 2000; i++ {
		// Half of the points lie on a coarse grid to produce ties.
		p := kdtree.Point{X: rnd.Float64(), Y: rnd.Float64()}
		if i%2 == 0 {
			p = kdtree.Point{X: float64(rnd.Intn(33)) / 32, Y: float64(rnd.Intn(33)) / 32}
		}
		require.NoError(t, s.Insert(p))
		require.NoError(t, tr.Insert(p))
		require.Equal(t, s.Size(), tr.Size())
	}

	for i := 0; i < 500; i++ {
		q := kdtree.Point{X: float64(rnd.Intn(65)) / 64, Y: float64(rnd.Intn(65)) / 64}

		want, err := s.Contains(q)
		require.NoError(t, err)
		got, err := tr.Contains(q)
		require.NoError(t, err)
		assert.Equal(t, want, got, "contains %v", q)

		wantNearest, _, err := s.Nearest(q)
		require.NoError(t, err)
		gotNearest, _, err := tr.Nearest(q)
		require.NoError(t, err)
		assert.Equal(t, wantNearest, gotNearest, "nearest to %v", q)

		r := kdtree.Rect{MinX: q.X, MinY: q.Y, MaxX: q.X + rnd.Float64()*0.3, MaxY: q.Y + rnd.Float64()*0.3}
		wantRange, err := s.Range(r)
		require.NoError(t, err)
		gotRange, err := tr.Range(r)
		require.NoError(t, err)
		sort.Slice(gotRange, func(i, j int) bool { return gotRange[i].Less(gotRange[j]) })
		assert.Equal(t, wantRange, gotRange, "range %v", r)
	}
}
