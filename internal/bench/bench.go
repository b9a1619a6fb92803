// Package bench measures a kdtree.Tree against the brute-force
// pointset.Set on the same points and queries, and checks that both give the
// same answers.
package bench

import (
	"math/rand"
	"sort"
	"time"

	"github.com/rcrowley/go-metrics"

	"github.com/peterstace/kdtree"
	"github.com/peterstace/kdtree/internal/logger"
	"github.com/peterstace/kdtree/pointset"
)

// Options controls the generated queries.
type Options struct {
	Seed      int64
	Queries   int
	RangeSize float64
	BulkLoad  bool
}

// Timing summarises one timer, in microseconds.
type Timing struct {
	Count int64   `json:"count"`
	Mean  float64 `json:"mean_us"`
	P99   float64 `json:"p99_us"`
	Max   float64 `json:"max_us"`
}

// Report is the outcome of Run.
type Report struct {
	Points     int
	Distinct   int
	Height     int
	Queries    int
	Mismatches int64
	Timings    map[string]Timing
}

type runner struct {
	tree     *kdtree.Tree
	set      *pointset.Set
	registry metrics.Registry

	mismatches metrics.Counter
	log        logger.Logger
}

// Run loads points into both indexes and runs opt.Queries queries of each
// kind against them.
func Run(points []kdtree.Point, opt Options) (*Report, error) {
	r := &runner{
		tree:     kdtree.New(),
		set:      pointset.New(),
		registry: metrics.NewRegistry(),
		log:      logger.New("bench"),
	}
	r.mismatches = metrics.NewRegisteredCounter("mismatches", r.registry)

	if err := r.load(points, opt.BulkLoad); err != nil {
		return nil, err
	}
	r.log.Infof("loaded %d points (%d distinct), tree height %d", len(points), r.tree.Size(), r.tree.Height())

	rnd := rand.New(rand.NewSource(opt.Seed))
	domain := r.tree.Domain()
	for i := 0; i < opt.Queries; i++ {
		q := kdtree.Point{
			X: domain.MinX + rnd.Float64()*(domain.MaxX-domain.MinX),
			Y: domain.MinY + rnd.Float64()*(domain.MaxY-domain.MinY),
		}
		if err := r.contains(q); err != nil {
			return nil, err
		}
		if err := r.nearest(q); err != nil {
			return nil, err
		}
		rect := kdtree.Rect{MinX: q.X, MinY: q.Y, MaxX: q.X + opt.RangeSize, MaxY: q.Y + opt.RangeSize}
		if err := r.rangeQuery(rect); err != nil {
			return nil, err
		}
	}
	r.log.Infof("ran %d queries of each kind, %d mismatches", opt.Queries, r.mismatches.Count())
	return r.report(len(points), opt.Queries), nil
}

func (r *runner) timer(name string) metrics.Timer {
	return metrics.GetOrRegisterTimer(name, r.registry)
}

func (r *runner) load(points []kdtree.Point, bulk bool) error {
	var err error
	if bulk {
		start := time.Now()
		r.tree, err = kdtree.BulkLoad(points, kdtree.UnitSquare)
		if err != nil {
			return err
		}
		r.timer("tree.bulk_load").UpdateSince(start)
	} else {
		treeInsert := r.timer("tree.insert")
		for _, p := range points {
			start := time.Now()
			if err = r.tree.Insert(p); err != nil {
				return err
			}
			treeInsert.UpdateSince(start)
		}
	}
	setInsert := r.timer("set.insert")
	for _, p := range points {
		start := time.Now()
		if err = r.set.Insert(p); err != nil {
			return err
		}
		setInsert.UpdateSince(start)
	}
	if r.tree.Size() != r.set.Size() {
		r.log.Errorf("size mismatch: tree=%d set=%d", r.tree.Size(), r.set.Size())
		r.mismatches.Inc(1)
	}
	return nil
}

func (r *runner) contains(q kdtree.Point) error {
	var treeOK, setOK bool
	var treeErr, setErr error
	r.timer("tree.contains").Time(func() { treeOK, treeErr = r.tree.Contains(q) })
	r.timer("set.contains").Time(func() { setOK, setErr = r.set.Contains(q) })
	if err := firstErr(treeErr, setErr); err != nil {
		return err
	}
	if treeOK != setOK {
		r.log.Errorf("contains %v: tree=%t set=%t", q, treeOK, setOK)
		r.mismatches.Inc(1)
	}
	return nil
}

func (r *runner) nearest(q kdtree.Point) error {
	var treeP, setP kdtree.Point
	var treeErr, setErr error
	r.timer("tree.nearest").Time(func() { treeP, _, treeErr = r.tree.Nearest(q) })
	r.timer("set.nearest").Time(func() { setP, _, setErr = r.set.Nearest(q) })
	if err := firstErr(treeErr, setErr); err != nil {
		return err
	}
	if treeP != setP {
		r.log.Errorf("nearest %v: tree=%v set=%v", q, treeP, setP)
		r.mismatches.Inc(1)
	}
	return nil
}

func (r *runner) rangeQuery(rect kdtree.Rect) error {
	var treePoints, setPoints []kdtree.Point
	var treeErr, setErr error
	r.timer("tree.range").Time(func() { treePoints, treeErr = r.tree.Range(rect) })
	r.timer("set.range").Time(func() { setPoints, setErr = r.set.Range(rect) })
	if err := firstErr(treeErr, setErr); err != nil {
		return err
	}
	// The set gives its points in ascending order.
	sort.Slice(treePoints, func(i, j int) bool { return treePoints[i].Less(treePoints[j]) })
	if !equalPoints(treePoints, setPoints) {
		r.log.Errorf("range %v: tree found %d points, set found %d", rect, len(treePoints), len(setPoints))
		r.mismatches.Inc(1)
	}
	return nil
}

func (r *runner) report(points, queries int) *Report {
	rep := &Report{
		Points:     points,
		Distinct:   r.tree.Size(),
		Height:     r.tree.Height(),
		Queries:    queries,
		Mismatches: r.mismatches.Count(),
		Timings:    make(map[string]Timing),
	}
	const us = float64(time.Microsecond)
	r.registry.Each(func(name string, i interface{}) {
		t, ok := i.(metrics.Timer)
		if !ok {
			return
		}
		s := t.Snapshot()
		rep.Timings[name] = Timing{
			Count: s.Count(),
			Mean:  s.Mean() / us,
			P99:   s.Percentile(0.99) / us,
			Max:   float64(s.Max()) / us,
		}
	})
	return rep
}

func equalPoints(a, b []kdtree.Point) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
