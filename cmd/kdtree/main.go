package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strconv"

	"github.com/cenkalti/log"
	"github.com/urfave/cli"

	"github.com/peterstace/kdtree"
	"github.com/peterstace/kdtree/internal/bench"
	"github.com/peterstace/kdtree/internal/config"
	"github.com/peterstace/kdtree/internal/draw"
	"github.com/peterstace/kdtree/internal/jsonutil"
	"github.com/peterstace/kdtree/internal/logger"
	"github.com/peterstace/kdtree/internal/pointfile"
)

var (
	cfg *config.Config
	lg  = logger.New("kdtree")
)

func main() {
	app := cli.NewApp()
	app.Name = "kdtree"
	app.Usage = "2D-tree point index: range and nearest neighbour queries"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "config, c",
			Usage: "read config from `FILE`",
			Value: config.DefaultPath,
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "enable debug log",
		},
		cli.BoolFlag{
			Name:  "no-color",
			Usage: "disable colored output",
		},
	}
	app.Before = handleBeforeCommand
	app.Commands = []cli.Command{
		{
			Name:      "gen",
			Usage:     "write random points in the unit square",
			ArgsUsage: "FILE",
			Flags: []cli.Flag{
				cli.IntFlag{Name: "n", Usage: "number of points (default from config)"},
				cli.Int64Flag{Name: "seed", Usage: "random seed (default from config)"},
			},
			Action: handleGen,
		},
		{
			Name:      "range",
			Usage:     "print the points inside a rectangle",
			ArgsUsage: "FILE XMIN YMIN XMAX YMAX",
			Action:    handleRange,
		},
		{
			Name:      "nearest",
			Usage:     "print the point nearest to a query point",
			ArgsUsage: "FILE X Y",
			Action:    handleNearest,
		},
		{
			Name:      "bench",
			Usage:     "compare the tree with a brute-force point set",
			ArgsUsage: "[FILE]",
			Flags: []cli.Flag{
				cli.BoolFlag{Name: "bulk", Usage: "bulk load the tree"},
			},
			Action: handleBench,
		},
		{
			Name:      "draw",
			Usage:     "render the tree to a PNG image",
			ArgsUsage: "FILE OUT",
			Action:    handleDraw,
		},
	}
	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
	}
}

func handleBeforeCommand(c *cli.Context) error {
	var err error
	cfg, err = config.Load(c.GlobalString("config"))
	if err != nil {
		return err
	}
	if c.GlobalBool("debug") {
		logger.SetLevel(log.DEBUG)
	}
	lg.Debugf("config: %+v", *cfg)
	return nil
}

func handleGen(c *cli.Context) error {
	if c.NArg() != 1 {
		return errors.New("give an output file")
	}
	n, seed := cfg.Points, cfg.Seed
	if c.IsSet("n") {
		n = c.Int("n")
	}
	if c.IsSet("seed") {
		seed = c.Int64("seed")
	}
	f, err := os.Create(c.Args().Get(0))
	if err != nil {
		return err
	}
	defer f.Close()
	if err = pointfile.Write(f, pointfile.Generate(rand.New(rand.NewSource(seed)), n)); err != nil {
		return err
	}
	lg.Infof("wrote %d points to %s", n, f.Name())
	return f.Close()
}

func handleRange(c *cli.Context) error {
	if c.NArg() != 5 {
		return errors.New("give a point file and the rectangle's corners")
	}
	tr, err := loadTree(c.Args().Get(0))
	if err != nil {
		return err
	}
	v, err := parseFloats(c.Args()[1:])
	if err != nil {
		return err
	}
	r, err := kdtree.NewRect(v[0], v[1], v[2], v[3])
	if err != nil {
		return err
	}
	points, err := tr.Range(r)
	if err != nil {
		return err
	}
	lg.Debugf("%d of %d points inside %v", len(points), tr.Size(), r)
	if points == nil {
		points = []kdtree.Point{}
	}
	return printJSON(c, points)
}

func handleNearest(c *cli.Context) error {
	if c.NArg() != 3 {
		return errors.New("give a point file and the query point")
	}
	tr, err := loadTree(c.Args().Get(0))
	if err != nil {
		return err
	}
	v, err := parseFloats(c.Args()[1:])
	if err != nil {
		return err
	}
	q := kdtree.Point{X: v[0], Y: v[1]}
	p, ok, err := tr.Nearest(q)
	if err != nil {
		return err
	}
	if !ok {
		return printJSON(c, nil)
	}
	return printJSON(c, struct {
		Point           kdtree.Point
		DistanceSquared float64
	}{p, p.DistanceSquaredTo(q)})
}

func handleBench(c *cli.Context) error {
	var points []kdtree.Point
	var err error
	if c.NArg() > 0 {
		points, err = pointfile.ReadFile(c.Args().Get(0))
		if err != nil {
			return err
		}
	} else {
		points = pointfile.Generate(rand.New(rand.NewSource(cfg.Seed)), cfg.Points)
	}
	rep, err := bench.Run(points, bench.Options{
		Seed:      cfg.Seed,
		Queries:   cfg.Queries,
		RangeSize: cfg.RangeSize,
		BulkLoad:  cfg.BulkLoad || c.Bool("bulk"),
	})
	if err != nil {
		return err
	}
	b, err := jsonutil.MarshalCompactPretty(rep, !c.GlobalBool("no-color"))
	if err != nil {
		return err
	}
	os.Stdout.Write(b)
	if rep.Mismatches > 0 {
		return cli.NewExitError(fmt.Sprintf("%d queries disagreed", rep.Mismatches), 2)
	}
	return nil
}

func handleDraw(c *cli.Context) error {
	if c.NArg() != 2 {
		return errors.New("give a point file and an output file")
	}
	tr, err := loadTree(c.Args().Get(0))
	if err != nil {
		return err
	}
	f, err := os.Create(c.Args().Get(1))
	if err != nil {
		return err
	}
	defer f.Close()
	if err = draw.Encode(f, tr, cfg.Draw.Size, cfg.Draw.PointRadius); err != nil {
		return err
	}
	lg.Infof("drew %d points to %s", tr.Size(), f.Name())
	return f.Close()
}

func loadTree(name string) (*kdtree.Tree, error) {
	points, err := pointfile.ReadFile(name)
	if err != nil {
		return nil, err
	}
	if cfg.BulkLoad {
		return kdtree.BulkLoad(points, kdtree.UnitSquare)
	}
	tr := kdtree.New()
	for _, p := range points {
		if err = tr.Insert(p); err != nil {
			return nil, err
		}
	}
	lg.Debugf("loaded %d points from %s, height %d", tr.Size(), name, tr.Height())
	return tr, nil
}

func parseFloats(args []string) ([]float64, error) {
	v := make([]float64, len(args))
	for i, s := range args {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return nil, err
		}
		v[i] = f
	}
	return v, nil
}

func printJSON(c *cli.Context, v any) error {
	b, err := jsonutil.MarshalPretty(v, !c.GlobalBool("no-color"))
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}
