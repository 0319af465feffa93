// main.go implements a command-line benchmark harness over the 1-D and
// 2-D transform plans.

package main

import (
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/urfave/cli"

	jtransforms "github.com/tlecomte/jtransforms-go"
	"github.com/tlecomte/jtransforms-go/config"
	"github.com/tlecomte/jtransforms-go/internal/pool"
)

// VERSION is injected by build flags.
var VERSION = "SELFBUILD"

func main() {
	app := cli.NewApp()
	app.Name = "fftbench"
	app.Usage = "benchmark the 1-D and 2-D FFT plans"
	app.Version = VERSION
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "mode",
			Value: "1d",
			Usage: "1d or 2d",
		},
		cli.IntFlag{
			Name:  "n",
			Value: 1 << 16,
			Usage: "transform length (1-D mode)",
		},
		cli.IntFlag{
			Name:  "rows",
			Value: 512,
			Usage: "row count (2-D mode)",
		},
		cli.IntFlag{
			Name:  "cols",
			Value: 512,
			Usage: "column count (2-D mode)",
		},
		cli.IntFlag{
			Name:  "workers",
			Value: 0,
			Usage: "worker count (0 = hardware parallelism)",
		},
		cli.IntFlag{
			Name:  "iterations",
			Value: 10,
			Usage: "number of timed iterations",
		},
		cli.BoolFlag{
			Name:  "real",
			Usage: "ignored: both modes time the complex forward transform",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("fftbench: %v", err)
	}
}

func run(c *cli.Context) error {
	cfg := config.New()
	if w := c.Int("workers"); w > 0 {
		cfg.SetWorkerCount(w)
	}
	workers := pool.New(cfg.WorkerCount())
	defer workers.Close()

	iterations := c.Int("iterations")
	if iterations <= 0 {
		return errors.New("fftbench: iterations must be > 0")
	}

	switch c.String("mode") {
	case "1d":
		return runBench1D(c, iterations)
	case "2d":
		return runBench2D(c, cfg, workers, iterations)
	default:
		return errors.Errorf("fftbench: unknown mode %q (want 1d or 2d)", c.String("mode"))
	}
}

func runBench1D(c *cli.Context, iterations int) error {
	n := c.Int("n")
	plan, err := jtransforms.New1D(n)
	if err != nil {
		return errors.Wrap(err, "fftbench: building 1-D plan")
	}

	buf := make([]float64, 2*n)
	for i := range buf {
		buf[i] = rand.Float64()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := plan.ComplexForward(buf); err != nil {
			return errors.Wrap(err, "fftbench: complex forward")
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("1d n=%d algorithm=%s iterations=%d total=%s per-call=%s\n",
		n, plan.Algorithm(), iterations, elapsed, elapsed/time.Duration(iterations))
	return nil
}

func runBench2D(c *cli.Context, cfg *config.Config, workers *pool.Pool, iterations int) error {
	rows, cols := c.Int("rows"), c.Int("cols")
	plan, err := jtransforms.New2D(rows, cols, workers, cfg)
	if err != nil {
		return errors.Wrap(err, "fftbench: building 2-D plan")
	}

	buf := make([]float64, 2*rows*cols)
	for i := range buf {
		buf[i] = rand.Float64()
	}

	start := time.Now()
	for i := 0; i < iterations; i++ {
		if err := plan.ComplexForward2D(buf); err != nil {
			return errors.Wrap(err, "fftbench: complex forward 2d")
		}
	}
	elapsed := time.Since(start)

	fmt.Printf("2d rows=%d cols=%d workers=%d iterations=%d total=%s per-call=%s\n",
		rows, cols, workers.Size(), iterations, elapsed, elapsed/time.Duration(iterations))
	return nil
}
