// SPDX-License-Identifier: Apache-2.0

// arena-demo initialises a heap and runs one of the workloads against it,
// printing the free list to stdout as it changes.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"github.com/pkg/errors"

	arena "github.com/wundergraph/go-freelist-arena"
	"github.com/wundergraph/go-freelist-arena/internal/workload"
)

const (
	defaultHeapSize = 128

	seedSimple = -1
	seedFull   = -2
)

type config struct {
	heapSize int
	seed     int
}

// parseArgs reads the optional positional arguments [<total heap size>] [<seed>].
func parseArgs(args []string) (config, error) {
	cfg := config{heapSize: defaultHeapSize, seed: seedSimple}
	if len(args) > 2 {
		return cfg, errors.Errorf("expected at most 2 arguments, got %d", len(args))
	}

	var err error
	if len(args) >= 1 {
		if cfg.heapSize, err = strconv.Atoi(args[0]); err != nil {
			return cfg, errors.Wrap(err, "unable to parse total heap size value")
		}
	}
	if len(args) == 2 {
		if cfg.seed, err = strconv.Atoi(args[1]); err != nil {
			return cfg, errors.Wrap(err, "unable to parse seed value")
		}
	}
	return cfg, nil
}

func (c config) workloadName() string {
	switch c.seed {
	case seedSimple:
		return "simple"
	case seedFull:
		return "full"
	default:
		return "random"
	}
}

func run(args []string, stdout, stderr io.Writer) int {
	logger := log.NewLogfmtLogger(stderr)

	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(), "Usage: %s [<total heap size>] [<seed>]\n", fs.Name())
	}
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	cfg, err := parseArgs(fs.Args())
	if err != nil {
		fmt.Fprintf(stderr, "\nERROR: %v\n\n", err)
		fs.Usage()
		return 1
	}

	h, err := arena.New(cfg.heapSize)
	if err != nil {
		level.Error(logger).Log("msg", "heap initialization failed", "size", cfg.heapSize, "err", err)
		return 1
	}
	defer h.Release()

	level.Info(logger).Log("msg", "heap initialized", "size", humanize.IBytes(uint64(h.Cap())), "workload", cfg.workloadName())

	r := workload.NewRunner(h, stdout)
	r.PrintFreeList()

	switch cfg.seed {
	case seedSimple:
		err = r.Simple()
	case seedFull:
		err = r.Full(cfg.heapSize)
	default:
		err = r.Random(int64(cfg.seed))
	}
	if err != nil {
		level.Error(logger).Log("msg", "failed to write free list", "err", err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
