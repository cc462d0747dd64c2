package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sync"

	ans "github.com/anscore/ansgo"
	"github.com/anscore/ansgo/coder"
	"github.com/anscore/ansgo/driver"
	"github.com/anscore/ansgo/model"
	"github.com/anscore/ansgo/payload"
)

// runBatch encodes each input file independently and in parallel,
// each to <file>.ans. The worker pool shape (bounded semaphore +
// sync.WaitGroup, an indexed results slice so goroutine completion
// order doesn't matter) is grounded on ha1tch-unz/pkg/ans's
// CompressParallel. Unlike that function, which splits one input into
// chunks of a single interleaved stream, each worker here owns an
// entirely independent file with its own model, state and digit
// stack: these are independent encode passes running concurrently,
// never a single stream interleaved across multiple coder states.
func runBatch(args []string) int {
	fs := flag.NewFlagSet("batch", flag.ExitOnError)
	variant := fs.String("variant", "rans", "coder variant: rans or tans")
	b := fs.Uint64("b", 2, "digit base for the side stream")
	l := fs.Uint64("l", 1, "lower-bound multiplier of the state interval")
	jobs := fs.Int("jobs", runtime.GOMAXPROCS(0), "maximum concurrent files")
	verbose := fs.Bool("verbose", false, "print progress to stderr")
	fs.Parse(args)

	files := fs.Args()

	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "batch: need at least one <file>")
		return 1
	}

	log := newPrinter(*verbose)
	kind, err := parseKind(*variant)

	if err != nil {
		log.Println("batch: " + err.Error())
		return 1
	}

	if *jobs < 1 {
		*jobs = 1
	}

	errs := make([]error, len(files))
	var wg sync.WaitGroup
	sem := make(chan struct{}, *jobs)

	for i, path := range files {
		wg.Add(1)

		go func(idx int, path string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			errs[idx] = batchEncodeOne(path, kind, *b, *l, log)
		}(i, path)
	}

	wg.Wait()
	code := 0

	for i, e := range errs {
		if e != nil {
			log.Println(fmt.Sprintf("batch: %s: %v", files[i], e))
			code = 1
		}
	}

	return code
}

func batchEncodeOne(path string, kind coder.Kind, b, l uint64, log *printer) error {
	input, err := os.ReadFile(path)

	if err != nil {
		return err
	}

	freqs, err := model.FromHistogram(input)

	if err != nil {
		return err
	}

	v, err := coder.New(coder.Config{Variant: kind, B: b, L: l, Model: freqs})

	if err != nil {
		return err
	}

	symbols := make([]ans.Symbol, len(input))

	for i, byt := range input {
		symbols[i] = ans.Symbol(byt)
	}

	digits, finalState, err := driver.Encode(symbols, v, b, l)

	if err != nil {
		return err
	}

	p := &payload.Payload{
		Variant:    kind,
		B:          b,
		L:          l,
		N:          uint64(len(symbols)),
		FinalState: finalState,
		Digits:     digits.Digits(),
	}

	out, err := payload.Encode(p)

	if err != nil {
		return err
	}

	out = appendModelTable(out, freqs)
	log.Verbosef("batch: %s -> %s.ans (%d -> %d bytes)", path, path, len(input), len(out))
	return os.WriteFile(path+".ans", out, 0o644)
}
