package main

import (
	"flag"
	"fmt"
	"os"

	ans "github.com/anscore/ansgo"
	"github.com/anscore/ansgo/coder"
	"github.com/anscore/ansgo/driver"
	"github.com/anscore/ansgo/model"
	"github.com/anscore/ansgo/payload"
)

func runEncode(args []string) int {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	variant := fs.String("variant", "rans", "coder variant: rans or tans")
	b := fs.Uint64("b", 2, "digit base for the side stream")
	l := fs.Uint64("l", 1, "lower-bound multiplier of the state interval")
	verbose := fs.Bool("verbose", false, "print progress to stderr")
	configPath := fs.String("config", "", "load variant/b/l/input/output from a TOML file instead of flags and arguments")
	fs.Parse(args)

	log := newPrinter(*verbose)

	variantName, bVal, lVal := *variant, *b, *l
	var inputPath, outputPath string

	if *configPath != "" {
		cfg, err := loadConfig(*configPath)

		if err != nil {
			log.Println("encode: " + err.Error())
			return 1
		}

		variantName, bVal, lVal = cfg.Variant, cfg.B, cfg.L
		inputPath, outputPath = cfg.Input, cfg.Output
	} else {
		rest := fs.Args()

		if len(rest) != 2 {
			fmt.Fprintln(os.Stderr, "encode: need exactly <input> <output>, or -config=<file>")
			return 1
		}

		inputPath, outputPath = rest[0], rest[1]
	}

	kind, err := parseKind(variantName)

	if err != nil {
		log.Println("encode: " + err.Error())
		return 1
	}

	input, err := os.ReadFile(inputPath)

	if err != nil {
		log.Println("encode: " + err.Error())
		return 1
	}

	freqs, err := model.FromHistogram(input)

	if err != nil {
		log.Println("encode: " + err.Error())
		return 1
	}

	log.Verbosef("encode: %d bytes, %d distinct symbols, variant=%s b=%d l=%d", len(input), freqs.Len(), kind, bVal, lVal)

	v, err := coder.New(coder.Config{Variant: kind, B: bVal, L: lVal, Model: freqs})

	if err != nil {
		log.Println("encode: " + err.Error())
		return 1
	}

	symbols := make([]ans.Symbol, len(input))

	for i, byt := range input {
		symbols[i] = ans.Symbol(byt)
	}

	digits, finalState, err := driver.Encode(symbols, v, bVal, lVal)

	if err != nil {
		log.Println("encode: " + err.Error())
		return 1
	}

	p := &payload.Payload{
		Variant:    kind,
		B:          bVal,
		L:          lVal,
		N:          uint64(len(symbols)),
		FinalState: finalState,
		Digits:     digits.Digits(),
	}

	out, err := payload.Encode(p)

	if err != nil {
		log.Println("encode: " + err.Error())
		return 1
	}

	out = appendModelTable(out, freqs)

	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		log.Println("encode: " + err.Error())
		return 1
	}

	log.Verbosef("encode: wrote %d bytes (%d digits, final_state=%d)", len(out), len(digits.Digits()), finalState)
	return 0
}
