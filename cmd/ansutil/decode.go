package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/anscore/ansgo/bitstream"
	"github.com/anscore/ansgo/coder"
	"github.com/anscore/ansgo/driver"
	"github.com/anscore/ansgo/payload"
)

func runDecode(args []string) int {
	fs := flag.NewFlagSet("decode", flag.ExitOnError)
	verbose := fs.Bool("verbose", false, "print progress to stderr")
	fs.Parse(args)

	rest := fs.Args()

	if len(rest) != 2 {
		fmt.Fprintln(os.Stderr, "decode: need exactly <input> <output>")
		return 1
	}

	log := newPrinter(*verbose)
	data, err := os.ReadFile(rest[0])

	if err != nil {
		log.Println("decode: " + err.Error())
		return 1
	}

	payloadBytes, freqs, err := splitModelTable(data)

	if err != nil {
		log.Println("decode: " + err.Error())
		return 1
	}

	p, err := payload.Decode(payloadBytes)

	if err != nil {
		log.Println("decode: " + err.Error())
		return 1
	}

	log.Verbosef("decode: variant=%s b=%d l=%d n=%d digits=%d", p.Variant, p.B, p.L, p.N, len(p.Digits))

	v, err := coder.New(coder.Config{Variant: p.Variant, B: p.B, L: p.L, Model: freqs})

	if err != nil {
		log.Println("decode: " + err.Error())
		return 1
	}

	digits := bitstream.FromDigits(p.Digits)
	symbols, err := driver.Decode(digits, p.FinalState, v, p.B, p.L, p.N)

	if err != nil {
		log.Println("decode: " + err.Error())
		return 1
	}

	// driver.Decode produces symbols in the reverse of their original
	// encode order — reverse here to recover input order.
	out := make([]byte, len(symbols))

	for i, s := range symbols {
		out[len(symbols)-1-i] = byte(s)
	}

	if err := os.WriteFile(rest[1], out, 0o644); err != nil {
		log.Println("decode: " + err.Error())
		return 1
	}

	log.Verbosef("decode: wrote %d bytes", len(out))
	return 0
}
