// Command ansutil is a small demonstration CLI for the ANS codec core,
// grounded on Kanzi's app.BlockCompressor/BlockDecompressor/Kanzi
// command shape: one subcommand per mode, stdlib flag parsing, a
// verbose-gated stderr printer. It is not part of the core — the core
// (model, rational, coder, driver, bitstream, payload) never imports
// this package.
package main

import (
	"fmt"
	"os"
)

const usage = `ansutil - demonstration CLI for the ans codec core

Usage:
  ansutil encode -variant=rans|tans -b=2 -l=1 [-verbose] <input> <output>
  ansutil encode -config=config.toml [-verbose]
  ansutil decode [-verbose] <input> <output>
  ansutil batch  -variant=rans|tans -b=2 -l=1 [-jobs=N] [-verbose] <file>...
  ansutil bits   -pnum=1 -pden=2 [-verbose] <bit> [<bit> ...]
`

func main() {
	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(1)
	}

	mode := os.Args[1]
	args := os.Args[2:]
	var code int

	switch mode {
	case "encode":
		code = runEncode(args)
	case "decode":
		code = runDecode(args)
	case "batch":
		code = runBatch(args)
	case "bits":
		code = runBits(args)
	case "-h", "--help", "help":
		fmt.Print(usage)
		code = 0
	default:
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n\n%s", mode, usage)
		code = 1
	}

	os.Exit(code)
}
