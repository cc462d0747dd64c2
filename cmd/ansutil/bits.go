package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	ans "github.com/anscore/ansgo"
	"github.com/anscore/ansgo/bitstream"
	"github.com/anscore/ansgo/coder"
	"github.com/anscore/ansgo/driver"
)

// runBits is a round-trip demonstration of the uABS coder: it encodes
// a sequence of 0/1 symbols given on the command line and immediately
// decodes them back, printing the decoded sequence (the final state
// and digits are printed only with -verbose). uABS codes a single bit per
// symbol off a fixed probability p = pnum/pden, which doesn't fit
// ansutil's byte-oriented encode/decode/batch file format, so it gets
// its own small subcommand instead of payload.Encode framing.
func runBits(args []string) int {
	fs := flag.NewFlagSet("bits", flag.ExitOnError)
	pNum := fs.Uint64("pnum", 1, "numerator of p, the probability of symbol 1")
	pDen := fs.Uint64("pden", 2, "denominator of p")
	b := fs.Uint64("b", 2, "digit base for the side stream")
	l := fs.Uint64("l", 1, "lower-bound multiplier of the state interval")
	verbose := fs.Bool("verbose", false, "print progress to stderr")
	fs.Parse(args)

	rest := fs.Args()

	if len(rest) == 0 {
		fmt.Fprintln(os.Stderr, "bits: need at least one 0/1 argument")
		return 1
	}

	log := newPrinter(*verbose)
	symbols := make([]ans.Symbol, len(rest))

	for i, arg := range rest {
		v, err := strconv.ParseUint(arg, 10, 8)

		if err != nil || (v != 0 && v != 1) {
			log.Println(fmt.Sprintf("bits: argument %q is not 0 or 1", arg))
			return 1
		}

		symbols[i] = ans.Symbol(v)
	}

	v, err := coder.NewUABS(*pNum, *pDen)

	if err != nil {
		log.Println("bits: " + err.Error())
		return 1
	}

	log.Verbosef("bits: encoding %d bits, p=%d/%d", len(symbols), *pNum, *pDen)

	digits, finalState, err := driver.Encode(symbols, v, *b, *l)

	if err != nil {
		log.Println("bits: " + err.Error())
		return 1
	}

	log.Verbosef("bits: final_state=%d digits=%v", finalState, digits.Digits())

	decoded, err := driver.Decode(bitstream.FromDigits(digits.Digits()), finalState, v, *b, *l, uint64(len(symbols)))

	if err != nil {
		log.Println("bits: " + err.Error())
		return 1
	}

	out := make([]ans.Symbol, len(decoded))

	for i, s := range decoded {
		out[len(decoded)-1-i] = s
	}

	fmt.Printf("%v\n", out)
	return 0
}
