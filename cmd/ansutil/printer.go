package main

import (
	"bufio"
	"fmt"
	"os"
	"sync"
)

var printerMutex sync.Mutex

// printer is a buffered, concurrency-safe stderr writer, the same
// shape as Kanzi's own Printer (required once batch mode runs workers
// concurrently): order between lines from different goroutines isn't
// guaranteed, but no two writes interleave mid-line.
type printer struct {
	w       *bufio.Writer
	verbose bool
}

func newPrinter(verbose bool) *printer {
	return &printer{w: bufio.NewWriter(os.Stderr), verbose: verbose}
}

// Println writes msg unconditionally (errors, the final summary line).
func (this *printer) Println(msg string) {
	printerMutex.Lock()
	defer printerMutex.Unlock()

	if n, _ := this.w.Write([]byte(msg + "\n")); n > 0 {
		_ = this.w.Flush()
	}
}

// Verbosef writes a formatted progress line only when verbose is set.
func (this *printer) Verbosef(format string, args ...any) {
	if !this.verbose {
		return
	}

	this.Println(fmt.Sprintf(format, args...))
}
