package dbglog

import (
	"fmt"
	"os"
)

// Sink receives every formatted line the logger emits.
type Sink func(line string)

// StdoutSink writes the line to standard output, followed by a newline.
func StdoutSink(line string) {
	fmt.Fprintln(os.Stdout, line)
}
