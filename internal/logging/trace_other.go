//go:build !windows

package logging

import (
	"io"
	"os"
)

func traceWriter() io.Writer { return os.Stderr }
