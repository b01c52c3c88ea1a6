// Package logging configures the global zerolog logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// DebugLogName is the trace file written next to the executable with --debug.
const DebugLogName = "letszoom_debug.log"

const timeFormat = "15:04:05.000"

// Options selects the log sinks.
type Options struct {
	// Debug lowers the level to debug.
	Debug bool
	// FilePath, when set, receives a copy of every entry. The file is
	// truncated on open.
	FilePath string
}

// Setup points the global logger at the debugger trace channel, plus a file
// when requested. The returned function closes the file.
func Setup(opts Options) (func(), error) {
	level := zerolog.InfoLevel
	if opts.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	writers := []io.Writer{
		zerolog.ConsoleWriter{Out: traceWriter(), NoColor: true, TimeFormat: timeFormat},
	}

	closeFn := func() {}
	if opts.FilePath != "" {
		f, err := os.OpenFile(opts.FilePath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return closeFn, fmt.Errorf("open debug log: %w", err)
		}
		writers = append(writers, zerolog.ConsoleWriter{Out: f, NoColor: true, TimeFormat: timeFormat})
		closeFn = func() { _ = f.Close() }
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(writers...)).With().Timestamp().Logger()
	return closeFn, nil
}

// DebugLogPath returns DebugLogName in the executable's directory.
func DebugLogPath() (string, error) {
	exePath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("resolve executable: %w", err)
	}
	return filepath.Join(filepath.Dir(exePath), DebugLogName), nil
}
