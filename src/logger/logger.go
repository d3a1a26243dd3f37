package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const timeFormat = "15:04:05"

// Init sets up the global logger with a compact time format. When path is not empty the
// output also goes to that file, truncated on start. The returned function closes the file.
func Init(level, path string) (func() error, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: timeFormat}
	closeFn := func() error { return nil }
	if path != "" {
		logFile, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
		if err != nil {
			return nil, err
		}
		out = io.MultiWriter(out, zerolog.ConsoleWriter{Out: logFile, TimeFormat: timeFormat, NoColor: true})
		closeFn = logFile.Close
	}

	zerolog.SetGlobalLevel(lvl)
	log.Logger = New(out)
	return closeFn, nil
}

// New returns a timestamped logger writing to w.
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Logger()
}
