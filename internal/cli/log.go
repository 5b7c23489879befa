package cli

import (
	"io"

	"github.com/alecthomas/kong"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

type logConfig struct {
	Level  string `default:"info"   enum:"debug,info,warn,error,none" help:"Minimum level of log lines (${enum})."`
	Format string `default:"logfmt" enum:"logfmt,json"                help:"Log line format (${enum})."`
}

func (logConfig) group() kong.Group {
	return kong.Group{
		Key:         "log",
		Title:       "Logging flags",
		Description: "Structured log output on stderr.",
	}
}

func (c logConfig) logger(w io.Writer) log.Logger {
	var logger log.Logger
	if c.Format == "json" {
		logger = log.NewJSONLogger(log.NewSyncWriter(w))
	} else {
		logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
	}
	return level.NewFilter(logger, levelOption(c.Level))
}

func levelOption(lvl string) level.Option {
	switch lvl {
	case "debug":
		return level.AllowDebug()
	case "warn":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	case "none":
		return level.AllowNone()
	}
	return level.AllowInfo()
}
