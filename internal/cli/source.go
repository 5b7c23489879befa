package cli

import (
	"io"
	"os"

	"github.com/go-kit/log"
	"github.com/pkg/errors"

	"github.com/ZenToad/jsonez"
	"github.com/ZenToad/jsonez/report"
)

const stdinSource = "-"

// read returns the contents of the named file, or of stdin for "-".
func (e *Env) read(name string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if name == stdinSource {
		data, err = io.ReadAll(e.In)
	} else {
		data, err = os.ReadFile(name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", name)
	}
	return data, nil
}

// parse reads and parses the named file. Parse errors are logged and, when
// console is not nil, printed there as well.
func (e *Env) parse(name string, console io.Writer) (*jsonez.Node, []byte, error) {
	src, err := e.read(name)
	if err != nil {
		return nil, nil, err
	}

	r := report.Logger(log.With(e.Logger, "file", displayName(name)))
	if console != nil {
		r = report.Multi(report.Console(console, displayName(name)), r)
	}

	root, err := jsonez.Parse(src, jsonez.WithReporter(r))
	if err != nil {
		return nil, src, errors.Wrapf(err, "%s", displayName(name))
	}
	return root, src, nil
}

func displayName(name string) string {
	if name == stdinSource {
		return "<stdin>"
	}
	return name
}
