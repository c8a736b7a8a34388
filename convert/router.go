package convert

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds parameters for a Router.
type Config struct {
	// ResultsDir is where <test>.csv files are created.
	ResultsDir string
}

// Router reads benchmark output and dispatches each line by its kind.
type Router struct {
	cfg    Config
	logger *slog.Logger
}

// NewRouter creates a Router writing its CSV files under cfg.ResultsDir.
// A nil logger discards all log output.
func NewRouter(cfg Config, logger *slog.Logger) *Router {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Router{cfg: cfg, logger: logger}
}

// run is the state of a single pass over the input.
type run struct {
	*Router
	out     io.Writer
	sink    *Sink
	logger  *slog.Logger
	summary Summary
}

// Run consumes in until end of input. Iteration records go to CSV files,
// and every line not consumed by a handler is written to out.
func (r *Router) Run(ctx context.Context, in io.Reader, out io.Writer) (*Summary, error) {
	if err := os.MkdirAll(r.cfg.ResultsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create results dir: %w", err)
	}

	st := &run{Router: r, out: out, logger: r.logger}
	err := st.loop(ctx, bufio.NewReader(in))

	if st.sink != nil {
		// Keep the rows that made it.
		if err == nil {
			st.logger.Warn("input ended before test completed")
		} else {
			st.logger.Warn("closing unfinished test after error",
				slog.String("error", err.Error()),
			)
		}
		if cerr := st.closeSink(false); cerr != nil && err == nil {
			err = cerr
		}
	}

	return &st.summary, err
}

func (st *run) loop(ctx context.Context, br *bufio.Reader) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read input: %w", err)
		}

		eof := err != nil
		if eof && line == "" {
			return nil
		}

		if herr := st.handle(strings.TrimSuffix(line, "\n")); herr != nil {
			return herr
		}

		if eof {
			return nil
		}
	}
}

func (st *run) handle(line string) error {
	kind, name := Classify(line)

	switch kind {
	case KindStart:
		return st.startTest(name)
	case KindComplete:
		return st.completeTest()
	case KindIteration:
		if st.sink != nil {
			return st.recordIteration(line)
		}
	}

	return st.passthrough(line)
}

func (st *run) startTest(name string) error {
	if st.sink != nil {
		st.logger.Warn("test started before previous test completed",
			slog.String("next", name),
		)
		if err := st.closeSink(false); err != nil {
			return err
		}
	}

	sink, err := OpenSink(st.cfg.ResultsDir, name)
	if err != nil {
		return fmt.Errorf("start test %q: %w", name, err)
	}

	st.sink = sink
	st.logger = st.Router.logger.With(slog.String("test", name))
	st.logger.Debug("test started", slog.String("path", sink.Path()))

	return nil
}

func (st *run) completeTest() error {
	if st.sink == nil {
		return nil
	}

	return st.closeSink(true)
}

func (st *run) recordIteration(line string) error {
	rec, err := ParseIteration(line)
	if err != nil {
		var perr *ParseError
		if errors.As(err, &perr) {
			st.logger.Warn("skipping iteration line",
				slog.String("line", perr.Line),
				slog.String("reason", perr.Reason),
			)
			st.summary.Skipped++

			return nil
		}

		return err
	}

	return st.sink.Write(rec)
}

func (st *run) passthrough(line string) error {
	if _, err := io.WriteString(st.out, line+"\n"); err != nil {
		return fmt.Errorf("write passthrough: %w", err)
	}

	st.summary.Passthrough++

	return nil
}

func (st *run) closeSink(completed bool) error {
	sink := st.sink
	st.sink = nil
	st.summary.add(sink, completed)

	st.logger.Info("test finished",
		slog.String("path", sink.Path()),
		slog.Int("rows", sink.Rows()),
		slog.Bool("completed", completed),
	)
	st.logger = st.Router.logger

	return sink.Close()
}
