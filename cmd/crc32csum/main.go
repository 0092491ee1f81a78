// Command crc32csum prints CRC32C checksums of files.
//
// With no FILE, or when FILE is -, standard input is read.
//
//	crc32csum [--masked] [--parallel=N] [FILE...]
//	crc32csum --impl
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/alecthomas/kong"
	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/crc32c"
)

type cli struct {
	Files    []string `arg:"" optional:"" help:"Files to checksum (- for stdin)"`
	Masked   bool     `help:"Print the LevelDB/RocksDB masked form of each checksum" env:"CRC32C_MASKED"`
	Parallel int      `help:"Number of files checksummed concurrently" default:"4" env:"CRC32C_PARALLEL"`
	Impl     bool     `help:"Print the selected implementation and exit"`
	Verbose  bool     `short:"v" help:"Enable debug logging"`
	JSON     bool     `help:"Log in JSON format"`
}

type result struct {
	name string
	size int64
	crc  uint32
}

func main() {
	var params cli
	kctx := kong.Parse(&params,
		kong.Name("crc32csum"),
		kong.Description("Print CRC32C (Castagnoli) checksums."),
	)

	kctx.FatalIfErrorf(run(context.Background(), params, os.Stdin, os.Stdout))
}

func newLogger(params cli) *crc32c.Logger {
	level := slog.LevelWarn
	if params.Verbose {
		level = slog.LevelDebug
	}
	if params.JSON {
		return crc32c.NewJSONLogger(level)
	}
	return crc32c.NewTextLogger(level)
}

func run(ctx context.Context, params cli, stdin io.Reader, stdout io.Writer) error {
	logger := newLogger(params)
	info := crc32c.Implementation()
	logger.LogImplementation(ctx, info)

	if params.Impl {
		_, err := fmt.Fprintf(stdout, "impl=%s hardware=%t overridden=%t\n", info.Impl, info.Hardware, info.Overridden)
		return err
	}

	files := params.Files
	if len(files) == 0 {
		files = []string{"-"}
	}

	metrics := &crc32c.BasicMetricsCollector{}
	results := make([]result, len(files))

	// Standard input can only be drained once, so it is hashed up front
	// and every "-" argument reports the same sum.
	var stdinResult result
	for _, name := range files {
		if name == "-" {
			r, err := checksumInput(ctx, logger, metrics, name, stdin)
			if err != nil {
				return err
			}
			stdinResult = r
			break
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(params.Parallel, 1))

	for i, name := range files {
		if name == "-" {
			results[i] = stdinResult
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := checksumInput(gctx, logger, metrics, name, stdin)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.LogStats(ctx, metrics.GetStats())

	for _, r := range results {
		crc := r.crc
		if params.Masked {
			crc = crc32c.Mask(crc)
		}
		if _, err := fmt.Fprintf(stdout, "%08x  %s\n", crc, r.name); err != nil {
			return err
		}
	}
	return nil
}

func checksumInput(ctx context.Context, logger *crc32c.Logger, metrics crc32c.MetricsCollector, name string, stdin io.Reader) (result, error) {
	start := time.Now()
	size, crc, err := checksumFile(name, stdin)
	logger.WithName(name).LogChecksum(ctx, size, crc, err)
	if err != nil {
		return result{}, fmt.Errorf("%s: %w", name, err)
	}
	metrics.RecordChecksum(int(size), time.Since(start))
	return result{name: name, size: size, crc: crc}, nil
}

func checksumFile(name string, stdin io.Reader) (int64, uint32, error) {
	var src io.Reader = stdin
	if name != "-" {
		f, err := os.Open(name)
		if err != nil {
			return 0, 0, err
		}
		defer f.Close()
		src = f
	}

	h := crc32c.New()
	n, err := io.Copy(h, src)
	if err != nil {
		return n, 0, err
	}
	return n, h.Sum32(), nil
}
