package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mrlokans/learning/internal/config"
	"github.com/mrlokans/learning/internal/entrypoint"
	"github.com/mrlokans/learning/internal/logger"
)

// dbOptions are the flags every database-backed command shares.
type dbOptions struct {
	DatabasePath string
	LogLevel     string
	Verbose      bool
	Out          io.Writer
}

func newDBOptions(cfg *config.Config) dbOptions {
	return dbOptions{
		DatabasePath: cfg.Database.Path,
		LogLevel:     cfg.Database.LogLevel,
		Out:          os.Stdout,
	}
}

func (o *dbOptions) register(fs *flag.FlagSet) {
	fs.StringVar(&o.DatabasePath, "db", o.DatabasePath, "Path to the SQLite database file")
	fs.BoolVar(&o.Verbose, "verbose", false, "Enable verbose logging")
}

// open builds the application against the configured database. Logging
// goes nowhere unless -verbose is set, so output stays readable.
func (o *dbOptions) open() (*entrypoint.App, error) {
	log := logger.NewNop()
	if o.Verbose {
		var err error
		if log, err = logger.New("dev"); err != nil {
			return nil, fmt.Errorf("failed to build logger: %w", err)
		}
	}
	return entrypoint.NewApp(o.DatabasePath, o.LogLevel, log)
}

// SetOutput redirects what the command prints.
func (o *dbOptions) SetOutput(w io.Writer) {
	o.Out = w
}

func (o *dbOptions) printf(format string, args ...any) {
	fmt.Fprintf(o.Out, format, args...)
}

func (o *dbOptions) printList(header string, items []string) {
	o.printf("%s (%d)\n", header, len(items))
	if len(items) == 0 {
		o.printf("  (none)\n")
		return
	}
	for i, item := range items {
		o.printf("  %d. %s\n", i+1, item)
	}
}

func newFlagSet(name, usage string, examples ...string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s\n\n", os.Args[0], usage)
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		if len(examples) > 0 {
			fmt.Fprintf(os.Stderr, "\nExamples:\n")
			for _, ex := range examples {
				fmt.Fprintf(os.Stderr, "  %s %s\n", os.Args[0], ex)
			}
		}
	}
	return fs
}
