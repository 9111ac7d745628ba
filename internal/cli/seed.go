package cli

import (
	"fmt"

	"github.com/mrlokans/learning/internal/config"
	"github.com/mrlokans/learning/internal/seed"
)

// SeedCommand loads a YAML catalog fixture.
type SeedCommand struct {
	dbOptions
	File   string
	DryRun bool
}

func NewSeedCommand(cfg *config.Config) *SeedCommand {
	return &SeedCommand{dbOptions: newDBOptions(cfg), File: cfg.Seed.File}
}

func (cmd *SeedCommand) ParseFlags(args []string) error {
	fs := newFlagSet("seed", "seed [-file fixtures.yaml] [options]",
		"seed -file fixtures/catalog.yaml",
		"seed -file fixtures/catalog.yaml -dry-run")
	cmd.register(fs)
	fs.StringVar(&cmd.File, "file", cmd.File, "Path to the YAML fixture")
	fs.BoolVar(&cmd.DryRun, "dry-run", false, "Validate the fixture without writing anything")

	if err := fs.Parse(args); err != nil {
		return err
	}
	if cmd.File == "" {
		return fmt.Errorf("required flag -file not provided")
	}
	return nil
}

func (cmd *SeedCommand) Run() error {
	fixture, err := seed.ParseFile(cmd.File)
	if err != nil {
		return err
	}

	if cmd.DryRun {
		if err := fixture.Validate(); err != nil {
			return err
		}
		cmd.printf("Fixture %s is valid: %d teachers, %d courses\n", cmd.File, len(fixture.Teachers), len(fixture.Courses))
		return nil
	}

	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	res, err := seed.NewLoader(app.DB.DB, app.Log).Load(fixture)
	app.Audit.LogSeed(cmd.File+": "+res.String(), err)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", cmd.File, err)
	}

	cmd.printf("Loaded %s\n  %s\n", cmd.File, res)
	return nil
}
