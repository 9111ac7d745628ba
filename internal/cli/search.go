package cli

import (
	"encoding/json"

	"github.com/mrlokans/learning/internal/catalog"
	"github.com/mrlokans/learning/internal/config"
)

// SearchCommand runs a flat catalog search.
type SearchCommand struct {
	dbOptions
	Query catalog.Query
	JSON  bool
}

func NewSearchCommand(cfg *config.Config) *SearchCommand {
	return &SearchCommand{dbOptions: newDBOptions(cfg)}
}

func (cmd *SearchCommand) ParseFlags(args []string) error {
	fs := newFlagSet("search", "search [-course <title>] [-module <text>] [-lesson <text>] [-assignment <text>]",
		`search -module Intro`,
		`search -course Algebra -module Intro -json`)
	cmd.register(fs)
	fs.StringVar(&cmd.Query.Course, "course", "", "Exact course title")
	fs.StringVar(&cmd.Query.Module, "module", "", "Text contained in module titles (case-sensitive)")
	fs.StringVar(&cmd.Query.Lesson, "lesson", "", "Text contained in lesson titles (case-sensitive)")
	fs.StringVar(&cmd.Query.Assignment, "assignment", "", "Text contained in assignment titles (case-sensitive)")
	fs.BoolVar(&cmd.JSON, "json", false, "Print full records as JSON")
	return fs.Parse(args)
}

type searchRecord struct {
	Kind   string `json:"kind"`
	Record any    `json:"record"`
}

func (cmd *SearchCommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	records, err := app.Catalog.Search(cmd.Query)
	if err != nil {
		return err
	}

	if cmd.JSON {
		out := make([]searchRecord, 0, len(records))
		for _, r := range records {
			out = append(out, searchRecord{Kind: string(r.Kind()), Record: r})
		}
		enc := json.NewEncoder(cmd.Out)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	cmd.printf("Found %d records\n", len(records))
	for _, r := range records {
		cmd.printf("  %-10s %s\n", r.Kind(), r.RecordTitle())
	}
	return nil
}
