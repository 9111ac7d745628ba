package cli

import (
	"github.com/mrlokans/learning/internal/config"
)

// InitCommand creates the database file and any missing tables.
type InitCommand struct {
	dbOptions
}

func NewInitCommand(cfg *config.Config) *InitCommand {
	return &InitCommand{dbOptions: newDBOptions(cfg)}
}

func (cmd *InitCommand) ParseFlags(args []string) error {
	fs := newFlagSet("init", "init [options]", "init -db ./learning.db")
	cmd.register(fs)
	return fs.Parse(args)
}

func (cmd *InitCommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	n, err := app.Accounts.CountUsers()
	if err != nil {
		return err
	}
	cmd.printf("Database ready at %s (%d users)\n", cmd.DatabasePath, n)
	return nil
}
