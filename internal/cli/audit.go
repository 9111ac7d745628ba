package cli

import (
	"fmt"
	"time"

	"github.com/mrlokans/learning/internal/config"
	"github.com/mrlokans/learning/internal/entities"
)

// AuditCommand prints recent account activity and optionally prunes old
// events.
type AuditCommand struct {
	dbOptions
	Type      string
	Limit     int
	Retention time.Duration
}

func NewAuditCommand(cfg *config.Config) *AuditCommand {
	return &AuditCommand{dbOptions: newDBOptions(cfg)}
}

func (cmd *AuditCommand) ParseFlags(args []string) error {
	fs := newFlagSet("audit", "audit [-type login] [-limit 20] [-prune 720h]",
		"audit -type login",
		"audit -prune 720h")
	cmd.register(fs)
	fs.StringVar(&cmd.Type, "type", "", "Only show events of this type (register, login, logout, seed)")
	fs.IntVar(&cmd.Limit, "limit", 20, "Maximum number of events to show")
	fs.DurationVar(&cmd.Retention, "prune", 0, "Delete events older than this before listing")

	if err := fs.Parse(args); err != nil {
		return err
	}
	switch entities.AuditEventType(cmd.Type) {
	case "", entities.AuditEventRegister, entities.AuditEventLogin, entities.AuditEventLogout, entities.AuditEventSeed:
		return nil
	default:
		return fmt.Errorf("unknown event type %q", cmd.Type)
	}
}

func (cmd *AuditCommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	if cmd.Retention > 0 {
		n, err := app.Audit.DeleteOldEvents(cmd.Retention)
		if err != nil {
			return err
		}
		cmd.printf("Pruned %d events older than %s\n\n", n, cmd.Retention)
	}

	events, err := app.Audit.Recent(entities.AuditEventType(cmd.Type), cmd.Limit)
	if err != nil {
		return err
	}

	cmd.printf("Events (%d)\n", len(events))
	for _, e := range events {
		user := "-"
		if e.UserID != nil {
			user = fmt.Sprintf("user %d", *e.UserID)
		}
		cmd.printf("  %s  %-8s %-7s %s", e.CreatedAt.Format(time.RFC3339), e.EventType, e.Status, user)
		if e.Description != "" {
			cmd.printf("  %s", e.Description)
		}
		if e.ErrorMsg != "" {
			cmd.printf("  error: %s", e.ErrorMsg)
		}
		cmd.printf("\n")
	}
	return nil
}
