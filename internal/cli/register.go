package cli

import (
	"github.com/mrlokans/learning/internal/config"
	"github.com/mrlokans/learning/internal/entities"
)

// RegisterCommand creates a student account.
type RegisterCommand struct {
	dbOptions
	FirstName string
	LastName  string
	Email     string
	Password  string
}

func NewRegisterCommand(cfg *config.Config) *RegisterCommand {
	return &RegisterCommand{dbOptions: newDBOptions(cfg)}
}

// ParseFlags leaves required-field checks to the account service so the
// CLI reports exactly what the API would.
func (cmd *RegisterCommand) ParseFlags(args []string) error {
	fs := newFlagSet("register", "register -first <name> -last <name> -email <email> -password <password>",
		"register -first Ivan -last Petrov -email ivan@example.com -password secret")
	cmd.register(fs)
	fs.StringVar(&cmd.FirstName, "first", "", "First name")
	fs.StringVar(&cmd.LastName, "last", "", "Last name")
	fs.StringVar(&cmd.Email, "email", "", "Email address (must be unique)")
	fs.StringVar(&cmd.Password, "password", "", "Password")
	return fs.Parse(args)
}

func (cmd *RegisterCommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	id, err := app.Accounts.Register(cmd.FirstName, cmd.LastName, cmd.Email, cmd.Password)
	if err != nil {
		app.Audit.LogAuth(entities.AuditEventRegister, nil, "", "cli", err)
		return err
	}
	app.Audit.LogAuth(entities.AuditEventRegister, &id, "", "cli", nil)

	cmd.printf("Registered %s %s as student (id %d)\n", cmd.FirstName, cmd.LastName, id)
	return nil
}
