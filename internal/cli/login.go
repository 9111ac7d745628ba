package cli

import (
	"github.com/mrlokans/learning/internal/config"
	"github.com/mrlokans/learning/internal/entities"
)

// LoginCommand checks credentials and, on success, shows the course list
// the way a client would right after logging in.
type LoginCommand struct {
	dbOptions
	Email    string
	Password string
}

func NewLoginCommand(cfg *config.Config) *LoginCommand {
	return &LoginCommand{dbOptions: newDBOptions(cfg)}
}

func (cmd *LoginCommand) ParseFlags(args []string) error {
	fs := newFlagSet("login", "login -email <email> -password <password>",
		"login -email ivan@example.com -password secret")
	cmd.register(fs)
	fs.StringVar(&cmd.Email, "email", "", "Email address")
	fs.StringVar(&cmd.Password, "password", "", "Password")
	return fs.Parse(args)
}

func (cmd *LoginCommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	user, err := app.Accounts.Authenticate(cmd.Email, cmd.Password)
	if err != nil {
		app.Audit.LogAuth(entities.AuditEventLogin, nil, "", "cli", err)
		return err
	}
	app.Audit.LogAuth(entities.AuditEventLogin, &user.ID, "", "cli", nil)
	cmd.printf("Welcome, %s %s (%s)\n\n", user.FirstName, user.LastName, user.Role)

	courses, err := app.Catalog.ListCourses()
	if err != nil {
		return err
	}
	cmd.printList("Courses", courses)
	return nil
}
