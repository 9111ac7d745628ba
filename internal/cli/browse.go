package cli

import (
	"github.com/mrlokans/learning/internal/config"
)

// BrowseCommand prints one level of the catalog: the children of the
// deepest parent given, or the course list when none is.
type BrowseCommand struct {
	dbOptions
	Course string
	Module string
	Lesson string
}

func NewBrowseCommand(cfg *config.Config) *BrowseCommand {
	return &BrowseCommand{dbOptions: newDBOptions(cfg)}
}

func (cmd *BrowseCommand) ParseFlags(args []string) error {
	fs := newFlagSet("browse", "browse [-course <title>] [-module <title>] [-lesson <title>]",
		"browse",
		`browse -course Algebra`,
		`browse -lesson Variables`)
	cmd.register(fs)
	fs.StringVar(&cmd.Course, "course", "", "List the modules of this course")
	fs.StringVar(&cmd.Module, "module", "", "List the lessons of this module")
	fs.StringVar(&cmd.Lesson, "lesson", "", "List the assignments and quizzes of this lesson")
	return fs.Parse(args)
}

func (cmd *BrowseCommand) Run() error {
	app, err := cmd.open()
	if err != nil {
		return err
	}
	defer app.Close()

	browser := app.Catalog
	switch {
	case cmd.Lesson != "":
		assignments, err := browser.ListAssignments(cmd.Lesson)
		if err != nil {
			return err
		}
		quizzes, err := browser.ListQuizzes(cmd.Lesson)
		if err != nil {
			return err
		}
		cmd.printList("Assignments of "+cmd.Lesson, assignments)
		cmd.printList("Quizzes of "+cmd.Lesson, quizzes)

	case cmd.Module != "":
		lessons, err := browser.ListLessons(cmd.Module)
		if err != nil {
			return err
		}
		cmd.printList("Lessons of "+cmd.Module, lessons)

	case cmd.Course != "":
		modules, err := browser.ListModules(cmd.Course)
		if err != nil {
			return err
		}
		cmd.printList("Modules of "+cmd.Course, modules)

	default:
		courses, err := browser.ListCourses()
		if err != nil {
			return err
		}
		cmd.printList("Courses", courses)
	}
	return nil
}
