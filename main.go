package main

import (
	"fmt"
	"os"

	"github.com/mrlokans/learning/internal/cli"
	"github.com/mrlokans/learning/internal/config"
	"github.com/mrlokans/learning/internal/entrypoint"
)

// Version information - set at build time via ldflags
var (
	Version = "dev"
	Commit  = "unknown"
)

type command interface {
	ParseFlags(args []string) error
	Run() error
}

func main() {
	cfg := config.NewConfig()

	// If no arguments or "serve" command, run the HTTP server
	if len(os.Args) < 2 || os.Args[1] == "serve" {
		if err := entrypoint.Run(cfg, Version); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	name := os.Args[1]
	args := os.Args[2:]

	var cmd command
	switch name {
	case "init":
		cmd = cli.NewInitCommand(cfg)
	case "seed":
		cmd = cli.NewSeedCommand(cfg)
	case "register":
		cmd = cli.NewRegisterCommand(cfg)
	case "login":
		cmd = cli.NewLoginCommand(cfg)
	case "browse":
		cmd = cli.NewBrowseCommand(cfg)
	case "search":
		cmd = cli.NewSearchCommand(cfg)
	case "audit":
		cmd = cli.NewAuditCommand(cfg)
	case "version":
		fmt.Printf("%s (%s)\n", Version, Commit)
		return
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", name)
		printUsage()
		os.Exit(1)
	}

	if err := cmd.ParseFlags(args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := cmd.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve      Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  init       Create the database and its tables\n")
	fmt.Fprintf(os.Stderr, "  seed       Load courses, modules, lessons and assignments from YAML\n")
	fmt.Fprintf(os.Stderr, "  register   Create a student account\n")
	fmt.Fprintf(os.Stderr, "  login      Check credentials and list the courses\n")
	fmt.Fprintf(os.Stderr, "  browse     List courses, or the children of a course, module or lesson\n")
	fmt.Fprintf(os.Stderr, "  search     Search the catalog by title\n")
	fmt.Fprintf(os.Stderr, "  audit      Show recent account activity\n")
	fmt.Fprintf(os.Stderr, "  version    Print the version\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}
