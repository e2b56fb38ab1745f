package main

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshuapare/pouchkit/dump"
	"github.com/joshuapare/pouchkit/internal/logger"
)

var version = "dev"

type options struct {
	debug        bool
	translations string
	path         string
}

func parseArgs(args []string) (options, error) {
	var o options
	var rest []string
	for i := 0; i < len(args); i++ {
		switch a := args[i]; a {
		case "--debug", "-d":
			o.debug = true
		case "--translations", "-t":
			if i+1 >= len(args) {
				return o, fmt.Errorf("%s needs a file", a)
			}
			i++
			o.translations = args[i]
		default:
			rest = append(rest, a)
		}
	}
	if len(rest) != 1 {
		return o, fmt.Errorf("expected one capture file, got %d arguments", len(rest))
	}
	o.path = rest[0]
	return o, nil
}

func main() {
	args := os.Args[1:]
	if len(args) > 0 {
		switch args[0] {
		case "--help", "-h":
			printHelp()
			return
		case "--version", "-v":
			fmt.Printf("pmdmexplorer %s\n", version)
			return
		}
	}
	o, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	// before any logging call
	if err := logger.Init(logger.Options{Enabled: o.debug, Level: slog.LevelDebug}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}
	defer logger.Close()
	logger.Info("starting pmdmexplorer", "path", o.path, "debug", o.debug)

	names := dump.Translations{}
	if o.translations != "" {
		if names, err = dump.LoadTranslationsFile(o.translations); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(NewModel(o.path, names), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		logger.Close()
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
	logger.Info("pmdmexplorer exited normally")
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: pmdmexplorer [options] <capture>\n")
	fmt.Fprintf(os.Stderr, "Try 'pmdmexplorer --help' for more information.\n")
}

func printHelp() {
	fmt.Println("pmdmexplorer - Interactive browser for inventory manager captures")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  pmdmexplorer [options] <capture>")
	fmt.Println()
	fmt.Println("  Shows the inventory in list order, grouped by pause menu tab, and")
	fmt.Println("  flags captures whose lists or tabs are inconsistent.")
	fmt.Println()
	fmt.Println("OPTIONS:")
	fmt.Println("  -t, --translations <file>  JSON table of display names")
	fmt.Println("  -d, --debug                Enable debug logging to ~/.pouchkit/logs/")
	fmt.Println("  -h, --help                 Show this help message")
	fmt.Println("  -v, --version              Show version information")
	fmt.Println()
	fmt.Println("For editing captures, use the 'pmdmctl' command instead.")
}
