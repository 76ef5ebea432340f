// Package cmd implements the pagestate CLI commands.
//
// A root command dispatches to subcommands (render, run, version), each of
// which registers itself from an init function.
package cmd

import (
	"fmt"
	"os"
	"strings"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name  string
	Short string
	Long  string
	Usage string
	Run   func(args []string) error
}

var rootCmd = &Command{
	Name:  "pagestate",
	Short: "pagestate - page-state container demo",
	Long: `pagestate wraps a view in a container that switches between content,
loading, error, empty, no-network and custom states.

Use "pagestate <command> --help" for more information about a command.`,
	Usage: "pagestate <command> [flags]",
}

var (
	commands = make(map[string]*Command)
	ordered  []*Command
)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	ordered = append(ordered, cmd)
}

// Execute runs the CLI with os.Args.
func Execute() error {
	return execute(os.Args[1:])
}

func execute(args []string) error {
	if len(args) == 0 {
		printHelp()
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp()
		return nil
	case "-v", "--version":
		args[0] = "version"
	}

	cmd, ok := commands[args[0]]
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown command %q\n\n", args[0])
		printHelp()
		return fmt.Errorf("unknown command: %s", args[0])
	}

	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" {
			printCommandHelp(cmd)
			return nil
		}
	}
	return cmd.Run(cmdArgs)
}

func printHelp() {
	fmt.Println(rootCmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", rootCmd.Usage)
	fmt.Println()
	fmt.Println("Commands:")
	for _, sub := range ordered {
		fmt.Printf("  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -h, --help           Show help for a command")
	fmt.Println("  -v, --version        Show version information")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  pagestate render --out shots --format png")
	fmt.Println("  pagestate run")
}

func printCommandHelp(cmd *Command) {
	fmt.Println(cmd.Long)
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Printf("  %s\n", cmd.Usage)
}

// flagValue returns the value of a "--name value" or "--name=value" flag at
// args[i], and how many extra arguments it consumed.
func flagValue(args []string, i int, name string) (value string, skip int, ok bool, err error) {
	arg := args[i]
	if v, found := strings.CutPrefix(arg, name+"="); found {
		return v, 0, true, nil
	}
	if arg != name {
		return "", 0, false, nil
	}
	if i+1 >= len(args) {
		return "", 0, true, fmt.Errorf("%s requires a value", name)
	}
	return args[i+1], 1, true, nil
}

func init() {
	RegisterCommand(&Command{
		Name:  "version",
		Short: "Show version information",
		Long:  "Print the pagestate CLI version and build time.",
		Usage: "pagestate version",
		Run: func(args []string) error {
			fmt.Printf("pagestate CLI version %s (built %s)\n", Version, BuildTime)
			return nil
		},
	})
}
