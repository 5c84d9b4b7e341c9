// Package cmd implements the xiform CLI commands.
//
// The command structure follows standard Go CLI patterns with a root command
// that dispatches to subcommands (run, render).
package cmd

import (
	"fmt"
	"io"
	"os"
)

// Version information set at build time.
var (
	Version   = "0.1.0-dev"
	BuildTime = "unknown"
)

// Command represents a CLI command.
type Command struct {
	Name        string
	Short       string
	Long        string
	Usage       string
	Run         func(args []string, out io.Writer) error
	SubCommands []*Command
}

var rootCmd = &Command{
	Name:  "xiform",
	Short: "xiform - retained-mode widgets for Go",
	Long: `xiform is a small retained-mode widget toolkit. This command shows
its demo form in the terminal or renders it to a PNG image.

Use "xiform <command> --help" for more information about a command.`,
	Usage: "xiform <command> [flags]",
}

// Commands registered with the CLI.
var commands = make(map[string]*Command)

// RegisterCommand adds a command to the CLI.
func RegisterCommand(cmd *Command) {
	commands[cmd.Name] = cmd
	rootCmd.SubCommands = append(rootCmd.SubCommands, cmd)
}

// Execute runs the CLI with the process arguments.
func Execute() error {
	return ExecuteArgs(os.Args[1:], os.Stdout)
}

// ExecuteArgs runs the CLI with args, writing normal output to out.
func ExecuteArgs(args []string, out io.Writer) error {
	if len(args) == 0 {
		printHelp(out, rootCmd)
		return nil
	}

	switch args[0] {
	case "-h", "--help", "help":
		printHelp(out, rootCmd)
		return nil
	case "-v", "--version", "version":
		fmt.Fprintf(out, "xiform version %s (built %s)\n", Version, BuildTime)
		return nil
	}

	// Find and execute the command
	cmdName := args[0]
	cmd, ok := commands[cmdName]
	if !ok {
		printHelp(out, rootCmd)
		return fmt.Errorf("unknown command: %s", cmdName)
	}

	// Check for help flag on subcommand
	cmdArgs := args[1:]
	for _, arg := range cmdArgs {
		if arg == "-h" || arg == "--help" || arg == "help" {
			printCommandHelp(out, cmd)
			return nil
		}
	}

	return cmd.Run(cmdArgs, out)
}

func printHelp(out io.Writer, cmd *Command) {
	fmt.Fprintln(out, cmd.Long)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s\n", cmd.Usage)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Commands:")
	for _, sub := range cmd.SubCommands {
		fmt.Fprintf(out, "  %-14s %s\n", sub.Name, sub.Short)
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Flags:")
	fmt.Fprintln(out, "  -h, --help           Show help for a command")
	fmt.Fprintln(out, "  -v, --version        Show version information")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintln(out, "  xiform run                                  Show the demo in the terminal")
	fmt.Fprintln(out, "  xiform render --out form.png                Render the first frame")
	fmt.Fprintln(out, "  xiform render --script \"down:100,60 up:100,60\"")
}

func printCommandHelp(out io.Writer, cmd *Command) {
	fmt.Fprintln(out, cmd.Long)
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Usage:")
	fmt.Fprintf(out, "  %s\n", cmd.Usage)
}

// flagValue returns the value following a --name flag, supporting both
// "--name value" and "--name=value". The returned index is where parsing
// should resume.
func flagValue(args []string, i int, name string) (string, int, bool, error) {
	arg := args[i]
	prefix := "--" + name
	if arg == prefix {
		if i+1 >= len(args) {
			return "", i, true, fmt.Errorf("%s requires a value", prefix)
		}
		return args[i+1], i + 1, true, nil
	}
	if len(arg) > len(prefix)+1 && arg[:len(prefix)+1] == prefix+"=" {
		return arg[len(prefix)+1:], i, true, nil
	}
	return "", i, false, nil
}
