// Package main is the entry point for the wslgate CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/urfave/cli/v3"
	wcli "github.com/wslgate/wslgate/internal/cli"
	"github.com/wslgate/wslgate/pkg/version"
)

func main() {
	app := &cli.Command{
		Name:                  "wslgate",
		Usage:                 "Run POSIX commands from the host shell through a WSL bridge",
		Version:               version.Version,
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				Sources: cli.EnvVars("WSLGATE_LOG_LEVEL"),
			},
		},
		Commands: []*cli.Command{
			{
				Name:            "run",
				Usage:           "Execute a command in the remote environment",
				ArgsUsage:       "<command> [args...]",
				SkipFlagParsing: true, // Pass flags through to the remote command untouched
				HideHelp:        true,
				Action: func(_ context.Context, cmd *cli.Command) error {
					args := runArgs(os.Args[1:])
					if len(args) == 0 {
						return fmt.Errorf("command name required")
					}

					code, err := wcli.Run(wcli.RunParams{
						LogLevel: cmd.String("log-level"),
						Command:  args[0],
						Args:     args[1:],
					})
					if err != nil {
						return err
					}
					if code != 0 {
						os.Exit(code)
					}
					return nil
				},
			},
			{
				Name:            "complete",
				Usage:           "Answer a completion request from the host shell",
				ArgsUsage:       "--line <text> --cursor <offset> -- [tokens...]",
				Hidden:          true, // Used internally by the generated completers
				SkipFlagParsing: true, // Tokens may contain flags and "--"
				HideHelp:        true,
				Action: func(_ context.Context, cmd *cli.Command) error {
					line, cursor, tokens := completeArgs(os.Args[1:])
					return wcli.Complete(wcli.CompleteParams{
						LogLevel: cmd.String("log-level"),
						Line:     line,
						Cursor:   cursor,
						Tokens:   tokens,
					})
				},
			},
			{
				Name:      "register",
				Usage:     "Print host-shell code registering commands for remote execution",
				ArgsUsage: "[commands...]",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "shell",
						Value:   "powershell",
						Usage:   "Host shell: powershell or pwsh",
						Sources: cli.EnvVars("WSLGATE_SHELL"),
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return wcli.Register(wcli.RegisterParams{
						LogLevel: cmd.String("log-level"),
						Shell:    cmd.String("shell"),
						Commands: cmd.Args().Slice(),
					})
				},
			},
			{
				Name:  "status",
				Usage: "Show bridge, configuration and cache status",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Value:   "text",
						Usage:   "Output format: text or yaml",
					},
				},
				Action: func(_ context.Context, cmd *cli.Command) error {
					return wcli.Status(wcli.StatusParams{
						LogLevel: cmd.String("log-level"),
						Format:   cmd.String("output"),
					})
				},
			},
			{
				Name:      "validate",
				Usage:     "Validate a wslgate configuration file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					configPath := ""
					if cmd.Args().Len() > 0 {
						configPath = cmd.Args().Get(0)
					}
					return wcli.Validate(wcli.ValidateParams{
						LogLevel: cmd.String("log-level"),
						Path:     configPath,
					})
				},
			},
			{
				Name:  "clean",
				Usage: "Clear the completion-function cache",
				Action: func(_ context.Context, cmd *cli.Command) error {
					return wcli.Clean(wcli.CleanParams{
						LogLevel: cmd.String("log-level"),
					})
				},
			},
			{
				Name:      "init",
				Usage:     "Create a starter configuration file",
				ArgsUsage: "[config-file]",
				Action: func(_ context.Context, cmd *cli.Command) error {
					path := ""
					if cmd.Args().Len() > 0 {
						path = cmd.Args().Get(0)
					}
					return wcli.Init(wcli.InitParams{
						LogLevel: cmd.String("log-level"),
						Path:     path,
					})
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// runArgs returns everything after the "run" subcommand in argv.
// cmd.Args() cannot be used here: urfave/cli swallows "--", which remote
// commands may need verbatim.
func runArgs(argv []string) []string {
	var args []string
	found := false
	skipFirstDoubleDash := true
	for _, arg := range argv {
		if !found {
			if arg == "run" {
				found = true
			}
			continue
		}
		if arg == "--" && skipFirstDoubleDash {
			skipFirstDoubleDash = false
			continue
		}
		args = append(args, arg)
	}
	return args
}

// completeArgs parses the completion invocation from argv. Flag parsing is
// done by hand because tokens routinely start with "-" and may contain "--"
// themselves; only the first "--" separates flags from tokens.
func completeArgs(argv []string) (line string, cursor int, tokens []string) {
	args := argv
	for i := 0; i < len(args); i++ {
		if args[i] == "complete" {
			args = args[i+1:]
			break
		}
	}

	// -1 means "not given"; an explicit --cursor 0 must stay 0.
	cursor = -1

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--line":
			if i+1 < len(args) {
				i++
				line = args[i]
			}
		case "--cursor":
			if i+1 < len(args) {
				i++
				if n, err := strconv.Atoi(args[i]); err == nil {
					cursor = n
				}
			}
		case "--":
			tokens = append(tokens, args[i+1:]...)
			i = len(args)
		default:
			tokens = append(tokens, args[i])
		}
	}

	if cursor < 0 {
		cursor = len(line)
	}
	return line, cursor, tokens
}
