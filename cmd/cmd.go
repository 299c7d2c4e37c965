// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// setupCommand handles setup operations for database and configuration.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "database",
				Usage: "Initialize database and run migrations",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "config",
						Aliases: []string{"c"},
						Usage:   "Path to configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupDatabase,
			},
			{
				Name:  "config",
				Usage: "Create a config.toml from the embedded template",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Path for the new configuration file",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}

// authCommand handles account operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage accounts and the active session",
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Create an account and sign in",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "username"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "Account password",
					},
					&cli.StringFlag{
						Name:  "email",
						Usage: "Account email",
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:  "login",
				Usage: "Sign in as an existing user",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "username"},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "password",
						Aliases: []string{"p"},
						Usage:   "Account password",
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Clear the active session",
				Action: r.AuthLogout,
			},
			{
				Name:   "whoami",
				Usage:  "Show the active user",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.AuthWhoami,
			},
		},
	}
}

// analyzeCommand submits a workout recording for analysis.
func analyzeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "analyze",
		Usage: "Analyze a workout video or image",
		Arguments: []cli.Argument{
			&cli.StringArg{Name: "file"},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "save",
				Usage: "Record the result in workout history",
				Value: true,
			},
			&cli.StringFlag{
				Name:  "lang",
				Usage: "Response language code (overrides the configured default)",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Pretty-print output",
				Value: true,
			},
		},
		Action: r.Analyze,
	}
}

// historyCommand handles workout history operations
func historyCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "history",
		Aliases: []string{"log"},
		Usage:   "Workout history operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List the active user's workout history",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of entries to show (0 for all)",
					},
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
				},
				Action: r.HistoryList,
			},
			{
				Name:  "export",
				Usage: "Export workout history to CSV",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.HistoryExport,
			},
			{
				Name:  "clear",
				Usage: "Delete the active user's workout history",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "yes",
						Aliases: []string{"y"},
						Usage:   "Skip confirmation",
					},
				},
				Action: r.HistoryClear,
			},
		},
	}
}

// planCommand handles workout plan operations
func planCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "plan",
		Usage: "Weekly workout plan operations",
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate and save a personalized weekly plan",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "goal",
						Usage:    "Training goal (Lose Weight, Build Muscle, Improve Endurance, Flexibility & Mobility)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "level",
						Usage:    "Fitness level (Beginner, Intermediate, Advanced)",
						Required: true,
					},
					&cli.IntFlag{
						Name:  "days",
						Usage: "Training days per week",
						Value: 3,
					},
					&cli.IntFlag{
						Name:  "duration",
						Usage: "Minutes per session",
						Value: 30,
					},
					&cli.StringFlag{
						Name:  "equipment",
						Usage: "Available equipment",
						Value: "None",
					},
					&cli.IntFlag{
						Name:  "age",
						Usage: "Age in years",
					},
					&cli.StringFlag{
						Name:  "focus",
						Usage: "Focus area (e.g. Upper Body, Core)",
					},
					&cli.StringFlag{
						Name:  "limitations",
						Usage: "Injuries or limitations",
					},
					&cli.StringFlag{
						Name:  "lang",
						Usage: "Response language code (overrides the configured default)",
					},
				},
				Action: r.PlanGenerate,
			},
			{
				Name:   "show",
				Usage:  "Print the saved plan",
				Action: r.PlanShow,
			},
			{
				Name:  "export",
				Usage: "Write the saved plan to a Markdown file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path",
					},
				},
				Action: r.PlanExport,
			},
		},
	}
}

// progressCommand handles derived progress views
func progressCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "progress",
		Usage: "Streaks, badges, and standings",
		Commands: []*cli.Command{
			{
				Name:  "summary",
				Usage: "Full progress report",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
					&cli.BoolFlag{
						Name:  "pretty",
						Usage: "Pretty-print output",
						Value: true,
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Write a Markdown report to this path",
					},
				},
				Action: r.ProgressSummary,
			},
			{
				Name:   "streak",
				Usage:  "Show the current workout streak",
				Action: r.ProgressStreak,
			},
			{
				Name:   "badges",
				Usage:  "Show the achievement catalog",
				Action: r.ProgressBadges,
			},
			{
				Name:    "leaderboard",
				Aliases: []string{"board"},
				Usage:   "Show community standings",
				Action:  r.ProgressLeaderboard,
			},
		},
	}
}

// tuiCommand returns the top-level TUI command for the interactive dashboard.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive progress dashboard",
		Action:  r.TUI,
	}
}
