package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/desertthunder/fitsense/internal/repositories"
	"github.com/desertthunder/fitsense/internal/services"
	"github.com/desertthunder/fitsense/internal/shared"
	"github.com/desertthunder/fitsense/internal/tasks"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config     *shared.Config
	configPath string
	analyzer   services.Analyzer
	planner    services.Planner
	logger     *log.Logger
	output     io.Writer
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	ConfigPath string
	Analyzer   services.Analyzer
	Planner    services.Planner
	Logger     *log.Logger
	Output     io.Writer
}

// NewRunner creates a new Runner with the provided configuration
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	return &Runner{
		config:     opts.Config,
		configPath: opts.ConfigPath,
		analyzer:   opts.Analyzer,
		planner:    opts.Planner,
		logger:     opts.Logger,
		output:     opts.Output,
	}
}

// SetLogger swaps the runner's logger, e.g. to a file logger while the TUI owns the terminal.
func (r *Runner) SetLogger(l *log.Logger) {
	r.logger = l
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, analyzeCommand, historyCommand, planCommand, progressCommand, tuiCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// workspace bundles the repository stack and engine over one database handle.
type workspace struct {
	db      *sql.DB
	store   *repositories.KVStore
	session *repositories.Session
	users   *repositories.UserDirectory
	logs    *repositories.WorkoutLogRepository
	plans   *repositories.PlanRepository
	engine  *tasks.WorkoutEngine
}

func (w *workspace) Close() error {
	return w.db.Close()
}

// openWorkspace opens the configured database and wires the repository stack.
// Migrations are applied on open so every command works against a current
// schema. An empty language falls back to the configured default.
func (r *Runner) openWorkspace(language string) (*workspace, error) {
	if language == "" {
		language = r.config.App.Language
	}

	db, err := shared.NewDatabase(r.config.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)

	if err := shared.RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	store := repositories.NewKVStore(db)
	session := repositories.NewSession(store)
	users := repositories.NewUserDirectory(store, session)
	logs := repositories.NewWorkoutLogRepository(store, session, users)
	plans := repositories.NewPlanRepository(store, session)
	engine := tasks.NewWorkoutEngine(r.analyzer, r.planner, users, logs, plans, language)

	return &workspace{
		db:      db,
		store:   store,
		session: session,
		users:   users,
		logs:    logs,
		plans:   plans,
		engine:  engine,
	}, nil
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	var output []byte
	var err error

	if pretty {
		output, err = json.MarshalIndent(data, "", "  ")
	} else {
		output, err = json.Marshal(data)
	}

	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainHeader(title string) {
	r.writePlain("═══════════════════════════════════════\n")
	r.writePlain("%v\n", title)
	r.writePlain("═══════════════════════════════════════\n")
}
