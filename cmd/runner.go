package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/ameziane/coachctl/internal/api"
	"github.com/ameziane/coachctl/internal/session"
	"github.com/ameziane/coachctl/internal/shared"
	"github.com/ameziane/coachctl/internal/store"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
//
// Backend and database connections are established lazily by connect, so
// commands that never touch them (setup config) work on a fresh machine.
type Runner struct {
	config     *shared.Config
	logger     *log.Logger
	output     io.Writer
	httpClient *http.Client

	db         *sql.DB
	tokens     *store.TokenStore
	cache      *store.RosterCache
	client     *api.Client
	auth       *api.AuthService
	athletes   *api.AthleteService
	attendance *api.AttendanceService
	planning   *api.PlanningService
	sessions   *api.SessionService
	exercises  *api.ExerciseService
	medical    *api.MedicalService
	videos     *api.VideoService
	users      *api.UserService
	dashboard  *api.DashboardService
	session    *session.Manager
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config     *shared.Config
	Logger     *log.Logger
	Output     io.Writer
	HTTPClient *http.Client
	// DB overrides the config-selected database; tests pass :memory: handles.
	DB *sql.DB
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
		logger:     opts.Logger,
		output:     opts.Output,
		httpClient: opts.HTTPClient,
		db:         opts.DB,
	}
}

// Close releases the local database handle, if one was opened.
func (r *Runner) Close() {
	if r.db != nil {
		r.db.Close()
	}
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, athleteCommand, attendanceCommand,
		planningCommand, sessionCommand, exerciseCommand, medicalCommand,
		videoCommand, dashboardCommand, adminCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

// connect wires the token store, gateway client and domain services. Idempotent.
func (r *Runner) connect(ctx context.Context) error {
	if r.client != nil {
		return nil
	}

	if r.db == nil {
		db, err := shared.NewDatabase(r.config.Database.Path)
		if err != nil {
			return fmt.Errorf("failed to open local database: %w", err)
		}
		shared.ConfigureDatabase(db, r.config.Database.MaxOpenConns, r.config.Database.MaxIdleConns)
		r.db = db
	}

	if err := shared.RunMigrations(r.db); err != nil {
		return fmt.Errorf("failed to migrate local database: %w", err)
	}

	r.tokens = store.NewTokenStore(r.db, r.logger)
	r.cache = store.NewRosterCache(r.db)

	r.client = api.NewClient(r.config.ResolveBaseURL(), r.tokens, api.ClientOpts{
		HTTPClient:        r.httpClient,
		Timeout:           time.Duration(r.config.API.TimeoutSeconds) * time.Second,
		RequestsPerSecond: r.config.API.RequestsPerSecond,
	})

	r.auth = api.NewAuthService(r.client)
	r.athletes = api.NewAthleteService(r.client)
	r.attendance = api.NewAttendanceService(r.client)
	r.planning = api.NewPlanningService(r.client)
	r.sessions = api.NewSessionService(r.client)
	r.exercises = api.NewExerciseService(r.client)
	r.medical = api.NewMedicalService(r.client)
	r.videos = api.NewVideoService(r.client)
	r.users = api.NewUserService(r.client)
	r.dashboard = api.NewDashboardService(r.client)
	r.session = session.NewManager(r.auth, r.tokens, r.logger)

	return nil
}

// requireAuth connects, bootstraps the session from the stored token and fails
// unless it settles as Authenticated.
func (r *Runner) requireAuth(ctx context.Context) error {
	if err := r.connect(ctx); err != nil {
		return err
	}
	if r.session.State() == session.Bootstrapping {
		r.session.Bootstrap(ctx)
	}
	return r.session.RequireAuth()
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
	text := fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}
