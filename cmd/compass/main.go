package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/kawatsu/compass/internal/calendar"
	"github.com/kawatsu/compass/internal/cli"
	"github.com/kawatsu/compass/internal/coach"
	"github.com/kawatsu/compass/internal/db"
	"github.com/kawatsu/compass/internal/domain"
	"github.com/kawatsu/compass/internal/gcal"
	"github.com/kawatsu/compass/internal/llm"
	"github.com/kawatsu/compass/internal/repository"
	"github.com/kawatsu/compass/internal/review"
	"github.com/kawatsu/compass/internal/service"
	"github.com/kawatsu/compass/internal/wbs"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Config directory: env var or default ~/.compass
	configDir := os.Getenv("COMPASS_HOME")
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		configDir = filepath.Join(home, ".compass")
	}

	dbPath := os.Getenv("COMPASS_DB")
	if dbPath == "" {
		dbPath = filepath.Join(configDir, "compass.db")
	}

	loc := loadLocation()

	// Open database
	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	goalRepo := repository.NewSQLiteGoalRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	reflectionRepo := repository.NewSQLiteReflectionRepo(database)
	suggestionRepo := repository.NewSQLiteSuggestionRepo(database)
	integrationRepo := repository.NewSQLiteIntegrationRepo(database)

	// Wire unit of work for transactional operations
	uow := db.NewSQLiteUnitOfWork(database)

	// Coach and goal breakdown: model-backed when the LLM is enabled,
	// rule-based otherwise.
	var planCoach coach.Coach = coach.RuleBasedCoach{}
	var drafter wbs.Drafter = wbs.RuleBasedDrafter{}
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient := llm.NewOllamaClient(llmCfg, observer)
		planCoach = coach.NewLLMCoach(llmClient)
		drafter = wbs.NewLLMDrafter(llmClient)
	}

	// Calendar sources: ICS feeds work out of the box, the Calendar API
	// needs OAuth material under the config directory.
	gcalAuth := gcal.NewAuth(configDir)
	newSource := func(kind domain.IntegrationKind, value string) (calendar.Source, error) {
		switch kind {
		case domain.IntegrationICSFeed:
			return calendar.NewICSFeedSource(value), nil
		case domain.IntegrationCalendarAPI:
			return gcal.NewAPISource(gcalAuth, value), nil
		default:
			return nil, fmt.Errorf("unknown calendar integration kind %q", kind)
		}
	}

	integrationSvc := service.NewIntegrationService(integrationRepo, newSource)
	reviewSvc := review.NewService(reflectionRepo, suggestionRepo, planCoach, loc)

	app := &cli.App{
		Goals:        service.NewGoalService(goalRepo),
		Tasks:        service.NewTaskService(taskRepo, goalRepo),
		Plan:         service.NewPlanService(taskRepo, planCoach, integrationSvc, loc),
		Reflections:  service.NewReflectionService(reflectionRepo, planCoach, loc),
		Integrations: integrationSvc,
		Wbs:          service.NewWbsService(goalRepo, taskRepo, uow, drafter, loc),
		Import:       service.NewImportService(uow),
		Review:       reviewSvc,

		GCalAuth:    gcalAuth,
		Loc:         loc,
		Interactive: isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

// loadLocation resolves the reference timezone, defaulting to Asia/Tokyo.
func loadLocation() *time.Location {
	name := os.Getenv("COMPASS_TZ")
	if name == "" {
		name = "Asia/Tokyo"
	}
	if loc, err := time.LoadLocation(name); err == nil {
		return loc
	}
	if name != "Asia/Tokyo" {
		if loc, err := time.LoadLocation("Asia/Tokyo"); err == nil {
			return loc
		}
	}
	// Systems without tzdata still get the right offset.
	return time.FixedZone("JST", 9*60*60)
}
