package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/coachmate/matchday/internal/config"
	"github.com/coachmate/matchday/internal/domain/game"
	"github.com/coachmate/matchday/internal/domain/matchevent"
	"github.com/coachmate/matchday/internal/domain/player"
	"github.com/coachmate/matchday/internal/domain/report"
	"github.com/coachmate/matchday/internal/domain/squad"
	"github.com/coachmate/matchday/internal/domain/team"
	"github.com/coachmate/matchday/internal/infrastructure/account/passport"
	cacherepo "github.com/coachmate/matchday/internal/infrastructure/repository/cache"
	"github.com/coachmate/matchday/internal/infrastructure/repository/memory"
	pgrepo "github.com/coachmate/matchday/internal/infrastructure/repository/postgres"
	"github.com/coachmate/matchday/internal/interfaces/httpapi"
	basecache "github.com/coachmate/matchday/internal/platform/cache"
	idgen "github.com/coachmate/matchday/internal/platform/id"
	"github.com/coachmate/matchday/internal/platform/logging"
	"github.com/coachmate/matchday/internal/platform/resilience"
	"github.com/coachmate/matchday/internal/usecase"
)

type repositories struct {
	teams   team.Repository
	players player.Repository
	games   game.Repository
	events  matchevent.Repository
	reports report.Repository
}

// NewHTTPServer wires the configured storage backend, the usecase layer, and
// the HTTP interface into a ready-to-run server. The returned cleanup func
// releases backend resources and is safe to call after server shutdown.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = logging.Default()
	}

	repos, cleanup, err := buildRepositories(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	if cfg.CacheEnabled {
		store := basecache.NewStore(cfg.CacheTTL)
		// Game state is deliberately not cached: lifecycle transitions must
		// stay read-your-writes.
		repos.teams = cacherepo.NewTeamRepository(repos.teams, store)
		repos.players = cacherepo.NewPlayerRepository(repos.players, store)
	}

	generator := idgen.NewRandomGenerator()

	teamSvc := usecase.NewTeamService(repos.teams, repos.players)
	gameSvc := usecase.NewGameService(
		repos.games,
		repos.teams,
		repos.players,
		repos.events,
		repos.reports,
		squad.DefaultRules(),
		generator,
		logger,
	)
	eventSvc := usecase.NewEventService(repos.games, repos.events, generator, logger)
	reportSvc := usecase.NewReportService(repos.games, repos.events, repos.reports, logger)
	eventSvc.SetRefresher(reportSvc)

	passportClient := passport.NewClient(passport.ClientConfig{
		BaseURL:    cfg.PassportBaseURL,
		VerifyPath: cfg.PassportVerifyPath,
		Timeout:    cfg.PassportTimeout,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.PassportCircuitEnabled,
			FailureThreshold: cfg.PassportCircuitFailureCount,
			OpenTimeout:      cfg.PassportCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.PassportCircuitHalfOpenMax,
		},
	})

	handler := httpapi.NewHandler(teamSvc, gameSvc, eventSvc, reportSvc, logger)
	router := httpapi.NewRouter(handler, passportClient, logger, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		cleanup()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, cleanup, nil
}

func buildRepositories(ctx context.Context, cfg config.Config, logger *logging.Logger) (repositories, func(), error) {
	switch cfg.StorageDriver {
	case config.StorageDriverPostgres:
		db, err := openPostgres(ctx, cfg)
		if err != nil {
			return repositories{}, nil, err
		}

		logger.Info("storage backend ready",
			"driver", cfg.StorageDriver,
			"database", dbNameFromURL(cfg.DBURL),
		)

		return repositories{
			teams:   pgrepo.NewTeamRepository(db),
			players: pgrepo.NewPlayerRepository(db),
			games:   pgrepo.NewGameRepository(db),
			events:  pgrepo.NewMatchEventRepository(db),
			reports: pgrepo.NewReportRepository(db),
		}, func() { _ = db.Close() }, nil

	case config.StorageDriverMemory:
		logger.Info("storage backend ready", "driver", cfg.StorageDriver)

		return repositories{
			teams:   memory.NewTeamRepository(memory.SeedTeams()),
			players: memory.NewPlayerRepository(memory.SeedPlayers()),
			games:   memory.NewGameRepository(memory.SeedGames()),
			events:  memory.NewMatchEventRepository(),
			reports: memory.NewReportRepository(),
		}, func() {}, nil

	default:
		return repositories{}, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
