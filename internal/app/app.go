package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/pennantrace/sandlot/internal/config"
	"github.com/pennantrace/sandlot/internal/domain/conference"
	"github.com/pennantrace/sandlot/internal/domain/lineup"
	"github.com/pennantrace/sandlot/internal/domain/match"
	"github.com/pennantrace/sandlot/internal/domain/player"
	"github.com/pennantrace/sandlot/internal/domain/season"
	"github.com/pennantrace/sandlot/internal/domain/stats"
	"github.com/pennantrace/sandlot/internal/domain/store"
	"github.com/pennantrace/sandlot/internal/domain/team"
	"github.com/pennantrace/sandlot/internal/domain/user"
	"github.com/pennantrace/sandlot/internal/infrastructure/account/rosterd"
	"github.com/pennantrace/sandlot/internal/infrastructure/notify"
	"github.com/pennantrace/sandlot/internal/infrastructure/notify/discordhook"
	"github.com/pennantrace/sandlot/internal/infrastructure/repository/memory"
	"github.com/pennantrace/sandlot/internal/infrastructure/repository/postgres"
	"github.com/pennantrace/sandlot/internal/interfaces/httpapi"
	idgen "github.com/pennantrace/sandlot/internal/platform/id"
	"github.com/pennantrace/sandlot/internal/usecase"
)

type repositories struct {
	atomic      store.Atomic
	seasons     season.Repository
	teams       team.Repository
	players     player.Repository
	lineups     lineup.Repository
	users       user.Repository
	matches     match.Repository
	stats       stats.Repository
	conferences conference.Repository
}

// NewHTTPServer wires storage, external clients, and the HTTP surface into a
// ready-to-listen server. The returned cleanup releases the notify worker
// pool and the database handle; call it after the server has shut down.
func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, func(), error) {
	if logger == nil {
		logger = slog.Default()
	}

	repos, closeStore, err := openRepositories(cfg)
	if err != nil {
		return nil, nil, err
	}

	hub, err := notify.NewHub(cfg.NotifyWorkerCount, logger)
	if err != nil {
		closeStore()
		return nil, nil, fmt.Errorf("start notify hub: %w", err)
	}

	var announcer usecase.Announcer = usecase.NopAnnouncer{}
	if cfg.DiscordWebhookURL != "" {
		announcer = discordhook.NewAnnouncer(discordhook.Config{
			WebhookURL:          cfg.DiscordWebhookURL,
			Timeout:             cfg.DiscordTimeout,
			CircuitFailureCount: cfg.DiscordCircuitFailureCount,
			CircuitOpenTimeout:  cfg.DiscordCircuitOpenTimeout,
		}, logger)
	}

	seasonSvc := usecase.NewSeasonService(repos.atomic, repos.seasons, hub, announcer, logger)
	draftSvc := usecase.NewDraftService(repos.atomic, repos.seasons, repos.teams, repos.players, hub, announcer, logger)
	lineupSvc := usecase.NewLineupService(repos.atomic, repos.teams, repos.lineups, hub, logger)
	teamSvc := usecase.NewTeamService(repos.atomic, repos.teams, repos.conferences, logger)
	userSvc := usecase.NewUserService(repos.users, idgen.NewRandomGenerator(), logger)
	matchSvc := usecase.NewMatchService(repos.matches, repos.players, repos.stats, hub, logger)
	standingsSvc := usecase.NewStandingsService(repos.matches, repos.teams)
	leaderboardSvc := usecase.NewLeaderboardService(repos.stats, repos.players)

	verifier := rosterd.NewClient(
		&http.Client{Timeout: cfg.RosterdTimeout},
		rosterd.Config{
			BaseURL:             cfg.RosterdBaseURL,
			IntrospectURL:       cfg.RosterdIntrospectURL,
			Timeout:             cfg.RosterdTimeout,
			CircuitFailureCount: cfg.RosterdCircuitFailureCount,
			CircuitOpenTimeout:  cfg.RosterdCircuitOpenTimeout,
		},
		logger,
	)

	handler := httpapi.NewHandler(
		seasonSvc,
		draftSvc,
		lineupSvc,
		teamSvc,
		userSvc,
		matchSvc,
		standingsSvc,
		leaderboardSvc,
		hub,
		logger,
	)
	router := httpapi.NewRouter(handler, verifier, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		hub.Close()
		closeStore()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	cleanup := func() {
		hub.Close()
		closeStore()
	}

	return server, cleanup, nil
}

func openRepositories(cfg config.Config) (repositories, func(), error) {
	switch cfg.StorageDriver {
	case config.StoragePostgres:
		db, err := openDB(cfg.DBURL)
		if err != nil {
			return repositories{}, nil, err
		}
		st := postgres.NewStore(db)
		return repositories{
			atomic:      st,
			seasons:     st.Seasons(),
			teams:       st.Teams(),
			players:     st.Players(),
			lineups:     st.Lineups(),
			users:       st.Users(),
			matches:     st.Matches(),
			stats:       st.Stats(),
			conferences: st.Conferences(),
		}, func() { _ = db.Close() }, nil
	case config.StorageMemory:
		st, err := seededMemoryStore()
		if err != nil {
			return repositories{}, nil, err
		}
		return repositories{
			atomic:      st,
			seasons:     st.Seasons(),
			teams:       st.Teams(),
			players:     st.Players(),
			lineups:     st.Lineups(),
			users:       st.Users(),
			matches:     st.Matches(),
			stats:       st.Stats(),
			conferences: st.Conferences(),
		}, func() {}, nil
	default:
		return repositories{}, nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}

func openDB(rawURL string) (*sqlx.DB, error) {
	dsn := normalizeDBURL(rawURL, true)
	db, err := otelsqlx.Connect("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(rawURL)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

func seededMemoryStore() (*memory.Store, error) {
	st := memory.NewStore()
	ctx := context.Background()
	for _, u := range memory.SeedUsers() {
		if err := st.Users().Create(ctx, u); err != nil {
			return nil, fmt.Errorf("seed user %s: %w", u.ID, err)
		}
	}
	for _, tm := range memory.SeedTeams() {
		if err := st.Teams().Create(ctx, tm); err != nil {
			return nil, fmt.Errorf("seed team %s: %w", tm.ID, err)
		}
	}
	for _, p := range memory.SeedPlayers() {
		if err := st.Players().Create(ctx, p); err != nil {
			return nil, fmt.Errorf("seed player %s: %w", p.ID, err)
		}
	}
	for _, d := range memory.SeedMatchDays() {
		if err := st.Matches().CreateMatchDay(ctx, d); err != nil {
			return nil, fmt.Errorf("seed match day %s: %w", d.ID, err)
		}
	}
	for _, m := range memory.SeedMatches() {
		if err := st.Matches().Create(ctx, m); err != nil {
			return nil, fmt.Errorf("seed match %s: %w", m.ID, err)
		}
	}
	return st, nil
}
