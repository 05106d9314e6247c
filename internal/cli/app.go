// Package cli wires configuration, storage and use cases for the shortcutctl commands.
package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/shortcutctl/internal/application/port"
	"github.com/bnema/shortcutctl/internal/application/usecase"
	"github.com/bnema/shortcutctl/internal/cli/styles"
	"github.com/bnema/shortcutctl/internal/domain/entity"
	"github.com/bnema/shortcutctl/internal/domain/repository"
	"github.com/bnema/shortcutctl/internal/infrastructure/config"
	"github.com/bnema/shortcutctl/internal/infrastructure/navigation"
	"github.com/bnema/shortcutctl/internal/infrastructure/persistence/memory"
	"github.com/bnema/shortcutctl/internal/infrastructure/persistence/postgres"
	"github.com/bnema/shortcutctl/internal/infrastructure/persistence/redis"
	"github.com/bnema/shortcutctl/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/shortcutctl/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config     *config.Config
	ConfigFile string
	Theme      *styles.Theme
	Paths      port.XDGPaths

	Settings repository.SettingsRepository
	Prefs    repository.ShortcutPreferenceRepository

	// Use cases
	Targets    *usecase.ManageShortcutTargetsUseCase
	Resolver   *usecase.ResolveShortcutTypeUseCase
	Preference *usecase.ManageShortcutPreferenceUseCase
	Navigation port.NavigationState

	// Context with logger
	ctx     context.Context
	closers []func() error
}

// NewApp creates a new CLI application with all dependencies.
// configPath overrides the XDG config file when non-empty.
func NewApp(configPath string) (*App, error) {
	mgr, err := config.NewManager()
	if err != nil {
		return nil, err
	}
	if configPath != "" {
		mgr.UseConfigFile(configPath)
	}
	if err := mgr.Load(); err != nil {
		return nil, err
	}
	cfg := mgr.Get()

	logger := logging.NewFromConfigValues(cfg.Logging.Level, cfg.Logging.Format)
	ctx := logging.WithContext(context.Background(), logger)
	ctx = logging.WithComponent(ctx, "cli")

	app := &App{
		Config:     cfg,
		ConfigFile: mgr.GetConfigFile(),
		Theme:      styles.NewTheme(),
		Paths:      config.Paths{},
		ctx:        ctx,
	}

	if err := app.openStore(ctx); err != nil {
		_ = app.Close()
		return nil, err
	}

	app.Targets = usecase.NewManageShortcutTargetsUseCase(app.Settings, cfg.ShortcutKeys())
	app.Resolver = usecase.NewResolveShortcutTypeUseCase(app.Targets, app.Prefs, app.Settings)
	app.Navigation = navigation.NewSettingsState(app.Settings, navigation.Keys{
		NavigationMode:   cfg.SettingsKeys.NavigationMode,
		TouchExploration: cfg.SettingsKeys.TouchExploration,
	})
	app.Preference = usecase.NewManageShortcutPreferenceUseCase(
		app.Targets,
		app.Resolver,
		app.Settings,
		app.Navigation,
		cfg.ShortcutLabels(),
	)

	logger.Debug().
		Str("backend", string(cfg.Store.Backend)).
		Str("config", app.ConfigFile).
		Msg("app initialized")
	return app, nil
}

// openStore builds the repositories of the configured backend.
func (a *App) openStore(ctx context.Context) error {
	cfg := a.Config
	switch cfg.Store.Backend {
	case config.StoreBackendSQLite:
		// Opened on first use so config-only commands never touch the file.
		db := sqlite.NewLazyDB(cfg.Database.Path)
		a.closers = append(a.closers, db.Close)
		a.Settings = sqlite.NewLazySettingsRepository(db)
		a.Prefs = sqlite.NewLazyShortcutPreferenceRepository(db)

	case config.StoreBackendRedis:
		opts := redis.Options{
			Addr:       cfg.Redis.Addr,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
			KeyPrefix:  cfg.Redis.KeyPrefix,
			MaxRetries: cfg.Redis.MaxRetries,
		}
		client, err := redis.NewClient(ctx, opts)
		if err != nil {
			return fmt.Errorf("open redis store: %w", err)
		}
		a.closers = append(a.closers, client.Close)
		a.Settings = redis.NewSettingsRepository(client, opts)
		a.Prefs = redis.NewShortcutPreferenceRepository(client, opts)

	case config.StoreBackendPostgres:
		db, err := postgres.NewConnection(ctx, cfg.Postgres.DSN)
		if err != nil {
			return fmt.Errorf("open postgres store: %w", err)
		}
		a.closers = append(a.closers, db.Close)
		a.Settings = postgres.NewSettingsRepository(db)
		a.Prefs = postgres.NewShortcutPreferenceRepository(db)

	case config.StoreBackendMemory:
		a.Settings = memory.NewSettingsRepository()
		a.Prefs = memory.NewShortcutPreferenceRepository()

	default:
		return fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
	return nil
}

// StoreLocation describes where the active backend keeps its data.
func (a *App) StoreLocation() string {
	switch a.Config.Store.Backend {
	case config.StoreBackendSQLite:
		return a.Config.Database.Path
	case config.StoreBackendRedis:
		return a.Config.Redis.Addr
	case config.StoreBackendPostgres:
		return "(dsn from config)"
	default:
		return ""
	}
}

// ResolveFeature maps a command argument to a feature. A configured feature
// name wins; anything else is taken as a flattened component name.
func (a *App) ResolveFeature(arg string) (*entity.Feature, error) {
	feature, ok, err := a.Config.Feature(arg)
	if err != nil {
		return nil, err
	}
	if ok {
		return feature, nil
	}

	feature = entity.NewFeature("", arg)
	if err := feature.Validate(); err != nil {
		return nil, fmt.Errorf("%q is neither a configured feature nor a component name: %w", arg, err)
	}
	return feature, nil
}

// Close releases all resources.
func (a *App) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		errs = append(errs, a.closers[i]())
	}
	a.closers = nil
	return errors.Join(errs...)
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
