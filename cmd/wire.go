package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	sqliteprefs "github.com/bnema/locations-cli/internal/adapters/prefs/sqlite"
	tomlprefs "github.com/bnema/locations-cli/internal/adapters/prefs/toml"
	tomlregistry "github.com/bnema/locations-cli/internal/adapters/registry/toml"
	locationsrender "github.com/bnema/locations-cli/internal/adapters/render/locations"
	"github.com/bnema/locations-cli/internal/adapters/tomlfile"
	"github.com/bnema/locations-cli/internal/application"
	"github.com/bnema/locations-cli/internal/ports"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	configName = "config"
	configType = "toml"
	envPrefix  = "loc"

	prefsBackendKey = "prefs.backend"
	prefsPrefixKey  = "prefs.prefix"
	uiNamespaceKey  = "ui.namespace"
	logLevelKey     = "log.level"

	backendTOML   = "toml"
	backendSQLite = "sqlite"
)

var errUnsupportedBackend = errors.New("unsupported prefs backend")

type app struct {
	registry  ports.AccountRegistry
	openStore func() (ports.PreferenceStore, func() error, error)
	renderer  func([]application.LocationView) (string, error)
	keys      application.PrefKeys
	ui        string
	logLevel  string
}

func wireApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	registry, err := tomlregistry.NewRegistry(cfg)
	if err != nil {
		return nil, fmt.Errorf("wire account registry: %w", err)
	}

	openStore, err := storeOpener(cfg)
	if err != nil {
		return nil, err
	}

	return &app{
		registry:  registry,
		openStore: openStore,
		renderer:  locationsrender.Render,
		keys:      application.KeysForPrefix(cfg.GetString(prefsPrefixKey)),
		ui:        cfg.GetString(uiNamespaceKey),
		logLevel:  cfg.GetString(logLevelKey),
	}, nil
}

func loadConfig() (*viper.Viper, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}

	cfg := viper.New()
	cfg.SetConfigName(configName)
	cfg.SetConfigType(configType)
	cfg.AddConfigPath(filepath.Join(homeDir, tomlfile.ConfigDir))
	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	cfg.AutomaticEnv()

	cfg.SetDefault(prefsBackendKey, backendTOML)
	cfg.SetDefault(prefsPrefixKey, application.DefaultPrefPrefix)
	cfg.SetDefault(uiNamespaceKey, application.DefaultUINamespace)
	cfg.SetDefault(logLevelKey, "warn")

	if err := cfg.ReadInConfig(); err != nil {
		var configNotFound viper.ConfigFileNotFoundError
		if !errors.As(err, &configNotFound) {
			return nil, fmt.Errorf("read config file: %w", err)
		}
	}

	return cfg, nil
}

func storeOpener(cfg *viper.Viper) (func() (ports.PreferenceStore, func() error, error), error) {
	switch backend := strings.ToLower(strings.TrimSpace(cfg.GetString(prefsBackendKey))); backend {
	case backendTOML:
		return func() (ports.PreferenceStore, func() error, error) {
			store, err := tomlprefs.NewStore(cfg)
			if err != nil {
				return nil, nil, fmt.Errorf("wire toml prefs store: %w", err)
			}
			return store, func() error { return nil }, nil
		}, nil
	case backendSQLite:
		return func() (ports.PreferenceStore, func() error, error) {
			store, err := sqliteprefs.NewStore(cfg)
			if err != nil {
				return nil, nil, fmt.Errorf("wire sqlite prefs store: %w", err)
			}
			return store, store.Close, nil
		}, nil
	default:
		return nil, fmt.Errorf("%w %q (want %s or %s)", errUnsupportedBackend, backend, backendTOML, backendSQLite)
	}
}

func newLogger(w io.Writer, level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(strings.TrimSpace(level))
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	encoderConfig := zap.NewDevelopmentEncoderConfig()
	encoderConfig.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderConfig),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(lvl),
	)

	return zap.New(core), nil
}

// withLocations loads the locations model for one command, runs fn against a
// service over it and saves the model afterwards when persist is set.
func (a *app) withLocations(ctx context.Context, stderr io.Writer, persist bool, fn func(*application.LocationService) error) (err error) {
	logger, err := newLogger(stderr, a.logLevel)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	store, closeStore, err := a.openStore()
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeStore(); closeErr != nil {
			err = errors.Join(err, fmt.Errorf("close prefs store: %w", closeErr))
		}
	}()

	model := application.NewLocationsModel(store, a.registry,
		application.WithModelLogger(logger),
		application.WithModelKeys(a.keys),
	)
	defer model.Teardown()

	if err := model.Load(ctx); err != nil {
		return fmt.Errorf("load locations: %w", err)
	}

	service := application.NewLocationService(model, a.registry, store,
		application.WithServiceLogger(logger),
		application.WithServiceKeys(a.keys),
		application.WithUINamespace(a.ui),
	)

	if err := fn(service); err != nil {
		return err
	}
	if !persist {
		return nil
	}

	if err := service.Save(ctx); err != nil {
		return fmt.Errorf("save locations: %w", err)
	}
	return nil
}
