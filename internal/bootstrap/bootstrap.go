package bootstrap

import (
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appServices "github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/services"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/app/store"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/config"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/pkg/logger"
	"github.com/deepak-bhee/AASAlumni-Advantage-System/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Session  *store.SessionStore
	Domain   *store.DomainStore
	Services *appServices.Services
	Logger   zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Debug().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies seeds the stores and wires the services. The stores are
// the system of record for the process lifetime; every invocation starts
// from the same roster.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	var (
		dataset *seed.Dataset
		err     error
	)
	if cfg.Seed.RosterPath != "" {
		dataset, err = seed.FromFile(cfg.Seed.RosterPath)
	} else {
		dataset, err = seed.Default()
	}
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to load seed roster")
		return nil, err
	}

	domain := store.NewDomainStore()
	seed.Load(dataset, domain, lgr)

	session := store.NewSessionStore(dataset.Users, cfg.SignInDelay(), lgr)

	return &Dependencies{
		Session:  session,
		Domain:   domain,
		Services: appServices.NewServices(domain, session, lgr),
		Logger:   lgr,
	}, nil
}
