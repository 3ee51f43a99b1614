package db

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/odosui/mt/internal/config"
	"github.com/odosui/mt/internal/logger"
	"github.com/odosui/mt/internal/types"
	"github.com/odosui/mt/internal/utils"
)

type Service struct {
	db  *gorm.DB
	log *logger.Logger
}

// New opens the database named by the config. Postgres is the default;
// DB_DRIVER=sqlite runs everything against a local file, which is how the
// single-user desktop setup works.
func New(cfg *config.Config, log *logger.Logger) (*Service, error) {
	serviceLog := log.With("service", "DBService")

	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "sqlite":
		dsn := cfg.DBDSN
		if dsn == "" {
			dsn = "mt.db"
		}
		dialector = sqlite.Open(dsn)
	case "postgres":
		dsn := cfg.DBDSN
		if dsn == "" {
			host := utils.GetEnv("POSTGRES_HOST", "localhost", log)
			port := utils.GetEnv("POSTGRES_PORT", "5432", log)
			user := utils.GetEnv("POSTGRES_USER", "postgres", log)
			password := utils.GetEnv("POSTGRES_PASSWORD", "", log)
			name := utils.GetEnv("POSTGRES_NAME", "mt", log)
			dsn = fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
		}
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unknown db driver %q", cfg.DBDriver)
	}

	serviceLog.Info("Connecting to database", "driver", cfg.DBDriver)
	gdb, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return &Service{db: gdb, log: serviceLog}, nil
}

func (s *Service) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	return s.db.AutoMigrate(
		&types.User{},
		&types.Note{},
		&types.Flashcard{},
	)
}

func (s *Service) DB() *gorm.DB {
	return s.db
}
