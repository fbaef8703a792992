package db

import (
  "fmt"
  "gorm.io/driver/postgres"
  "gorm.io/gorm"
  "github.com/yungbote/vectorbridge-backend/internal/types"
  "github.com/yungbote/vectorbridge-backend/internal/platform/envutil"
  "github.com/yungbote/vectorbridge-backend/internal/platform/logger"
)

type PostgresService struct {
  db *gorm.DB
  log *logger.Logger
}

// dsnFromEnv returns POSTGRES_DSN verbatim when set, otherwise a DSN
// assembled from the individual POSTGRES_* variables.
func dsnFromEnv() string {
  if dsn := envutil.Str("POSTGRES_DSN", ""); dsn != "" {
    return dsn
  }
  postgresHost := envutil.Str("POSTGRES_HOST", "localhost")
  postgresPort := envutil.Str("POSTGRES_PORT", "5432")
  postgresUser := envutil.Str("POSTGRES_USER", "postgres")
  postgresPassword := envutil.Str("POSTGRES_PASSWORD", "")
  postgresName := envutil.Str("POSTGRES_NAME", "vectorbridge")
  postgresSSLMode := envutil.Str("POSTGRES_SSL_MODE", "disable")
  return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", postgresUser, postgresPassword, postgresHost, postgresPort, postgresName, postgresSSLMode)
}

func NewPostgresService(log *logger.Logger) (*PostgresService, error) {
  serviceLog := log.With("service", "PostgresService")

  dsn := dsnFromEnv()

  serviceLog.Info("Connecting to Postgres...")
  db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
    DisableForeignKeyConstraintWhenMigrating: true,
  })
  if err != nil {
    serviceLog.Error("Failed to connect to Postgres", "error", err)
    return nil, fmt.Errorf("Failed to connect to Postgres: %w", err)
  }

  if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS "uuid-ossp";`).Error; err != nil {
    serviceLog.Error("Failed to enable uuid-ossp extension", "error", err)
    return nil, fmt.Errorf("Failed to enable uuid-ossp extension: %w", err)
  }

  return &PostgresService{db: db, log: serviceLog}, nil
}

func (s *PostgresService) AutoMigrateAll() error {
  s.log.Info("Auto migrating postgres tables...")
  err := s.db.AutoMigrate(
    &types.Connector{},
    &types.Document{},
  )
  if err != nil {
    s.log.Error("Auto migration failed for postgres tables", "error", err)
    return err
  }
  if err := s.db.Exec(`
    DO $$
    BEGIN
      IF NOT EXISTS (
        SELECT 1 FROM pg_constraint WHERE conname = 'fk_documents_parent_id'
      ) THEN
        ALTER TABLE "documents"
        ADD CONSTRAINT "fk_documents_parent_id"
        FOREIGN KEY ("parent_id")
        REFERENCES "documents"("id")
        ON DELETE CASCADE;
      END IF;
    END $$;
  `).Error; err != nil {
    return fmt.Errorf("Failed to add fk_documents_parent_id: %w", err)
  }
  return nil
}

func (s *PostgresService) DB() *gorm.DB {
  return s.db
}
