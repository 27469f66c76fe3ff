package persistence

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"walkingtube/infrastructure/configuration"
	"walkingtube/infrastructure/logger"
)

// NewPostgreSQLDB opens the videos store using the configured connection
// settings and verifies connectivity.
func NewPostgreSQLDB() (*sql.DB, error) {
	cfg := configuration.C.Database.Psql
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		logger.GetLogger().WithField("error", err).Error("Cannot open PostgreSQL connection")
		return nil, err
	}
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(30 * time.Minute)

	if err := db.Ping(); err != nil {
		logger.GetLogger().WithFields(map[string]interface{}{
			"error": err,
			"host":  cfg.Host,
			"name":  cfg.Name,
		}).Error("Cannot ping PostgreSQL")
		return nil, err
	}
	return db, nil
}
