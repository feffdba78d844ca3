package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/fredymanu76/lms-platform-sub001/internal/configs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

type DBObject struct {
	connect *sql.DB
	logger  *zap.Logger
}

func NewPostgresConnection(cfg configs.DatabaseConfig, logger *zap.Logger) (*DBObject, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db, err := sql.Open(cfg.Driver, buildConnectionString(cfg))
	if err != nil {
		logger.Debug("Postgres-Client-Open error", zap.Error(err))
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	if err = db.PingContext(ctx); err != nil {
		db.Close()
		logger.Debug("Postgres-Client-Ping error", zap.Error(err))
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}
	logger.Debug("Successful connect to Postgres-Client")
	return &DBObject{connect: db, logger: logger}, nil
}

func NewDBObject(db *sql.DB, logger *zap.Logger) *DBObject {
	return &DBObject{connect: db, logger: logger}
}

func (d *DBObject) DB() *sql.DB {
	return d.connect
}

func (d *DBObject) Close() {
	d.connect.Close()
	d.logger.Debug("Successful close Postgres-Client")
}

func buildConnectionString(cfg configs.DatabaseConfig) string {
	return fmt.Sprintf("postgresql://%s:%s@%s:%d/%s?sslmode=%s",
		cfg.User, cfg.Password, cfg.Host, cfg.Port, cfg.Name, cfg.SSLMode)
}
