package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Opener establishes a fresh, verified database handle.
type Opener func(ctx context.Context) (*sql.DB, error)

// DriverOpener returns an Opener for any registered database/sql driver.
// The handle is pinged before it is returned.
func DriverOpener(driver, dsn string) Opener {
	return func(ctx context.Context) (*sql.DB, error) {
		db, err := sql.Open(driver, dsn)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", driver, err)
		}

		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("ping %s: %w", driver, err)
		}
		return db, nil
	}
}

// MySQLOpener opens pooled MySQL handles for the given DSN.
func MySQLOpener(dsn string) Opener {
	open := DriverOpener("mysql", dsn)
	return func(ctx context.Context) (*sql.DB, error) {
		db, err := open(ctx)
		if err != nil {
			return nil, err
		}

		db.SetMaxIdleConns(5)
		db.SetMaxOpenConns(20)
		db.SetConnMaxLifetime(60 * time.Minute)
		return db, nil
	}
}
