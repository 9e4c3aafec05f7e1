package storage

import (
	"context"
	"database/sql"
)

// Acquirer hands out the live handle; implemented by database.Manager.
type Acquirer interface {
	Acquire(ctx context.Context) (*sql.DB, error)
}

// MySQLClient wraps direct SQL access for the employee table. It never
// caches a handle: every operation goes through Acquire so reconnects are
// observed immediately.
type MySQLClient struct {
	conns Acquirer
}

// NewMySQLClient wires the connection source.
func NewMySQLClient(conns Acquirer) *MySQLClient {
	return &MySQLClient{conns: conns}
}
