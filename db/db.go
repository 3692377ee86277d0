package db

import "context"

type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
	Memory   DBType = "memory"
)

// DB is a store handle created once at startup and shared by all requests.
type DB interface {
	Connect() error
	Disconnect() error
	Ping(ctx context.Context) error
}
