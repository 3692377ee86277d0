package postgres

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	_ "github.com/lib/pq"
)

type PostgresDB struct {
	Conn *sql.DB
	URL  string

	once    sync.Once
	connErr error
}

func NewPostgresDB(url string) *PostgresDB {
	return &PostgresDB{URL: url}
}

// Connect opens the pool and pings it. Only the first call does any work.
func (p *PostgresDB) Connect() error {
	p.once.Do(func() {
		conn, err := sql.Open("postgres", p.URL)
		if err != nil {
			p.connErr = err
			return
		}

		conn.SetMaxOpenConns(5)
		conn.SetMaxIdleConns(2)
		conn.SetConnMaxLifetime(30 * time.Minute)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := conn.PingContext(ctx); err != nil {
			_ = conn.Close()
			p.connErr = err
			return
		}
		p.Conn = conn
	})
	return p.connErr
}

func (p *PostgresDB) Disconnect() error {
	if p.Conn != nil {
		return p.Conn.Close()
	}
	return nil
}

func (p *PostgresDB) Ping(ctx context.Context) error {
	if p.Conn == nil {
		return errors.New("postgres: not connected")
	}
	return p.Conn.PingContext(ctx)
}
