package db

import (
	"context"
	"database/sql"

	"github.com/connecthub/connecthub-backend/config"
	"github.com/connecthub/connecthub-backend/log"
	"github.com/lib/pq"
)

// DB bundles the collection storage and the session store of one backend.
type DB struct {
	Storage  Storage
	Sessions SessionStore
	closers  []func() error
}

// Init opens the backend named in c.
func Init(ctx context.Context, c *config.Config) (*DB, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	switch c.Backend {
	case config.BackendRedis:
		client, err := NewRedisClient(c.RedisURL)
		if err != nil {
			return nil, err
		}
		log.Info.Printf("Connected to redis...\n")
		return &DB{
			Storage:  &RedisStorage{Redis: client},
			Sessions: &RedisSessions{Redis: client},
			closers:  []func() error{client.Close},
		}, nil

	case config.BackendPostgres:
		db, err := sql.Open("postgres", c.PostgresURL)
		if err != nil {
			return nil, err
		}
		ps, err := NewPostgresStorage(ctx, db)
		if err != nil {
			db.Close()
			return nil, err
		}
		return &DB{
			Storage:  ps,
			Sessions: NewMemorySessions(),
			closers:  []func() error{db.Close},
		}, nil
	}

	return &DB{
		Storage:  NewMemoryStorage(),
		Sessions: NewMemorySessions(),
	}, nil
}

// Close releases every connection opened by Init.
func (d *DB) Close() error {
	var first error
	for _, c := range d.closers {
		if err := c(); err != nil && first == nil {
			first = err
		}
	}
	d.closers = nil
	return first
}

// PostgresStorage keeps collections in a two-column kv table.
type PostgresStorage struct {
	Db *sql.DB
}

const createKVTable = "CREATE TABLE kv(key VARCHAR PRIMARY KEY, value TEXT NOT NULL)"

// NewPostgresStorage creates the kv table, tolerating one that already exists.
func NewPostgresStorage(ctx context.Context, db *sql.DB) (*PostgresStorage, error) {
	log.Info.Printf("Creating Tables...\n")
	_, err := db.ExecContext(ctx, createKVTable)
	if err != nil {
		if perr, ok := err.(*pq.Error); ok {
			if perr.Code.Name() != "duplicate_table" {
				return nil, perr
			}
			log.Warn.Printf("%s: %s", perr.Code.Name(), perr.Error())
		} else {
			return nil, err
		}
	}

	log.Info.Printf("Tables Created...")
	return &PostgresStorage{Db: db}, nil
}

func (p *PostgresStorage) Load(ctx context.Context, key string) (string, bool, error) {
	var v string
	err := p.Db.QueryRowContext(ctx, "SELECT value FROM kv WHERE key = $1", key).Scan(&v)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return v, true, nil
}

func (p *PostgresStorage) Save(ctx context.Context, key, value string) error {
	_, err := p.Db.ExecContext(ctx,
		"INSERT INTO kv(key, value) VALUES($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value",
		key, value)
	return err
}
