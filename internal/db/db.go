package db

import (
	"context"
	"fmt"
	"net/url"

	"inkwell/internal/config"

	surrealdb "github.com/surrealdb/surrealdb.go"
	"github.com/surrealdb/surrealdb.go/pkg/connection"
	"github.com/surrealdb/surrealdb.go/pkg/connection/gorillaws"
	"github.com/surrealdb/surrealdb.go/surrealcbor"
)

// NewSurrealConnection подключается к SurrealDB по websocket с кодеком
// surrealcbor: без него time.Time и RecordID сериализуются в формат,
// который хранилище не принимает.
func NewSurrealConnection(ctx context.Context, cfg *config.Config) (*surrealdb.DB, error) {
	u, err := url.Parse(cfg.SurrealURL)
	if err != nil {
		return nil, fmt.Errorf("невалидный адрес SurrealDB: %w", err)
	}

	conf := connection.NewConfig(u)
	codec := surrealcbor.New()
	conf.Marshaler = codec
	conf.Unmarshaler = codec

	conn := gorillaws.New(conf)

	db, err := surrealdb.FromConnection(ctx, conn)
	if err != nil {
		return nil, fmt.Errorf("не удалось подключиться к SurrealDB: %w", err)
	}

	if cfg.SurrealUser != "" && cfg.SurrealPass != "" {
		if _, err := db.SignIn(ctx, &surrealdb.Auth{
			Username: cfg.SurrealUser,
			Password: cfg.SurrealPass,
		}); err != nil {
			return nil, fmt.Errorf("не удалось авторизоваться в SurrealDB: %w", err)
		}
	}

	if err := db.Use(ctx, cfg.SurrealNS, cfg.SurrealDB); err != nil {
		return nil, fmt.Errorf("не удалось выбрать namespace/database: %w", err)
	}

	return db, nil
}
