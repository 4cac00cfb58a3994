package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/cardgames-backend/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

type ConcentrationRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.ConcentrationGame) error
	GetByID(ctx context.Context, id string) (*entity.ConcentrationGame, error)
	DeleteByID(ctx context.Context, id string) error
}

type SetRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.SetGame) error
	GetByID(ctx context.Context, id string) (*entity.SetGame, error)
	DeleteByID(ctx context.Context, id string) error
}

// dbGame keeps JSON encoded games under "<kind>:<id>". Every write
// restarts the key's time to live; zero ttl means no expiry.
type dbGame[T any] struct {
	client *redis.Client
	kind   string
	ttl    time.Duration
	id     func(*T) string
}

func NewConcentrationRepository(client *redis.Client, ttl time.Duration) ConcentrationRepository {
	return &dbGame[entity.ConcentrationGame]{
		client: client,
		kind:   entity.ConcentrationKind,
		ttl:    ttl,
		id:     func(game *entity.ConcentrationGame) string { return game.ID },
	}
}

func NewSetRepository(client *redis.Client, ttl time.Duration) SetRepository {
	return &dbGame[entity.SetGame]{
		client: client,
		kind:   entity.SetKind,
		ttl:    ttl,
		id:     func(game *entity.SetGame) string { return game.ID },
	}
}

func (that *dbGame[T]) key(id string) string {
	return that.kind + ":" + id
}

func (that *dbGame[T]) CreateOrUpdate(ctx context.Context, game *T) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal %s game: %w", that.kind, err)
	}

	err = that.client.Set(ctx, that.key(that.id(game)), gameJSON, that.ttl).Err()
	if err != nil {
		return fmt.Errorf("failed to set %s game: %w", that.kind, err)
	}

	return nil
}

func (that *dbGame[T]) GetByID(ctx context.Context, id string) (*T, error) {
	response, err := that.client.Get(ctx, that.key(id)).Bytes()

	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get %s game by id: %w", that.kind, err)
	}

	var existingGame T
	if err = json.Unmarshal(response, &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s game: %w", that.kind, err)
	}

	return &existingGame, nil
}

func (that *dbGame[T]) DeleteByID(ctx context.Context, id string) error {
	deleted, err := that.client.Del(ctx, that.key(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to delete %s game by id: %w", that.kind, err)
	}

	if deleted == 0 {
		return ErrGameNotFound
	}

	return nil
}
