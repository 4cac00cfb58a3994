package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/cardgames-backend/internal/entity"
	"github.com/rocketscienceinc/cardgames-backend/internal/grid"
	"github.com/rocketscienceinc/cardgames-backend/internal/random"
	"github.com/rocketscienceinc/cardgames-backend/internal/setgame"
)

type SetService interface {
	NewGame(ctx context.Context) (*entity.SetGame, error)
	GetGame(ctx context.Context, id string) (*entity.SetGame, error)
	Select(ctx context.Context, id string, index int) (*entity.SetGame, error)
	DealMore(ctx context.Context, id string) (*entity.SetGame, error)
	Cheat(ctx context.Context, id string) ([3]int, bool, error)
	Layout(ctx context.Context, id string, frame grid.Rect) (*grid.Grid, error)
}

type setRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.SetGame) error
	GetByID(ctx context.Context, id string) (*entity.SetGame, error)
}

type setService struct {
	logger *slog.Logger
	repo   setRepo
	seeder random.Seeder
}

func NewSetService(logger *slog.Logger, repo setRepo, seeder random.Seeder) SetService {
	return &setService{
		logger: logger.With("component", "set"),
		repo:   repo,
		seeder: seeder,
	}
}

func (that *setService) NewGame(ctx context.Context) (*entity.SetGame, error) {
	log := that.logger.With("method", "NewGame")

	seed, err := that.seeder()
	if err != nil {
		return nil, fmt.Errorf("failed to seed game: %w", err)
	}

	game := entity.NewSetGame(uuid.NewString(), setgame.New(random.New(seed)))
	if err = that.repo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save set game: %w", err)
	}

	log.Debug("game created", "gameID", game.ID, "seed", seed)

	return game, nil
}

func (that *setService) GetGame(ctx context.Context, id string) (*entity.SetGame, error) {
	game, err := that.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get set game: %w", err)
	}

	return game, nil
}

// Select is a touch on the board card at index. A touch that completes a
// Set deals right away: the Set scores and its cards are replaced. With an
// empty deck the Set stays selected and the next touch clears it unscored.
func (that *setService) Select(ctx context.Context, id string, index int) (*entity.SetGame, error) {
	return that.update(ctx, id, func(state *setgame.Game) error {
		if err := state.Touch(index); err != nil {
			return fmt.Errorf("failed to select card: %w", err)
		}

		if !state.IsSelectionSet() {
			return nil
		}

		if err := state.DealMore(); err != nil {
			return fmt.Errorf("failed to replace found set: %w", err)
		}
		return nil
	})
}

// DealMore scores the request and deals three more cards.
func (that *setService) DealMore(ctx context.Context, id string) (*entity.SetGame, error) {
	return that.update(ctx, id, func(state *setgame.Game) error {
		if err := state.DealMore(); err != nil {
			return fmt.Errorf("failed to deal cards: %w", err)
		}
		return nil
	})
}

func (that *setService) update(ctx context.Context, id string, move func(state *setgame.Game) error) (*entity.SetGame, error) {
	log := that.logger.With("method", "update", "gameID", id)

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = move(game.State); err != nil {
		return nil, err
	}

	if err = that.repo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update set game: %w", err)
	}

	if game.Status() == entity.StatusFinished {
		log.Info("game finished", "score", game.State.Score(), "flips", game.State.Flips())
	}

	return game, nil
}

// Cheat reports the first Set on the board without changing the game.
func (that *setService) Cheat(ctx context.Context, id string) ([3]int, bool, error) {
	game, err := that.GetGame(ctx, id)
	if err != nil {
		return [3]int{}, false, err
	}

	positions, found := game.State.FindSetOnBoard()

	return positions, found, nil
}

// Layout arranges the board as rows x columns from BoardDimensions.
func (that *setService) Layout(ctx context.Context, id string, frame grid.Rect) (*grid.Grid, error) {
	if err := checkFrame(frame); err != nil {
		return nil, err
	}

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	cells, err := grid.New(grid.BoardLayout(len(game.State.Board())), frame)
	if err != nil {
		return nil, fmt.Errorf("failed to lay out set board: %w", err)
	}

	return cells, nil
}
