package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/cardgames-backend/internal/apperror"
	"github.com/rocketscienceinc/cardgames-backend/internal/concentration"
	"github.com/rocketscienceinc/cardgames-backend/internal/entity"
	"github.com/rocketscienceinc/cardgames-backend/internal/grid"
	"github.com/rocketscienceinc/cardgames-backend/internal/random"
)

type ConcentrationService interface {
	NewGame(ctx context.Context, pairs int) (*entity.ConcentrationGame, error)
	GetGame(ctx context.Context, id string) (*entity.ConcentrationGame, error)
	ChooseCard(ctx context.Context, id string, index int) (*entity.ConcentrationGame, error)
	Layout(ctx context.Context, id string, frame grid.Rect) (*grid.Grid, error)
}

type concentrationRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.ConcentrationGame) error
	GetByID(ctx context.Context, id string) (*entity.ConcentrationGame, error)
}

type ConcentrationOptions struct {
	DefaultPairs    int
	MaxPairs        int
	CardAspectRatio float64
}

type concentrationService struct {
	logger  *slog.Logger
	repo    concentrationRepo
	seeder  random.Seeder
	options ConcentrationOptions
}

func NewConcentrationService(
	logger *slog.Logger,
	repo concentrationRepo,
	seeder random.Seeder,
	options ConcentrationOptions,
) ConcentrationService {
	return &concentrationService{
		logger:  logger.With("component", "concentration"),
		repo:    repo,
		seeder:  seeder,
		options: options,
	}
}

// NewGame deals a fresh table; zero pairs means the configured default and
// more than MaxPairs is rejected.
func (that *concentrationService) NewGame(ctx context.Context, pairs int) (*entity.ConcentrationGame, error) {
	log := that.logger.With("method", "NewGame")

	if pairs == 0 {
		pairs = that.options.DefaultPairs
	}

	if pairs > that.options.MaxPairs {
		return nil, fmt.Errorf("%w: %d pairs is above the limit of %d",
			apperror.ErrInvalidArgument, pairs, that.options.MaxPairs)
	}

	seed, err := that.seeder()
	if err != nil {
		return nil, fmt.Errorf("failed to seed game: %w", err)
	}

	state, err := concentration.New(pairs, concentration.NewIdentifierFactory(), random.New(seed))
	if err != nil {
		return nil, fmt.Errorf("failed to create concentration game: %w", err)
	}

	game := entity.NewConcentrationGame(uuid.NewString(), state)
	if err = that.repo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to save concentration game: %w", err)
	}

	log.Debug("game created", "gameID", game.ID, "pairs", pairs, "seed", seed)

	return game, nil
}

func (that *concentrationService) GetGame(ctx context.Context, id string) (*entity.ConcentrationGame, error) {
	game, err := that.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get concentration game: %w", err)
	}

	return game, nil
}

func (that *concentrationService) ChooseCard(ctx context.Context, id string, index int) (*entity.ConcentrationGame, error) {
	log := that.logger.With("method", "ChooseCard", "gameID", id)

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	if err = game.State.ChooseCard(index); err != nil {
		return nil, fmt.Errorf("failed to choose card: %w", err)
	}

	if err = that.repo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed to update concentration game: %w", err)
	}

	if game.State.IsFinished() {
		log.Info("game finished", "score", game.State.Score(), "flips", game.State.FlipsCount())
	}

	return game, nil
}

// Layout places one cell per card, every cell with the card aspect ratio.
func (that *concentrationService) Layout(ctx context.Context, id string, frame grid.Rect) (*grid.Grid, error) {
	if err := checkFrame(frame); err != nil {
		return nil, err
	}

	game, err := that.GetGame(ctx, id)
	if err != nil {
		return nil, err
	}

	layout := grid.AspectRatio{Ratio: that.options.CardAspectRatio, CellCount: len(game.State.Cards())}

	cells, err := grid.New(layout, frame)
	if err != nil {
		return nil, fmt.Errorf("failed to lay out concentration cards: %w", err)
	}

	return cells, nil
}

func checkFrame(frame grid.Rect) error {
	if !isPositive(frame.Width) || !isPositive(frame.Height) {
		return fmt.Errorf("%w: frame %vx%v must be positive", apperror.ErrInvalidArgument, frame.Width, frame.Height)
	}

	return nil
}

func isPositive(value float64) bool {
	return value > 0 && !math.IsInf(value, 1)
}
