package rest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/cardgames-backend/internal/entity"
	"github.com/rocketscienceinc/cardgames-backend/internal/grid"
)

type mockConcentrationService struct {
	mock.Mock
}

func (that *mockConcentrationService) NewGame(ctx context.Context, pairs int) (*entity.ConcentrationGame, error) {
	args := that.Called(ctx, pairs)
	game, _ := args.Get(0).(*entity.ConcentrationGame)
	return game, args.Error(1)
}

func (that *mockConcentrationService) GetGame(ctx context.Context, id string) (*entity.ConcentrationGame, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.ConcentrationGame)
	return game, args.Error(1)
}

func (that *mockConcentrationService) ChooseCard(ctx context.Context, id string, index int) (*entity.ConcentrationGame, error) {
	args := that.Called(ctx, id, index)
	game, _ := args.Get(0).(*entity.ConcentrationGame)
	return game, args.Error(1)
}

func (that *mockConcentrationService) Layout(ctx context.Context, id string, frame grid.Rect) (*grid.Grid, error) {
	args := that.Called(ctx, id, frame)
	cells, _ := args.Get(0).(*grid.Grid)
	return cells, args.Error(1)
}

type mockSetService struct {
	mock.Mock
}

func (that *mockSetService) NewGame(ctx context.Context) (*entity.SetGame, error) {
	args := that.Called(ctx)
	game, _ := args.Get(0).(*entity.SetGame)
	return game, args.Error(1)
}

func (that *mockSetService) GetGame(ctx context.Context, id string) (*entity.SetGame, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.SetGame)
	return game, args.Error(1)
}

func (that *mockSetService) Select(ctx context.Context, id string, index int) (*entity.SetGame, error) {
	args := that.Called(ctx, id, index)
	game, _ := args.Get(0).(*entity.SetGame)
	return game, args.Error(1)
}

func (that *mockSetService) DealMore(ctx context.Context, id string) (*entity.SetGame, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.SetGame)
	return game, args.Error(1)
}

func (that *mockSetService) Cheat(ctx context.Context, id string) ([3]int, bool, error) {
	args := that.Called(ctx, id)
	positions, _ := args.Get(0).([3]int)
	return positions, args.Bool(1), args.Error(2)
}

func (that *mockSetService) Layout(ctx context.Context, id string, frame grid.Rect) (*grid.Grid, error) {
	args := that.Called(ctx, id, frame)
	cells, _ := args.Get(0).(*grid.Grid)
	return cells, args.Error(1)
}
