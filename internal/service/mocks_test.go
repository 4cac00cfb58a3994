package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/cardgames-backend/internal/entity"
)

type mockConcentrationRepo struct {
	mock.Mock
}

func (that *mockConcentrationRepo) CreateOrUpdate(ctx context.Context, game *entity.ConcentrationGame) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockConcentrationRepo) GetByID(ctx context.Context, id string) (*entity.ConcentrationGame, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.ConcentrationGame)
	return game, args.Error(1)
}

type mockSetRepo struct {
	mock.Mock
}

func (that *mockSetRepo) CreateOrUpdate(ctx context.Context, game *entity.SetGame) error {
	args := that.Called(ctx, game)
	return args.Error(0)
}

func (that *mockSetRepo) GetByID(ctx context.Context, id string) (*entity.SetGame, error) {
	args := that.Called(ctx, id)
	game, _ := args.Get(0).(*entity.SetGame)
	return game, args.Error(1)
}
