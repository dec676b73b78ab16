package mockdb

import (
	"context"

	"github.com/mww/dynasty_tracker/model"
	"github.com/stretchr/testify/mock"
)

type DB struct {
	mock.Mock
}

func (db *DB) AddDynasty(ctx context.Context, d *model.Dynasty) error {
	args := db.Called(ctx, d)
	return args.Error(0)
}

func (db *DB) GetDynasty(ctx context.Context, id string) (*model.Dynasty, error) {
	args := db.Called(ctx, id)

	var d *model.Dynasty
	if args.Get(0) != nil {
		d = args.Get(0).(*model.Dynasty)
	}
	return d, args.Error(1)
}

func (db *DB) ListDynasties(ctx context.Context) ([]model.Dynasty, error) {
	args := db.Called(ctx)

	var r []model.Dynasty
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Dynasty)
	}
	return r, args.Error(1)
}

func (db *DB) UpdateDynasty(ctx context.Context, d *model.Dynasty) error {
	args := db.Called(ctx, d)
	return args.Error(0)
}

func (db *DB) DeleteDynasty(ctx context.Context, id string) error {
	args := db.Called(ctx, id)
	return args.Error(0)
}

func (db *DB) SaveGame(ctx context.Context, g *model.Game) error {
	args := db.Called(ctx, g)
	return args.Error(0)
}

func (db *DB) AddGames(ctx context.Context, games []model.Game) error {
	args := db.Called(ctx, games)
	return args.Error(0)
}

func (db *DB) GetGame(ctx context.Context, dynastyID, gameID string) (*model.Game, error) {
	args := db.Called(ctx, dynastyID, gameID)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (db *DB) ListGames(ctx context.Context, dynastyID string, year int) ([]model.Game, error) {
	args := db.Called(ctx, dynastyID, year)

	var r []model.Game
	if args.Get(0) != nil {
		r = args.Get(0).([]model.Game)
	}
	return r, args.Error(1)
}

func (db *DB) FindCFPGame(ctx context.Context, dynastyID string, slot model.CFPSlot, year int) (*model.Game, error) {
	args := db.Called(ctx, dynastyID, slot, year)

	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func (db *DB) Close() {
	db.Called()
}
