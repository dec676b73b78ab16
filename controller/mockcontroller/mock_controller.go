package mockcontroller

import (
	"context"
	"io"

	"github.com/mww/dynasty_tracker/model"
	"github.com/stretchr/testify/mock"
)

type C struct {
	mock.Mock
}

func (c *C) CreateDynasty(ctx context.Context, name, school, coach string, startYear int) (*model.Dynasty, error) {
	args := c.Called(ctx, name, school, coach, startYear)
	return dynasty(args)
}

func (c *C) GetDynasty(ctx context.Context, id string) (*model.Dynasty, error) {
	args := c.Called(ctx, id)
	return dynasty(args)
}

func (c *C) ListDynasties(ctx context.Context) ([]model.Dynasty, error) {
	args := c.Called(ctx)

	var res []model.Dynasty
	if args.Get(0) != nil {
		res = args.Get(0).([]model.Dynasty)
	}
	return res, args.Error(1)
}

func (c *C) DeleteDynasty(ctx context.Context, id string) error {
	args := c.Called(ctx, id)
	return args.Error(0)
}

func (c *C) AdvanceSeason(ctx context.Context, id string) (*model.Dynasty, error) {
	args := c.Called(ctx, id)
	return dynasty(args)
}

func (c *C) AddAward(ctx context.Context, dynastyID string, a model.Award) (*model.Dynasty, error) {
	args := c.Called(ctx, dynastyID, a)
	return dynasty(args)
}

func (c *C) SetStandings(ctx context.Context, dynastyID string, year int, entries []model.StandingsEntry) (*model.Dynasty, error) {
	args := c.Called(ctx, dynastyID, year, entries)
	return dynasty(args)
}

func (c *C) AddGame(ctx context.Context, dynastyID string, g *model.Game) (*model.Game, error) {
	args := c.Called(ctx, dynastyID, g)
	return game(args)
}

func (c *C) UpdateGame(ctx context.Context, dynastyID, gameID string, g *model.Game) (*model.Game, error) {
	args := c.Called(ctx, dynastyID, gameID, g)
	return game(args)
}

func (c *C) ImportSchedule(ctx context.Context, dynastyID string, r io.Reader) (int, error) {
	args := c.Called(ctx, dynastyID, r)
	return args.Int(0), args.Error(1)
}

func (c *C) GetGameDetail(ctx context.Context, dynastyID, gameID string) (*model.GameDetail, error) {
	args := c.Called(ctx, dynastyID, gameID)
	return detail(args)
}

func (c *C) GetCFPGame(ctx context.Context, dynastyID, cfpID string) (*model.GameDetail, error) {
	args := c.Called(ctx, dynastyID, cfpID)
	return detail(args)
}

func (c *C) GetSchedule(ctx context.Context, dynastyID string, year int) (*model.Schedule, error) {
	args := c.Called(ctx, dynastyID, year)

	var s *model.Schedule
	if args.Get(0) != nil {
		s = args.Get(0).(*model.Schedule)
	}
	return s, args.Error(1)
}

func (c *C) GetCFPBracket(ctx context.Context, dynastyID string, year int) (*model.Bracket, error) {
	args := c.Called(ctx, dynastyID, year)

	var b *model.Bracket
	if args.Get(0) != nil {
		b = args.Get(0).(*model.Bracket)
	}
	return b, args.Error(1)
}

func (c *C) GetBowlHistory(ctx context.Context, dynastyID string) (*model.BowlHistory, error) {
	args := c.Called(ctx, dynastyID)

	var h *model.BowlHistory
	if args.Get(0) != nil {
		h = args.Get(0).(*model.BowlHistory)
	}
	return h, args.Error(1)
}

func (c *C) GetSeasonSummaries(ctx context.Context, dynastyID string) ([]model.SeasonSummary, error) {
	args := c.Called(ctx, dynastyID)

	var res []model.SeasonSummary
	if args.Get(0) != nil {
		res = args.Get(0).([]model.SeasonSummary)
	}
	return res, args.Error(1)
}

func dynasty(args mock.Arguments) (*model.Dynasty, error) {
	var d *model.Dynasty
	if args.Get(0) != nil {
		d = args.Get(0).(*model.Dynasty)
	}
	return d, args.Error(1)
}

func game(args mock.Arguments) (*model.Game, error) {
	var g *model.Game
	if args.Get(0) != nil {
		g = args.Get(0).(*model.Game)
	}
	return g, args.Error(1)
}

func detail(args mock.Arguments) (*model.GameDetail, error) {
	var d *model.GameDetail
	if args.Get(0) != nil {
		d = args.Get(0).(*model.GameDetail)
	}
	return d, args.Error(1)
}
