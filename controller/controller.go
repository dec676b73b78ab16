package controller

import (
	"context"
	"fmt"
	"io"

	"github.com/itbasis/go-clock"
	"github.com/mww/dynasty_tracker/db"
	"github.com/mww/dynasty_tracker/model"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// Start a new dynasty. school can be anything model.ParseTeam understands,
	// a startYear of 0 means the current year.
	CreateDynasty(ctx context.Context, name, school, coach string, startYear int) (*model.Dynasty, error)
	GetDynasty(ctx context.Context, id string) (*model.Dynasty, error)
	ListDynasties(ctx context.Context) ([]model.Dynasty, error)
	DeleteDynasty(ctx context.Context, id string) error
	// Move the dynasty on to the next season.
	AdvanceSeason(ctx context.Context, id string) (*model.Dynasty, error)
	AddAward(ctx context.Context, dynastyID string, a model.Award) (*model.Dynasty, error)
	// Replace the conference standings for a season. An empty list removes them.
	SetStandings(ctx context.Context, dynastyID string, year int, entries []model.StandingsEntry) (*model.Dynasty, error)

	AddGame(ctx context.Context, dynastyID string, g *model.Game) (*model.Game, error)
	UpdateGame(ctx context.Context, dynastyID, gameID string, g *model.Game) (*model.Game, error)
	// Add the games from a schedule file (in CSV format). Either every game in
	// the file is valid and saved, or none are. Returns the number of games saved.
	ImportSchedule(ctx context.Context, dynastyID string, r io.Reader) (int, error)

	GetGameDetail(ctx context.Context, dynastyID, gameID string) (*model.GameDetail, error)
	// Look up a playoff game by its composite id, e.g. "cfpqf1-2025".
	GetCFPGame(ctx context.Context, dynastyID, cfpID string) (*model.GameDetail, error)
	GetSchedule(ctx context.Context, dynastyID string, year int) (*model.Schedule, error)
	GetCFPBracket(ctx context.Context, dynastyID string, year int) (*model.Bracket, error)
	GetBowlHistory(ctx context.Context, dynastyID string) (*model.BowlHistory, error)
	GetSeasonSummaries(ctx context.Context, dynastyID string) ([]model.SeasonSummary, error)
}

type controller struct {
	clock clock.Clock
	db    db.DB
}

func New(clock clock.Clock, db db.DB) (C, error) {
	if db == nil {
		return nil, fmt.Errorf("a db is required")
	}

	c := &controller{
		clock: clock,
		db:    db,
	}
	return c, nil
}

// ValidationError is returned when the data entered by a user is rejected.
// The message is meant to be shown to them.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string {
	return e.Msg
}

func validationErrorf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

var ErrBadCFPID = &ValidationError{Msg: "not a valid CFP game id"}
