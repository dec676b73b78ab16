package db

import (
	"context"
	"errors"

	"github.com/mww/dynasty_tracker/model"
)

var (
	ErrDynastyNotFound error = errors.New("dynasty not found")
	ErrGameNotFound    error = errors.New("game not found")
)

// DB is the store for dynasty documents and their games.
type DB interface {
	// Saves a new dynasty. The ID is generated if it is empty, and the created
	// time is set.
	AddDynasty(ctx context.Context, d *model.Dynasty) error
	GetDynasty(ctx context.Context, id string) (*model.Dynasty, error)
	// Lists all dynasties, most recently created first. Awards and standings are
	// not loaded.
	ListDynasties(ctx context.Context) ([]model.Dynasty, error)
	UpdateDynasty(ctx context.Context, d *model.Dynasty) error
	// Deletes the dynasty and all of its games.
	DeleteDynasty(ctx context.Context, id string) error

	// Inserts the game when it has no ID, otherwise updates it.
	SaveGame(ctx context.Context, g *model.Game) error
	// Inserts new games as one batch. Either all of them are stored or none
	// are, and on failure the games are left without IDs.
	AddGames(ctx context.Context, games []model.Game) error
	GetGame(ctx context.Context, dynastyID, gameID string) (*model.Game, error)
	// Lists the games of one season, or every season when year is 0. Games are
	// returned in the order they were first saved.
	ListGames(ctx context.Context, dynastyID string, year int) ([]model.Game, error)
	FindCFPGame(ctx context.Context, dynastyID string, slot model.CFPSlot, year int) (*model.Game, error)

	Close()
}

func clearIDs(games []model.Game) {
	for i := range games {
		games[i].ID = ""
	}
}
