package testutils

import (
	"context"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mww/dynasty_tracker/containers"
	"github.com/mww/dynasty_tracker/db"
	"github.com/mww/dynasty_tracker/model"
	"github.com/rs/zerolog/log"
)

const (
	// The seeded dynasty, its games are in SampleGames.
	DynastyID = "4b7f1a2e-6c1d-4f1e-9a0b-3d2c5e8f7a10"
	// A dynasty with no games.
	EmptyDynastyID = "9e3c7d21-0f4a-4c55-8b6e-1a2b3c4d5e6f"
)

func SampleDynasty() *model.Dynasty {
	return &model.Dynasty{
		ID:          DynastyID,
		Name:        "Hook 'Em Forever",
		School:      "TEX",
		Coach:       "Steve Sarkisian",
		StartYear:   2024,
		CurrentYear: 2025,
		Awards: []model.Award{
			{Year: 2024, Name: "Heisman Trophy", Player: "Quinn Ewers"},
		},
		Standings: map[int][]model.StandingsEntry{},
	}
}

// SampleGames is a 2024 season that ends in the national championship, and
// the start of 2025. The games are listed out of order.
func SampleGames() []model.Game {
	return []model.Game{
		{DynastyID: DynastyID, Year: 2024, Phase: model.PhaseCFPChampionship, CFPSlot: model.CFPChampionship, BowlName: model.NationalChampionshipName,
			Opponent: "OSU", Location: model.LocationNeutral, Result: model.ResultWin, TeamScore: 34, OpponentScore: 28, TeamSeed: 5, OpponentSeed: 2},
		{DynastyID: DynastyID, Year: 2024, Week: 1, Phase: model.PhaseRegularSeason,
			Opponent: "CSU", Location: model.LocationHome, Result: model.ResultWin, TeamScore: 52, OpponentScore: 0, TeamRank: ip(4)},
		{DynastyID: DynastyID, Year: 2024, Week: 2, Phase: model.PhaseRegularSeason,
			Opponent: "MICH", Location: model.LocationAway, Result: model.ResultWin, TeamScore: 31, OpponentScore: 12, TeamRank: ip(3), OpponentRank: ip(10), OpponentRecord: "1-0 (0-0)"},
		{DynastyID: DynastyID, Year: 2024, Week: 8, Phase: model.PhaseRegularSeason, ConferenceGame: true,
			Opponent: "UGA", Location: model.LocationHome, Result: model.ResultLoss, TeamScore: 15, OpponentScore: 30, TeamRank: ip(1), OpponentRank: ip(5), OpponentRecord: "5-1 (3-1)"},
		{DynastyID: DynastyID, Year: 2024, Week: 14, Phase: model.PhaseRegularSeason, ConferenceGame: true,
			Opponent: "TAMU", Location: model.LocationAway, Result: model.ResultWin, TeamScore: 17, OpponentScore: 7, TeamRank: ip(3), OpponentRank: ip(20)},
		{DynastyID: DynastyID, Year: 2024, Phase: model.PhaseConferenceChampionship, ConferenceGame: true,
			Opponent: "UGA", Location: model.LocationNeutral, Result: model.ResultLoss, TeamScore: 19, OpponentScore: 22, TeamRank: ip(2), OpponentRank: ip(5)},
		{DynastyID: DynastyID, Year: 2024, Phase: model.PhaseCFPQuarterfinal, CFPSlot: model.CFPQuarterfinal3, BowlName: "Peach Bowl",
			Opponent: "ASU", Location: model.LocationNeutral, Result: model.ResultWin, TeamScore: 39, OpponentScore: 31, TeamSeed: 5, OpponentSeed: 4},
		{DynastyID: DynastyID, Year: 2024, Phase: model.PhaseCFPSemifinal, CFPSlot: model.CFPSemifinal1, BowlName: "Orange Bowl",
			Opponent: "PSU", Location: model.LocationNeutral, Result: model.ResultWin, TeamScore: 28, OpponentScore: 14, TeamSeed: 5, OpponentSeed: 6},
		{DynastyID: DynastyID, Year: 2024, Phase: model.PhaseCFPFirstRound, CFPSlot: model.CFPFirstRound1,
			Opponent: "CLEM", Location: model.LocationHome, Result: model.ResultWin, TeamScore: 38, OpponentScore: 24, TeamSeed: 5, OpponentSeed: 12},
		{DynastyID: DynastyID, Year: 2025, Week: 1, Phase: model.PhaseRegularSeason,
			Opponent: "OSU", Location: model.LocationAway, Result: model.ResultLoss, TeamScore: 7, OpponentScore: 14, TeamRank: ip(1), OpponentRank: ip(3)},
		{DynastyID: DynastyID, Year: 2025, Week: 2, Phase: model.PhaseRegularSeason,
			Opponent: "SJSU", Location: model.LocationHome},
	}
}

type TestDB struct {
	container *containers.PostgresContainer
	DB        db.DB
	Clock     *clock.Mock
}

func NewTestDB() *TestDB {
	container := containers.NewPostgresContainer()
	clock := clock.NewMock()
	clock.Set(time.Date(2025, time.September, 6, 18, 0, 0, 0, time.UTC))

	db, err := db.NewPostgres(context.Background(), container.ConnectionString(), clock)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to db in test container")
	}

	if err := InsertTestDynasties(db); err != nil {
		log.Fatal().Err(err).Msg("error populating db in test container")
	}

	return &TestDB{
		container: container,
		DB:        db,
		Clock:     clock,
	}
}

func (db *TestDB) Shutdown() {
	db.DB.Close()
	db.container.Shutdown()
}

func InsertTestDynasties(db db.DB) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	empty := SampleDynasty()
	empty.ID = EmptyDynastyID
	empty.Name = "Fresh Start"
	empty.Awards = nil

	for _, d := range []*model.Dynasty{SampleDynasty(), empty} {
		if err := db.AddDynasty(ctx, d); err != nil {
			return err
		}
	}

	games := SampleGames()
	for i := range games {
		if err := db.SaveGame(ctx, &games[i]); err != nil {
			return err
		}
	}

	return nil
}

func ip(i int) *int {
	return &i
}
