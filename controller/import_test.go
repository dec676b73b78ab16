package controller

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/mww/dynasty_tracker/model"
	"github.com/stretchr/testify/mock"
)

func TestScheduleCSVReader(t *testing.T) {
	tests := map[string]struct {
		csvData string
		err     error
		want    []model.Game
	}{
		"required columns": {csvData: scheduleRequiredOnly, want: []model.Game{
			{Year: 2025, Week: 1, Phase: model.PhaseRegularSeason, Opponent: "Kent State", Location: model.LocationHome, Result: model.ResultWin, TeamScore: 56, OpponentScore: 3},
			{Year: 2025, Week: 2, Phase: model.PhaseRegularSeason, Opponent: "Texas", Location: model.LocationHome, Result: model.ResultLoss, TeamScore: 20, OpponentScore: 27},
			{Year: 2025, Week: 3, Phase: model.PhaseRegularSeason, Opponent: "Purdue", Location: model.LocationHome},
		}},
		"all columns, any order": {csvData: scheduleAllColumns, want: []model.Game{
			{Year: 2025, Week: 9, Phase: model.PhaseRegularSeason, Opponent: "Oregon", Location: model.LocationAway, ConferenceGame: true, Result: model.ResultWin, TeamScore: 24, OpponentScore: 21, OpponentRecord: "6-1 (4-0)"},
			{Year: 2025, Phase: model.PhaseBowl, BowlName: "Citrus", Opponent: "LSU", Location: model.LocationNeutral, Result: model.ResultWin, TeamScore: 35, OpponentScore: 31},
			{Year: 2025, Phase: model.PhaseCFPFirstRound, Opponent: "Indiana", Location: model.LocationHome, Result: model.ResultWin, TeamScore: 30, OpponentScore: 17, TeamSeed: 5, OpponentSeed: 12},
			{Year: 2025, Phase: model.PhaseCFPQuarterfinal, BowlName: "Rose Bowl", Opponent: "Oregon", Location: model.LocationNeutral, Result: model.ResultLoss, TeamScore: 10, OpponentScore: 13},
		}},
		"missing columns": {csvData: "YEAR,WEEK,OPPONENT,RESULT\n2025,1,Texas,W\n", err: errors.New("schedule file is missing required columns: TEAM SCORE, OPP SCORE")},
		"bad number":      {csvData: "YEAR,WEEK,OPPONENT,RESULT,TEAM SCORE,OPP SCORE\n2025,one,Texas,W,10,3\n", err: errors.New("line 2: WEEK must be a number, got 'one'")},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			var got []model.Game
			reader, err := newScheduleCSVReader(strings.NewReader(tc.csvData))
			if err == nil {
				for {
					g, lineErr := reader.readLine()
					if lineErr != nil {
						if !errors.Is(lineErr, io.EOF) {
							err = lineErr
						}
						break
					}
					got = append(got, *g)
				}
			}

			if !errorsEqual(tc.err, err) {
				t.Fatalf("expected err '%v', got '%v'", tc.err, err)
			}
			if tc.err != nil {
				return
			}
			if len(tc.want) != len(got) {
				t.Fatalf("expected %d games, got %d", len(tc.want), len(got))
			}
			for i := range tc.want {
				w, g := tc.want[i], got[i]
				if w.Year != g.Year || w.Week != g.Week || w.Phase != g.Phase || w.Opponent != g.Opponent ||
					w.Location != g.Location || w.ConferenceGame != g.ConferenceGame || w.Result != g.Result ||
					w.TeamScore != g.TeamScore || w.OpponentScore != g.OpponentScore || w.BowlName != g.BowlName ||
					w.OpponentRecord != g.OpponentRecord || w.TeamSeed != g.TeamSeed || w.OpponentSeed != g.OpponentSeed {
					t.Errorf("game %d\nwanted: %+v\ngot:    %+v", i, w, g)
				}
			}
		})
	}
}

func TestImportSchedule(t *testing.T) {
	ctx := context.Background()
	ctrl := testController(t)

	d, err := ctrl.CreateDynasty(ctx, "Imported", "Ohio State", "Ryan Day", 0)
	if err != nil {
		t.Fatalf("error creating dynasty: %v", err)
	}

	n, err := ctrl.ImportSchedule(ctx, d.ID, strings.NewReader(scheduleAllColumns))
	if err != nil {
		t.Fatalf("error importing schedule: %v", err)
	}
	if n != 4 {
		t.Errorf("expected 4 games imported, got %d", n)
	}

	b, err := ctrl.GetCFPBracket(ctx, d.ID, 2025)
	if err != nil {
		t.Fatalf("error getting bracket: %v", err)
	}
	if b.Slots[0].Game == nil || b.Slots[0].Game.Opponent != "Indiana" {
		t.Errorf("expected the first round game in cfpfr1, got: %+v", b.Slots[0].Game)
	}
	if b.Slots[7].Game == nil || b.Slots[7].Game.Record != "3-1" {
		t.Errorf("expected the Rose Bowl in cfpqf4, got: %+v", b.Slots[7].Game)
	}

	// Importing the same playoff games again fails, and nothing is saved
	_, err = ctrl.ImportSchedule(ctx, d.ID, strings.NewReader(scheduleAllColumns))
	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected a validation error, got: %v", err)
	}
	if !strings.HasPrefix(verr.Msg, "line 4: cfpfr1-2025 is already taken") {
		t.Errorf("unexpected message: '%s'", verr.Msg)
	}

	s, err := ctrl.GetSchedule(ctx, d.ID, 2025)
	if err != nil {
		t.Fatalf("error getting schedule: %v", err)
	}
	if len(s.Games) != 4 {
		t.Errorf("expected 4 games after the failed import, got %d", len(s.Games))
	}
}

func TestImportSchedule_invalidLine(t *testing.T) {
	ctx := context.Background()
	ctrl := testController(t)

	d, err := ctrl.CreateDynasty(ctx, "Bad Import", "Michigan", "", 2025)
	if err != nil {
		t.Fatalf("error creating dynasty: %v", err)
	}

	tests := map[string]struct {
		csvData string
		err     error
	}{
		"week out of range": {csvData: "YEAR,WEEK,OPPONENT,RESULT,TEAM SCORE,OPP SCORE\n2025,1,Texas,W,10,3\n2025,17,Ohio State,L,3,10\n", err: errors.New("line 3: week must be between 1 and 14, got 17")},
		"score mismatch":    {csvData: "YEAR,WEEK,OPPONENT,RESULT,TEAM SCORE,OPP SCORE\n2025,1,Texas,W,3,10\n", err: errors.New("line 2: a win needs a higher score, got 3-10")},
		"slot twice":        {csvData: "YEAR,WEEK,OPPONENT,RESULT,TEAM SCORE,OPP SCORE,BOWL\n2025,,Texas,W,10,3,Sugar\n2025,,Ohio State,W,10,3,Sugar Bowl\n", err: errors.New("line 3: cfpqf1-2025 is already used on line 2")},
		"empty file":        {csvData: "YEAR,WEEK,OPPONENT,RESULT,TEAM SCORE,OPP SCORE\n", err: errors.New("the schedule file has no games")},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			n, err := ctrl.ImportSchedule(ctx, d.ID, strings.NewReader(tc.csvData))
			if !errorsEqual(tc.err, err) {
				t.Errorf("expected err '%v', got '%v'", tc.err, err)
			}
			if n != 0 {
				t.Errorf("expected no games to be saved, got %d", n)
			}
		})
	}

	games, err := testDB.DB.ListGames(ctx, d.ID, 0)
	if err != nil {
		t.Fatalf("error listing games: %v", err)
	}
	if len(games) != 0 {
		t.Errorf("expected no games to be saved, got %d", len(games))
	}
}

func TestImportSchedule_saveFails(t *testing.T) {
	ctrl, mockDB := newMockController(t)
	saveErr := errors.New("connection reset")

	mockDB.On("GetDynasty", mock.Anything, "d1").Return(&model.Dynasty{ID: "d1", StartYear: 2025, CurrentYear: 2025}, nil)
	mockDB.On("AddGames", mock.Anything, mock.MatchedBy(func(games []model.Game) bool {
		return len(games) == 3
	})).Return(saveErr)

	n, err := ctrl.ImportSchedule(context.Background(), "d1", strings.NewReader(scheduleRequiredOnly))
	if !errors.Is(err, saveErr) {
		t.Errorf("expected the save error, got: %v", err)
	}
	if n != 0 {
		t.Errorf("expected no games to be reported as saved, got %d", n)
	}

	// Games are only ever saved as one batch
	mockDB.AssertNotCalled(t, "SaveGame", mock.Anything, mock.Anything)
	mockDB.AssertExpectations(t)
}

const scheduleRequiredOnly = `YEAR,WEEK,OPPONENT,RESULT,TEAM SCORE,OPP SCORE
2025,1,Kent State,W,56,3
2025,2,Texas,loss,20,27
2025,3,Purdue,,,
`

const scheduleAllColumns = `Opponent,Location,Conf,Year,Week,Result,Team Score,Opp Score,Opp Record,Bowl,Phase,Seed,Opp Seed,Notes
Oregon,@,Y,2025,9,W,24,21,6-1 (4-0),,,,,big win
LSU,neutral,,2025,,W,35,31,,Citrus,,,,
Indiana,home,,2025,,W,30,17,,,cfp first round,5,12,
Oregon,neutral,,2025,,L,10,13,,Rose Bowl,,,,
`
