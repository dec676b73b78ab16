package model

import (
	"reflect"
	"testing"
)

func TestSortGames(t *testing.T) {
	games := []Game{
		{ID: "nc", Year: 2025, Phase: PhaseCFPChampionship},
		{ID: "w3", Year: 2025, Week: 3, Phase: PhaseRegularSeason},
		{ID: "old", Year: 2024, Week: 9, Phase: PhaseRegularSeason},
		{ID: "ccg", Year: 2025, Phase: PhaseConferenceChampionship},
		{ID: "w1", Year: 2025, Week: 1, Phase: PhaseRegularSeason},
		{ID: "bowl", Year: 2025, Phase: PhaseBowl},
	}

	SortGames(games)

	var got []string
	for _, g := range games {
		got = append(got, g.ID)
	}
	want := []string{"old", "w1", "w3", "ccg", "bowl", "nc"}
	if !reflect.DeepEqual(want, got) {
		t.Errorf("expected: %v, got: %v", want, got)
	}
}

func TestNewScheduledGame(t *testing.T) {
	games := season()
	games[1].Opponent = "UGA"
	games[1].TeamRank = ip(10)
	games[1].OpponentRank = ip(15)
	games[1].Location = LocationHome

	sg := NewScheduledGame(games, games[1])
	if sg.Record != "2-0" {
		t.Errorf("record - expected: '2-0', got: '%s'", sg.Record)
	}
	if sg.ConferenceRecord != "1-0" {
		t.Errorf("conference record - expected: '1-0', got: '%s'", sg.ConferenceRecord)
	}
	if sg.OpponentName != "Georgia Bulldogs" {
		t.Errorf("opponent name - expected: 'Georgia Bulldogs', got: '%s'", sg.OpponentName)
	}
	if sg.Favorite != FavoriteTeam {
		t.Errorf("favorite - expected: '%s', got: '%s'", FavoriteTeam, sg.Favorite)
	}
	if sg.SortOrder != 2 {
		t.Errorf("order - expected: 2, got: %d", sg.SortOrder)
	}
	if sg.CFPID != "" {
		t.Errorf("expected no cfp id, got: '%s'", sg.CFPID)
	}

	playoff := Game{Year: 2025, Phase: PhaseCFPSemifinal, CFPSlot: CFPSemifinal2, Result: ResultLoss}
	sg = NewScheduledGame(append(games, playoff), playoff)
	if sg.CFPID != "cfpsf2-2025" {
		t.Errorf("cfp id - expected: 'cfpsf2-2025', got: '%s'", sg.CFPID)
	}
	if sg.Record != "3-2" {
		t.Errorf("record - expected: '3-2', got: '%s'", sg.Record)
	}
}

func TestDynastySeasons(t *testing.T) {
	d := &Dynasty{StartYear: 2024, CurrentYear: 2026}
	if !reflect.DeepEqual(d.Seasons(), []int{2024, 2025, 2026}) {
		t.Errorf("unexpected seasons: %v", d.Seasons())
	}

	d = &Dynasty{StartYear: 2024, CurrentYear: 2023}
	if d.Seasons() != nil {
		t.Errorf("expected no seasons, got: %v", d.Seasons())
	}
}
