package model

import "testing"

func season() []Game {
	return []Game{
		{Year: 2025, Week: 1, Phase: PhaseRegularSeason, Result: ResultWin},
		{Year: 2025, Week: 2, Phase: PhaseRegularSeason, Result: ResultWin, ConferenceGame: true},
		{Year: 2025, Week: 3, Phase: PhaseRegularSeason, Result: ResultLoss, ConferenceGame: true},
		{Year: 2025, Week: 15, Phase: PhaseConferenceChampionship, Result: ResultWin, ConferenceGame: true},
		// Another season should never be counted
		{Year: 2024, Week: 1, Phase: PhaseRegularSeason, Result: ResultLoss, ConferenceGame: true},
		{Year: 2024, Week: 2, Phase: PhaseRegularSeason, Result: ResultLoss},
	}
}

func TestRecordThrough(t *testing.T) {
	games := season()

	tests := map[string]struct {
		cutoff   Game
		wantRec  string
		wantConf string
	}{
		"through week 1":        {cutoff: games[0], wantRec: "1-0", wantConf: "0-0"},
		"through week 2":        {cutoff: games[1], wantRec: "2-0", wantConf: "1-0"},
		"through week 3":        {cutoff: games[2], wantRec: "2-1", wantConf: "1-1"},
		"through championship":  {cutoff: games[3], wantRec: "3-1", wantConf: "1-1"},
		"other season":          {cutoff: games[5], wantRec: "0-2", wantConf: "0-1"},
		"season with no games":  {cutoff: Game{Year: 2030, Week: 5}, wantRec: "0-0", wantConf: "0-0"},
		"cutoff before week 1":  {cutoff: Game{Year: 2025, Week: 0}, wantRec: "0-0", wantConf: "0-0"},
		"cutoff after all play": {cutoff: Game{Year: 2025, Phase: PhaseCFPChampionship}, wantRec: "3-1", wantConf: "1-1"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			rec, conf := RecordThrough(games, &tc.cutoff)
			if rec.String() != tc.wantRec {
				t.Errorf("record - expected: '%s', got: '%s'", tc.wantRec, rec)
			}
			if conf.String() != tc.wantConf {
				t.Errorf("conference record - expected: '%s', got: '%s'", tc.wantConf, conf)
			}
		})
	}
}

func TestRecordThrough_unplayedGames(t *testing.T) {
	games := []Game{
		{Year: 2025, Week: 1, Phase: PhaseRegularSeason, Result: ResultWin},
		{Year: 2025, Week: 2, Phase: PhaseRegularSeason},
		{Year: 2025, Week: 3, Phase: PhaseRegularSeason},
	}

	rec, _ := RecordThrough(games, &games[2])
	if rec.String() != "1-0" {
		t.Errorf("expected unplayed games to not count, got: '%s'", rec)
	}

	considered := 0
	for _, g := range games {
		if g.Order() <= games[2].Order() {
			considered++
		}
	}
	if rec.Wins+rec.Losses > considered {
		t.Errorf("counted %d results from %d games", rec.Wins+rec.Losses, considered)
	}
}

func TestRecordThrough_nilCutoff(t *testing.T) {
	rec, conf := RecordThrough(season(), nil)
	if rec.String() != "0-0" || conf.String() != "0-0" {
		t.Errorf("expected empty records, got: '%s' and '%s'", rec, conf)
	}
}

func TestSeasonRecord(t *testing.T) {
	rec, conf := SeasonRecord(season(), 2025)
	if rec.String() != "3-1" {
		t.Errorf("record - expected: '3-1', got: '%s'", rec)
	}
	if conf.String() != "1-1" {
		t.Errorf("conference record - expected: '1-1', got: '%s'", conf)
	}
}

func TestAdvanceOpponentRecord(t *testing.T) {
	tests := map[string]struct {
		record string
		result Result
		conf   bool
		want   string
	}{
		"conference win":             {record: "5-2 (3-1)", result: ResultWin, conf: true, want: "5-3 (3-2)"},
		"conference loss":            {record: "5-2 (3-1)", result: ResultLoss, conf: true, want: "6-2 (4-1)"},
		"non conference keeps paren": {record: "5-2 (3-1)", result: ResultWin, conf: false, want: "5-3 (3-1)"},
		"no conference figures":      {record: "5-2", result: ResultLoss, conf: false, want: "6-2"},
		"no conference figures conf": {record: "5-2", result: ResultWin, conf: true, want: "5-3"},
		"no space before paren":      {record: "0-0(0-0)", result: ResultWin, conf: true, want: "0-1 (0-1)"},
		"double digits":              {record: "10-11", result: ResultWin, conf: false, want: "10-12"},
		"malformed":                  {record: "five and two", result: ResultWin, conf: true, want: "five and two"},
		"empty":                      {record: "", result: ResultLoss, conf: false, want: ""},
		"not played":                 {record: "5-2 (3-1)", result: ResultNone, conf: true, want: "5-2 (3-1)"},
		"wins overflow":              {record: "99999999999999999999-2 (1-0)", result: ResultWin, conf: true, want: "99999999999999999999-2 (1-0)"},
		"conf losses overflow":       {record: "5-2 (1-99999999999999999999)", result: ResultLoss, conf: true, want: "5-2 (1-99999999999999999999)"},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := AdvanceOpponentRecord(tc.record, tc.result, tc.conf)
			if tc.want != got {
				t.Errorf("expected: '%s', got: '%s'", tc.want, got)
			}
		})
	}
}

func TestValidRecordString(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{input: "5-2", want: true},
		{input: "12-0", want: true},
		{input: "5-2 (3-1)", want: true},
		{input: "5-2(3-1)", want: true},
		{input: "5 - 2", want: false},
		{input: "5-2-1", want: false},
		{input: "W-L", want: false},
		{input: "", want: false},
		{input: "99999999999999999999-2", want: false},
		{input: "5-2 (3-99999999999999999999)", want: false},
	}

	for _, tc := range tests {
		if got := ValidRecordString(tc.input); got != tc.want {
			t.Errorf("input: '%s', expected: %v, got: %v", tc.input, tc.want, got)
		}
	}
}
