package model

import (
	"encoding/json"
	"testing"
)

func ip(i int) *int {
	return &i
}

func TestClassifyFavorite(t *testing.T) {
	tests := map[string]struct {
		m    Matchup
		want Favorite
	}{
		// Both ranked
		"home rank beats away":       {m: Matchup{TeamRank: ip(10), OpponentRank: ip(15), Location: LocationHome}, want: FavoriteTeam},
		"home bonus not enough":      {m: Matchup{TeamRank: ip(20), OpponentRank: ip(3), Location: LocationHome}, want: FavoriteOpponent},
		"home bonus flips":           {m: Matchup{TeamRank: ip(12), OpponentRank: ip(8), Location: LocationHome}, want: FavoriteTeam},
		"home bonus ties":            {m: Matchup{TeamRank: ip(13), OpponentRank: ip(8), Location: LocationHome}, want: FavoriteTeam},
		"away tie goes to home team": {m: Matchup{TeamRank: ip(4), OpponentRank: ip(9), Location: LocationAway}, want: FavoriteOpponent},
		"away better rank":           {m: Matchup{TeamRank: ip(2), OpponentRank: ip(9), Location: LocationAway}, want: FavoriteTeam},
		"neutral lower rank":         {m: Matchup{TeamRank: ip(7), OpponentRank: ip(6), Location: LocationNeutral}, want: FavoriteOpponent},
		"neutral tie":                {m: Matchup{TeamRank: ip(7), OpponentRank: ip(7), Location: LocationNeutral}, want: FavoriteUnknown},

		// One ranked
		"ranked at home":             {m: Matchup{TeamRank: ip(25), Location: LocationHome}, want: FavoriteTeam},
		"ranked away stays ranked":   {m: Matchup{TeamRank: ip(20), Location: LocationAway}, want: FavoriteTeam},
		"ranked away drops out":      {m: Matchup{TeamRank: ip(21), Location: LocationAway}, want: FavoriteOpponent},
		"ranked neutral":             {m: Matchup{TeamRank: ip(25), Location: LocationNeutral}, want: FavoriteTeam},
		"opponent ranked at home":    {m: Matchup{OpponentRank: ip(24), Location: LocationAway}, want: FavoriteOpponent},
		"opponent ranked on road":    {m: Matchup{OpponentRank: ip(22), Location: LocationHome}, want: FavoriteTeam},
		"opponent ranked on road ok": {m: Matchup{OpponentRank: ip(18), Location: LocationHome}, want: FavoriteOpponent},
		"ratings ignored":            {m: Matchup{TeamRank: ip(1), TeamRating: ip(60), OpponentRating: ip(99), Location: LocationNeutral}, want: FavoriteTeam},
		"rank past 25 is unranked":   {m: Matchup{TeamRank: ip(30), OpponentRank: ip(25), Location: LocationNeutral}, want: FavoriteOpponent},

		// Neither ranked
		"better rating":           {m: Matchup{TeamRating: ip(85), OpponentRating: ip(80), Location: LocationNeutral}, want: FavoriteTeam},
		"home rating bonus":       {m: Matchup{TeamRating: ip(80), OpponentRating: ip(82), Location: LocationHome}, want: FavoriteTeam},
		"home rating bonus tie":   {m: Matchup{TeamRating: ip(80), OpponentRating: ip(83), Location: LocationHome}, want: FavoriteTeam},
		"away rating bonus":       {m: Matchup{TeamRating: ip(82), OpponentRating: ip(80), Location: LocationAway}, want: FavoriteOpponent},
		"neutral rating tie":      {m: Matchup{TeamRating: ip(80), OpponentRating: ip(80), Location: LocationNeutral}, want: FavoriteUnknown},
		"missing opponent rating": {m: Matchup{TeamRating: ip(80), Location: LocationHome}, want: FavoriteUnknown},
		"nothing known":           {m: Matchup{Location: LocationHome}, want: FavoriteUnknown},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			got := ClassifyFavorite(tc.m)
			if tc.want != got {
				t.Errorf("expected: '%s', got: '%s'", tc.want, got)
			}
		})
	}
}

func TestFavoriteJSON(t *testing.T) {
	tests := []struct {
		f    Favorite
		want string
	}{
		{f: FavoriteTeam, want: `"favorite"`},
		{f: FavoriteOpponent, want: `"underdog"`},
		{f: FavoriteUnknown, want: `null`},
	}

	for _, tc := range tests {
		b, err := json.Marshal(tc.f)
		if err != nil {
			t.Fatalf("error marshalling favorite: %v", err)
		}
		if string(b) != tc.want {
			t.Errorf("expected: '%s', got: '%s'", tc.want, string(b))
		}
	}
}
