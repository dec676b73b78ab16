package model

import (
	"encoding/json"
	"testing"
)

func TestParseTeam(t *testing.T) {
	tests := []struct {
		input    string
		expected *Team
	}{
		// abbreviations
		{input: "ALA", expected: TEAM_ALA},
		{input: "osu", expected: TEAM_OSU},
		{input: "MICH", expected: TEAM_MICH},
		{input: "TAMU", expected: TEAM_TAMU},
		{input: "ND", expected: TEAM_ND},

		// school
		{input: "Georgia", expected: TEAM_UGA},
		{input: "penn state", expected: TEAM_PSU},
		{input: "Texas A&M", expected: TEAM_TAMU},
		{input: "Miami", expected: TEAM_MIA},
		{input: "Miami (OH)", expected: TEAM_MIOH},

		// full name
		{input: "Oregon Ducks", expected: TEAM_ORE},
		{input: "Kansas State Wildcats", expected: TEAM_KSU},

		// mascot
		{input: "Crimson Tide", expected: TEAM_ALA},
		{input: "Buckeyes", expected: TEAM_OSU},
		{input: "Hokies", expected: TEAM_VT},

		// nicknames
		{input: "Bama", expected: TEAM_ALA},
		{input: "Vols", expected: TEAM_TENN},
		{input: "Mizzou", expected: TEAM_MIZ},
		{input: "The U", expected: TEAM_MIA},
		{input: " Noles ", expected: TEAM_FSU},

		// shared mascots go to the first team in the table
		{input: "Cougars", expected: TEAM_BYU},
		{input: "Tigers", expected: TEAM_CLEM},
	}

	for _, tc := range tests {
		a := ParseTeam(tc.input)
		if !tc.expected.Equals(a) {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestParseTeam_unknown(t *testing.T) {
	unknown := []string{"Montana State", "", "North Dakota State", "Puyallup"}
	for _, name := range unknown {
		if team := ParseTeam(name); team != nil {
			t.Errorf("expected no team for '%s', got: '%s'", name, team)
		}
	}
}

func TestFriendly(t *testing.T) {
	tests := []struct {
		t    *Team
		want string
	}{
		{t: TEAM_UGA, want: "Georgia Bulldogs"},
		{t: TEAM_TAMU, want: "Texas A&M Aggies"},
	}

	for _, tc := range tests {
		got := tc.t.Friendly()
		if tc.want != got {
			t.Errorf("expected: '%s', got: '%s'", tc.want, got)
		}
	}
}

func TestDisplayName(t *testing.T) {
	tests := []struct {
		opponent string
		want     string
	}{
		{opponent: "LSU", want: "LSU Tigers"},
		{opponent: "Bama", want: "Alabama Crimson Tide"},
		{opponent: "Sacramento State", want: "Sacramento State"},
	}

	for _, tc := range tests {
		if got := DisplayName(tc.opponent); got != tc.want {
			t.Errorf("expected: '%s', got: '%s'", tc.want, got)
		}
	}
}

func TestEquals(t *testing.T) {
	tests := []struct {
		a    *Team
		b    *Team
		want bool
	}{
		{a: TEAM_LSU, b: TEAM_LSU, want: true},
		{a: TEAM_OSU, b: TEAM_MICH, want: false},
		{a: TEAM_ALA, b: nil, want: false},
	}

	for _, tc := range tests {
		got := tc.a.Equals(tc.b)
		if tc.want != got {
			t.Errorf("expected: '%v', got: '%v'", tc.want, got)
		}
	}
}

func TestConferenceTeams(t *testing.T) {
	for _, c := range Conferences() {
		for _, team := range ConferenceTeams(c) {
			if team.Conference() != c {
				t.Errorf("%s is listed under %s but plays in %s", team, c, team.Conference())
			}
		}
	}

	if len(ConferenceTeams(CONF_SEC)) != 16 {
		t.Errorf("expected 16 SEC teams, got %d", len(ConferenceTeams(CONF_SEC)))
	}
	if ConferenceTeams(CONF_UNKNOWN) != nil {
		t.Errorf("expected no teams for an unknown conference")
	}
}

func TestParseConference(t *testing.T) {
	tests := []struct {
		input    string
		expected Conference
	}{
		{input: "SEC", expected: CONF_SEC},
		{input: "b1g", expected: CONF_B1G},
		{input: "Big Ten", expected: CONF_B1G},
		{input: "Big XII", expected: CONF_B12},
		{input: "Sun Belt", expected: CONF_SBC},
		{input: "Ivy", expected: CONF_UNKNOWN},
	}

	for _, tc := range tests {
		a := ParseConference(tc.input)
		if a != tc.expected {
			t.Errorf("input: '%s', expected: '%s', got '%s'", tc.input, tc.expected, a)
		}
	}
}

func TestTeamJSON(t *testing.T) {
	b, err := json.Marshal(TEAM_OU)
	if err != nil {
		t.Fatalf("error marshalling team: %v", err)
	}
	want := `{"abbreviation":"OU","school":"Oklahoma","mascot":"Sooners","conference":"SEC"}`
	if string(b) != want {
		t.Errorf("expected: '%s', got: '%s'", want, string(b))
	}
}

func TestParseBowl(t *testing.T) {
	tests := []struct {
		input string
		want  string
		found bool
	}{
		{input: "Citrus Bowl", want: "Citrus Bowl", found: true},
		{input: "citrus", want: "Citrus Bowl", found: true},
		{input: "rose bowl", want: "Rose Bowl", found: true},
		{input: "cfp national championship", want: NationalChampionshipName, found: true},
		{input: "Toilet Bowl", want: "", found: false},
	}

	for _, tc := range tests {
		got, found := ParseBowl(tc.input)
		if got != tc.want || found != tc.found {
			t.Errorf("input: '%s', expected: '%s' %v, got: '%s' %v", tc.input, tc.want, tc.found, got, found)
		}
	}
}
