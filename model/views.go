package model

import (
	"slices"
)

// ScheduledGame is a game along with the values derived for display.
type ScheduledGame struct {
	Game
	SortOrder        int      `json:"order"`
	OpponentName     string   `json:"opponentName"`
	Record           string   `json:"record"`
	ConferenceRecord string   `json:"conferenceRecord"`
	Favorite         Favorite `json:"favorite"`
	CFPID            string   `json:"cfpId,omitempty"`
}

type Schedule struct {
	DynastyID        string          `json:"dynastyId"`
	Year             int             `json:"year"`
	Record           string          `json:"record"`
	ConferenceRecord string          `json:"conferenceRecord"`
	Games            []ScheduledGame `json:"games"`
}

type GameDetail struct {
	ScheduledGame
	// The opponent's record after this game, if one was entered.
	OpponentRecordAfter string    `json:"opponentRecordAfter,omitempty"`
	CFPRound            *CFPRound `json:"cfpRound,omitempty"`
}

type BracketSlot struct {
	Slot     CFPSlot        `json:"slot"`
	CFPID    string         `json:"cfpId"`
	Round    CFPRound       `json:"round"`
	BowlName string         `json:"bowlName,omitempty"`
	Seeds    []int          `json:"seeds,omitempty"`
	Game     *ScheduledGame `json:"game,omitempty"`
}

type Bracket struct {
	DynastyID string        `json:"dynastyId"`
	Year      int           `json:"year"`
	Slots     []BracketSlot `json:"slots"`
}

type BowlHistory struct {
	DynastyID string          `json:"dynastyId"`
	Record    string          `json:"record"`
	Games     []ScheduledGame `json:"games"`
}

type SeasonSummary struct {
	Year             int    `json:"year"`
	Record           string `json:"record"`
	ConferenceRecord string `json:"conferenceRecord"`
	// How the season ended, e.g. "Won Rose Bowl" or "Lost CFP Semifinal".
	Postseason string `json:"postseason,omitempty"`
}

// SortGames orders a season's games for display. Ties keep their input order.
func SortGames(games []Game) {
	slices.SortStableFunc(games, func(a, b Game) int {
		if a.Year != b.Year {
			return a.Year - b.Year
		}
		return a.Order() - b.Order()
	})
}

// NewScheduledGame derives the display values of g from the games of its season.
func NewScheduledGame(season []Game, g Game) ScheduledGame {
	overall, conf := RecordThrough(season, &g)
	sg := ScheduledGame{
		Game:             g,
		SortOrder:        g.Order(),
		OpponentName:     DisplayName(g.Opponent),
		Record:           overall.String(),
		ConferenceRecord: conf.String(),
		Favorite:         ClassifyFavorite(g.Matchup()),
	}
	if g.CFPSlot.Valid() {
		sg.CFPID = CompositeID(g.CFPSlot, g.Year)
	}
	return sg
}
