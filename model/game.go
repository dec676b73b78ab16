package model

import (
	"strings"
	"time"
)

// Phase is the part of the season a game is played in. A game is in exactly
// one phase, which replaces the set of independent is* flags older documents
// carry (see GameFlags).
type Phase string

const (
	PhaseUnknown                Phase = ""
	PhaseRegularSeason          Phase = "regular"
	PhaseConferenceChampionship Phase = "conf_championship"
	PhaseBowl                   Phase = "bowl"
	PhaseCFPFirstRound          Phase = "cfp_first_round"
	PhaseCFPQuarterfinal        Phase = "cfp_quarterfinal"
	PhaseCFPSemifinal           Phase = "cfp_semifinal"
	PhaseCFPChampionship        Phase = "cfp_championship"
)

const (
	LastRegularSeasonWeek = 14

	orderConferenceChampionship = 15
	orderBowl                   = 16
	orderCFPFirstRound          = 20
	orderCFPQuarterfinal        = 21
	orderCFPSemifinal           = 22
	orderCFPChampionship        = 23
)

func ParsePhase(p string) Phase {
	p = strings.ToLower(strings.TrimSpace(p))
	switch p {
	case "regular", "regular season", "reg":
		return PhaseRegularSeason
	case "conf_championship", "conference championship", "ccg":
		return PhaseConferenceChampionship
	case "bowl":
		return PhaseBowl
	case "cfp_first_round", "cfp first round", "cfpfr":
		return PhaseCFPFirstRound
	case "cfp_quarterfinal", "cfp quarterfinal", "cfpqf":
		return PhaseCFPQuarterfinal
	case "cfp_semifinal", "cfp semifinal", "cfpsf":
		return PhaseCFPSemifinal
	case "cfp_championship", "cfp championship", "national championship", "cfpnc":
		return PhaseCFPChampionship
	default:
		return PhaseUnknown
	}
}

func (p Phase) IsCFP() bool {
	switch p {
	case PhaseCFPFirstRound, PhaseCFPQuarterfinal, PhaseCFPSemifinal, PhaseCFPChampionship:
		return true
	}
	return false
}

func (p Phase) IsPostseason() bool {
	return p == PhaseConferenceChampionship || p == PhaseBowl || p.IsCFP()
}

// GameFlags is the loosely typed flag scheme that manually entered documents
// use. Any combination can be set, PhaseFromFlags picks one.
type GameFlags struct {
	ConferenceGame         bool `json:"isConferenceGame"`
	ConferenceChampionship bool `json:"isConferenceChampionship"`
	BowlGame               bool `json:"isBowlGame"`
	CFPFirstRound          bool `json:"isCFPFirstRound"`
	CFPQuarterfinal        bool `json:"isCFPQuarterfinal"`
	CFPSemifinal           bool `json:"isCFPSemifinal"`
	CFPChampionship        bool `json:"isCFPChampionship"`
}

// PhaseFromFlags maps the flag scheme onto a single phase. When more than one
// flag is set the first match wins in this order: conference championship,
// CFP championship, semifinal, quarterfinal, first round, bowl. With no flags
// a positive week is a regular season game.
func PhaseFromFlags(f GameFlags, week int) Phase {
	switch {
	case f.ConferenceChampionship:
		return PhaseConferenceChampionship
	case f.CFPChampionship:
		return PhaseCFPChampionship
	case f.CFPSemifinal:
		return PhaseCFPSemifinal
	case f.CFPQuarterfinal:
		return PhaseCFPQuarterfinal
	case f.CFPFirstRound:
		return PhaseCFPFirstRound
	case f.BowlGame:
		return PhaseBowl
	case week > 0:
		return PhaseRegularSeason
	default:
		return PhaseUnknown
	}
}

type Game struct {
	ID             string    `json:"id"`
	DynastyID      string    `json:"dynastyId"`
	Year           int       `json:"year"`
	Week           int       `json:"week"`
	Phase          Phase     `json:"phase"`
	BowlName       string    `json:"bowlName,omitempty"`
	BowlWeek       int       `json:"bowlWeek,omitempty"`
	Opponent       string    `json:"opponent"`
	Location       Location  `json:"location"`
	Result         Result    `json:"result"`
	TeamScore      int       `json:"teamScore"`
	OpponentScore  int       `json:"opponentScore"`
	ConferenceGame bool      `json:"isConferenceGame"`
	TeamRank       *int      `json:"teamRank,omitempty"`
	OpponentRank   *int      `json:"opponentRank,omitempty"`
	TeamRating     *int      `json:"teamRating,omitempty"`
	OpponentRating *int      `json:"opponentRating,omitempty"`
	TeamSeed       int       `json:"teamSeed,omitempty"`
	OpponentSeed   int       `json:"opponentSeed,omitempty"`
	CFPSlot        CFPSlot   `json:"cfpSlot,omitempty"`
	OpponentRecord string    `json:"opponentRecord,omitempty"`
	Notes          string    `json:"notes,omitempty"`
	Created        time.Time `json:"created"`
	Updated        time.Time `json:"updated"`
}

// Order gives the position of the game within its season. Regular season
// games use their week, the postseason is banded after week 14:
// conference championship 15, bowls 16+bowl week, CFP rounds 20 through 23.
func (g *Game) Order() int {
	switch g.Phase {
	case PhaseConferenceChampionship:
		return orderConferenceChampionship
	case PhaseBowl:
		return orderBowl + g.BowlWeek
	case PhaseCFPFirstRound:
		return orderCFPFirstRound
	case PhaseCFPQuarterfinal:
		return orderCFPQuarterfinal
	case PhaseCFPSemifinal:
		return orderCFPSemifinal
	case PhaseCFPChampionship:
		return orderCFPChampionship
	default:
		return g.Week
	}
}

// Flags converts the phase back to the flag scheme.
func (g *Game) Flags() GameFlags {
	return GameFlags{
		ConferenceGame:         g.ConferenceGame,
		ConferenceChampionship: g.Phase == PhaseConferenceChampionship,
		BowlGame:               g.Phase == PhaseBowl,
		CFPFirstRound:          g.Phase == PhaseCFPFirstRound,
		CFPQuarterfinal:        g.Phase == PhaseCFPQuarterfinal,
		CFPSemifinal:           g.Phase == PhaseCFPSemifinal,
		CFPChampionship:        g.Phase == PhaseCFPChampionship,
	}
}

// Counts toward the regular conference ledger. The conference championship is
// tracked on its own.
func (g *Game) CountsForConference() bool {
	return g.ConferenceGame && g.Phase != PhaseConferenceChampionship
}

func (g *Game) Matchup() Matchup {
	return Matchup{
		TeamRank:       g.TeamRank,
		OpponentRank:   g.OpponentRank,
		TeamRating:     g.TeamRating,
		OpponentRating: g.OpponentRating,
		Location:       g.Location,
	}
}
