package model

import (
	"strings"
)

type Result int

const (
	ResultNone Result = iota
	ResultWin
	ResultLoss
)

// ParseResult normalizes the different spellings users type for a game result.
// "win", "W", "loss" and "L" are accepted in any case, everything else is
// treated as a game that has not been played yet.
func ParseResult(r string) Result {
	r = strings.ToLower(strings.TrimSpace(r))
	switch r {
	case "w", "win":
		return ResultWin
	case "l", "loss":
		return ResultLoss
	default:
		return ResultNone
	}
}

func (r Result) String() string {
	switch r {
	case ResultWin:
		return "W"
	case ResultLoss:
		return "L"
	default:
		return ""
	}
}

func (r Result) Played() bool {
	return r == ResultWin || r == ResultLoss
}

func (r Result) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

func (r *Result) UnmarshalText(b []byte) error {
	*r = ParseResult(string(b))
	return nil
}

type Location string

const (
	LocationHome    Location = "home"
	LocationAway    Location = "away"
	LocationNeutral Location = "neutral"
)

// ParseLocation accepts the common ways of writing a game site. Unknown values
// default to a home game because that is the default on the entry form.
func ParseLocation(loc string) Location {
	loc = strings.ToLower(strings.TrimSpace(loc))
	switch loc {
	case "away", "a", "@", "road":
		return LocationAway
	case "neutral", "n", "vs", "vs.":
		return LocationNeutral
	default:
		return LocationHome
	}
}
