package model

import (
	"fmt"
	"regexp"
	"strconv"
)

type Record struct {
	Wins   int `json:"wins"`
	Losses int `json:"losses"`
}

func (r Record) String() string {
	return fmt.Sprintf("%d-%d", r.Wins, r.Losses)
}

func (r *Record) Add(result Result) {
	switch result {
	case ResultWin:
		r.Wins++
	case ResultLoss:
		r.Losses++
	}
}

// RecordThrough computes the overall and conference record as of, and
// including, the cutoff game. Only games from the cutoff's season with an
// order at or before the cutoff are considered. Games without a result are
// considered but not counted.
func RecordThrough(games []Game, cutoff *Game) (overall Record, conference Record) {
	if cutoff == nil {
		return overall, conference
	}

	limit := cutoff.Order()
	for i := range games {
		g := &games[i]
		if g.Year != cutoff.Year || g.Order() > limit {
			continue
		}

		overall.Add(g.Result)
		if g.CountsForConference() {
			conference.Add(g.Result)
		}
	}
	return overall, conference
}

// SeasonRecord is the record over every game of a season.
func SeasonRecord(games []Game, year int) (overall Record, conference Record) {
	for i := range games {
		g := &games[i]
		if g.Year != year {
			continue
		}
		overall.Add(g.Result)
		if g.CountsForConference() {
			conference.Add(g.Result)
		}
	}
	return overall, conference
}

var opponentRecordRegex = regexp.MustCompile(`(\d+)-(\d+)(\s*\((\d+)-(\d+)\))?`)

// AdvanceOpponentRecord takes an opponent's record as typed before the game,
// "W-L" or "W-L (CW-CL)", and moves it forward by the game that was played.
// result is from the point of view of the dynasty's team, so a win adds a loss
// to the opponent. Strings that don't parse are returned unchanged.
func AdvanceOpponentRecord(record string, result Result, conferenceGame bool) string {
	m := opponentRecordRegex.FindStringSubmatch(record)
	if m == nil || !result.Played() {
		return record
	}

	overall, ok := parseRecord(m[1], m[2])
	if !ok {
		return record
	}
	hasConf := m[3] != ""
	var conf Record
	if hasConf {
		if conf, ok = parseRecord(m[4], m[5]); !ok {
			return record
		}
	}

	// Flip the result to the opponent's point of view.
	opp := ResultLoss
	if result == ResultLoss {
		opp = ResultWin
	}

	overall.Add(opp)
	if !hasConf {
		return overall.String()
	}
	if conferenceGame {
		conf.Add(opp)
	}
	return fmt.Sprintf("%s (%s)", overall, conf)
}

var recordEntryRegex = regexp.MustCompile(`^\d+-\d+(\s*\(\d+-\d+\))?$`)

// ValidRecordString is the check used when a record is typed into the entry form.
func ValidRecordString(s string) bool {
	if !recordEntryRegex.MatchString(s) {
		return false
	}
	m := opponentRecordRegex.FindStringSubmatch(s)
	if _, ok := parseRecord(m[1], m[2]); !ok {
		return false
	}
	if m[3] != "" {
		_, ok := parseRecord(m[4], m[5])
		return ok
	}
	return true
}

// parseRecord fails when a count does not fit in an int.
func parseRecord(wins, losses string) (Record, bool) {
	w, err := strconv.Atoi(wins)
	if err != nil {
		return Record{}, false
	}
	l, err := strconv.Atoi(losses)
	if err != nil {
		return Record{}, false
	}
	return Record{Wins: w, Losses: l}, true
}
