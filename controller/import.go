package controller

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/mww/dynasty_tracker/model"
	"github.com/rs/zerolog/log"
)

func (c *controller) ImportSchedule(ctx context.Context, dynastyID string, r io.Reader) (int, error) {
	d, err := c.db.GetDynasty(ctx, dynastyID)
	if err != nil {
		return 0, err
	}

	games, err := c.readSchedule(ctx, d, r)
	if err != nil {
		return 0, err
	}

	if err := c.db.AddGames(ctx, games); err != nil {
		return 0, fmt.Errorf("error saving imported games: %w", err)
	}

	log.Info().Str("dynasty", d.ID).Int("games", len(games)).Msg("imported schedule")
	return len(games), nil
}

// readSchedule parses and validates every line of the file before anything is
// saved.
func (c *controller) readSchedule(ctx context.Context, d *model.Dynasty, r io.Reader) ([]model.Game, error) {
	reader, err := newScheduleCSVReader(r)
	if err != nil {
		return nil, err
	}

	games := make([]model.Game, 0, 16)
	slots := make(map[string]int)
	for {
		g, err := reader.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, err
		}

		g.DynastyID = d.ID
		if err := c.prepareGame(ctx, d, g); err != nil {
			var verr *ValidationError
			if errors.As(err, &verr) {
				return nil, validationErrorf("line %d: %s", reader.line, verr.Msg)
			}
			return nil, err
		}

		if g.CFPSlot.Valid() {
			id := model.CompositeID(g.CFPSlot, g.Year)
			if prev, found := slots[id]; found {
				return nil, validationErrorf("line %d: %s is already used on line %d", reader.line, id, prev)
			}
			slots[id] = reader.line
		}

		games = append(games, *g)
	}

	if len(games) == 0 {
		return nil, validationErrorf("the schedule file has no games")
	}
	return games, nil
}

const (
	colYear       = "YEAR"
	colWeek       = "WEEK"
	colOpponent   = "OPPONENT"
	colResult     = "RESULT"
	colTeamScore  = "TEAM SCORE"
	colOppScore   = "OPP SCORE"
	colPhase      = "PHASE"
	colLocation   = "LOCATION"
	colConference = "CONF"
	colBowl       = "BOWL"
	colOppRecord  = "OPP RECORD"
	colTeamSeed   = "SEED"
	colOppSeed    = "OPP SEED"
)

var (
	requiredColumns = []string{colYear, colWeek, colOpponent, colResult, colTeamScore, colOppScore}
	optionalColumns = []string{colPhase, colLocation, colConference, colBowl, colOppRecord, colTeamSeed, colOppSeed}
)

type scheduleCSVReader struct {
	csvReader *csv.Reader
	columns   map[string]int
	// The line of the file that was read last, the header is line 1.
	line int
}

func newScheduleCSVReader(r io.Reader) (*scheduleCSVReader, error) {
	sr := &scheduleCSVReader{
		csvReader: csv.NewReader(r),
		columns:   make(map[string]int),
		line:      1,
	}
	sr.csvReader.TrimLeadingSpace = true
	sr.csvReader.FieldsPerRecord = -1

	header, err := sr.csvReader.Read()
	if err != nil {
		return nil, validationErrorf("error reading schedule file header: %v", err)
	}

	for i, h := range header {
		h = strings.ToUpper(strings.TrimSpace(h))
		if !slices.Contains(requiredColumns, h) && !slices.Contains(optionalColumns, h) {
			log.Debug().Str("column", h).Msg("ignoring unknown schedule column")
			continue
		}
		if _, dup := sr.columns[h]; !dup {
			sr.columns[h] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, found := sr.columns[col]; !found {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, validationErrorf("schedule file is missing required columns: %s", strings.Join(missing, ", "))
	}

	return sr, nil
}

func (sr *scheduleCSVReader) readLine() (*model.Game, error) {
	record, err := sr.csvReader.Read()
	if errors.Is(err, io.EOF) {
		return nil, err
	}
	sr.line++
	if err != nil {
		return nil, validationErrorf("line %d: %v", sr.line, err)
	}

	g := &model.Game{
		Opponent:       sr.value(record, colOpponent),
		Result:         model.ParseResult(sr.value(record, colResult)),
		Location:       model.ParseLocation(sr.value(record, colLocation)),
		ConferenceGame: parseBool(sr.value(record, colConference)),
		BowlName:       sr.value(record, colBowl),
		OpponentRecord: sr.value(record, colOppRecord),
	}

	if g.Year, err = sr.intValue(record, colYear); err != nil {
		return nil, err
	}
	if g.Week, err = sr.intValue(record, colWeek); err != nil {
		return nil, err
	}
	if g.TeamScore, err = sr.intValue(record, colTeamScore); err != nil {
		return nil, err
	}
	if g.OpponentScore, err = sr.intValue(record, colOppScore); err != nil {
		return nil, err
	}
	if g.TeamSeed, err = sr.intValue(record, colTeamSeed); err != nil {
		return nil, err
	}
	if g.OpponentSeed, err = sr.intValue(record, colOppSeed); err != nil {
		return nil, err
	}

	g.Phase = model.ParsePhase(sr.value(record, colPhase))
	if g.Phase == model.PhaseUnknown {
		g.Phase = phaseFromBowl(g.BowlName, g.Week)
	}

	return g, nil
}

// value returns "" for optional columns that are not in the file and for
// short lines.
func (sr *scheduleCSVReader) value(record []string, col string) string {
	idx, found := sr.columns[col]
	if !found || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

// Empty values are 0.
func (sr *scheduleCSVReader) intValue(record []string, col string) (int, error) {
	v := sr.value(record, col)
	if v == "" {
		return 0, nil
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return 0, validationErrorf("line %d: %s must be a number, got '%s'", sr.line, col, v)
	}
	return i, nil
}

// Files without a PHASE column mark postseason games with the bowl they are
// played in.
func phaseFromBowl(bowl string, week int) model.Phase {
	if bowl == "" {
		return model.PhaseFromFlags(model.GameFlags{}, week)
	}

	name, _ := model.ParseBowl(bowl)
	if r, ok := model.RoundInfoForSlot(model.SlotForBowlName(name)); ok {
		return r.Phase
	}
	return model.PhaseBowl
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "y", "yes", "x", "true", "1", "conf":
		return true
	}
	return false
}
