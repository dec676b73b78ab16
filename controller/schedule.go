package controller

import (
	"context"
	"fmt"

	"github.com/mww/dynasty_tracker/model"
)

func (c *controller) GetSchedule(ctx context.Context, dynastyID string, year int) (*model.Schedule, error) {
	if !validYear(year) {
		return nil, validationErrorf("%d is not a valid season", year)
	}
	if _, err := c.db.GetDynasty(ctx, dynastyID); err != nil {
		return nil, err
	}

	games, err := c.db.ListGames(ctx, dynastyID, year)
	if err != nil {
		return nil, err
	}
	model.SortGames(games)

	overall, conf := model.SeasonRecord(games, year)
	s := &model.Schedule{
		DynastyID:        dynastyID,
		Year:             year,
		Record:           overall.String(),
		ConferenceRecord: conf.String(),
		Games:            make([]model.ScheduledGame, 0, len(games)),
	}
	for _, g := range games {
		s.Games = append(s.Games, model.NewScheduledGame(games, g))
	}
	return s, nil
}

func (c *controller) GetCFPBracket(ctx context.Context, dynastyID string, year int) (*model.Bracket, error) {
	if !validYear(year) {
		return nil, validationErrorf("%d is not a valid season", year)
	}
	if _, err := c.db.GetDynasty(ctx, dynastyID); err != nil {
		return nil, err
	}

	games, err := c.db.ListGames(ctx, dynastyID, year)
	if err != nil {
		return nil, err
	}

	bySlot := make(map[model.CFPSlot]model.Game)
	for _, g := range games {
		if g.CFPSlot.Valid() {
			bySlot[g.CFPSlot] = g
		}
	}

	b := &model.Bracket{
		DynastyID: dynastyID,
		Year:      year,
	}
	for _, s := range model.AllCFPSlots() {
		round, _ := model.RoundInfoForSlot(s)
		slot := model.BracketSlot{
			Slot:     s,
			CFPID:    model.CompositeID(s, year),
			Round:    round,
			BowlName: model.BowlNameForSlot(s),
		}
		if hi, lo, ok := model.SeedsForSlot(s); ok {
			slot.Seeds = []int{hi, lo}
		}
		if g, found := bySlot[s]; found {
			sg := model.NewScheduledGame(games, g)
			slot.Game = &sg
		}
		b.Slots = append(b.Slots, slot)
	}
	return b, nil
}

func (c *controller) GetBowlHistory(ctx context.Context, dynastyID string) (*model.BowlHistory, error) {
	if _, err := c.db.GetDynasty(ctx, dynastyID); err != nil {
		return nil, err
	}

	games, err := c.db.ListGames(ctx, dynastyID, 0)
	if err != nil {
		return nil, err
	}
	model.SortGames(games)

	var record model.Record
	h := &model.BowlHistory{
		DynastyID: dynastyID,
		Games:     make([]model.ScheduledGame, 0),
	}
	for _, g := range games {
		if g.Phase != model.PhaseBowl && !g.Phase.IsCFP() {
			continue
		}
		record.Add(g.Result)
		h.Games = append(h.Games, model.NewScheduledGame(games, g))
	}
	h.Record = record.String()
	return h, nil
}

func (c *controller) GetSeasonSummaries(ctx context.Context, dynastyID string) ([]model.SeasonSummary, error) {
	d, err := c.db.GetDynasty(ctx, dynastyID)
	if err != nil {
		return nil, err
	}

	games, err := c.db.ListGames(ctx, dynastyID, 0)
	if err != nil {
		return nil, err
	}
	model.SortGames(games)

	summaries := make([]model.SeasonSummary, 0, len(d.Seasons()))
	for _, year := range d.Seasons() {
		overall, conf := model.SeasonRecord(games, year)
		summaries = append(summaries, model.SeasonSummary{
			Year:             year,
			Record:           overall.String(),
			ConferenceRecord: conf.String(),
			Postseason:       postseasonResult(games, year),
		})
	}
	return summaries, nil
}

// postseasonResult describes the last postseason game of the year. Games must
// already be sorted.
func postseasonResult(games []model.Game, year int) string {
	var last *model.Game
	for i := range games {
		if games[i].Year == year && games[i].Phase.IsPostseason() {
			last = &games[i]
		}
	}
	if last == nil {
		return ""
	}

	var name string
	switch {
	case last.Phase == model.PhaseConferenceChampionship:
		name = "Conference Championship"
	case last.Phase == model.PhaseCFPChampionship:
		name = model.NationalChampionshipName
	case last.Phase.IsCFP():
		round, _ := model.RoundInfoForSlot(last.CFPSlot)
		name = "CFP " + round.Label
	default:
		name = last.BowlName
	}

	switch last.Result {
	case model.ResultWin:
		return fmt.Sprintf("Won %s", name)
	case model.ResultLoss:
		return fmt.Sprintf("Lost %s", name)
	default:
		return fmt.Sprintf("Playing in %s", name)
	}
}
