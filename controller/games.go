package controller

import (
	"context"
	"errors"
	"strings"

	"github.com/mww/dynasty_tracker/db"
	"github.com/mww/dynasty_tracker/model"
	"github.com/rs/zerolog/log"
)

const (
	maxRating = 99
	maxSeed   = 12
)

func (c *controller) AddGame(ctx context.Context, dynastyID string, g *model.Game) (*model.Game, error) {
	d, err := c.db.GetDynasty(ctx, dynastyID)
	if err != nil {
		return nil, err
	}

	g.ID = ""
	g.DynastyID = d.ID
	if err := c.prepareGame(ctx, d, g); err != nil {
		return nil, err
	}

	if err := c.db.SaveGame(ctx, g); err != nil {
		return nil, err
	}
	log.Debug().Str("dynasty", d.ID).Str("game", g.ID).Int("year", g.Year).Msg("added game")
	return g, nil
}

func (c *controller) UpdateGame(ctx context.Context, dynastyID, gameID string, g *model.Game) (*model.Game, error) {
	d, err := c.db.GetDynasty(ctx, dynastyID)
	if err != nil {
		return nil, err
	}

	existing, err := c.db.GetGame(ctx, dynastyID, gameID)
	if err != nil {
		return nil, err
	}

	g.ID = existing.ID
	g.DynastyID = existing.DynastyID
	g.Created = existing.Created
	if err := c.prepareGame(ctx, d, g); err != nil {
		return nil, err
	}

	if err := c.db.SaveGame(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (c *controller) GetGameDetail(ctx context.Context, dynastyID, gameID string) (*model.GameDetail, error) {
	g, err := c.db.GetGame(ctx, dynastyID, gameID)
	if err != nil {
		return nil, err
	}
	return c.gameDetail(ctx, g)
}

func (c *controller) GetCFPGame(ctx context.Context, dynastyID, cfpID string) (*model.GameDetail, error) {
	slot, year, ok := model.ParseCompositeID(cfpID)
	if !ok {
		return nil, ErrBadCFPID
	}

	g, err := c.db.FindCFPGame(ctx, dynastyID, slot, year)
	if err != nil {
		return nil, err
	}
	return c.gameDetail(ctx, g)
}

func (c *controller) gameDetail(ctx context.Context, g *model.Game) (*model.GameDetail, error) {
	season, err := c.db.ListGames(ctx, g.DynastyID, g.Year)
	if err != nil {
		return nil, err
	}

	detail := &model.GameDetail{
		ScheduledGame: model.NewScheduledGame(season, *g),
	}
	if g.Result.Played() && g.OpponentRecord != "" {
		detail.OpponentRecordAfter = model.AdvanceOpponentRecord(g.OpponentRecord, g.Result, g.ConferenceGame)
	}
	if r, ok := model.RoundInfoForSlot(g.CFPSlot); ok {
		detail.CFPRound = &r
	}
	return detail, nil
}

// prepareGame cleans up what was entered for a game and makes sure it is
// something that can be stored. The playoff slot is resolved here.
func (c *controller) prepareGame(ctx context.Context, d *model.Dynasty, g *model.Game) error {
	normalizeGame(g)
	if err := validateGame(d, g); err != nil {
		return err
	}
	if !g.Phase.IsCFP() {
		return nil
	}

	existing, err := c.db.FindCFPGame(ctx, d.ID, g.CFPSlot, g.Year)
	if err != nil {
		if errors.Is(err, db.ErrGameNotFound) {
			return nil
		}
		return err
	}
	if existing.ID != g.ID {
		return validationErrorf("%s is already taken by the game against %s",
			model.CompositeID(g.CFPSlot, g.Year), model.DisplayName(existing.Opponent))
	}
	return nil
}

func normalizeGame(g *model.Game) {
	g.Opponent = strings.TrimSpace(g.Opponent)
	g.OpponentRecord = strings.TrimSpace(g.OpponentRecord)
	g.Notes = strings.TrimSpace(g.Notes)
	g.BowlName = strings.TrimSpace(g.BowlName)
	if b, found := model.ParseBowl(g.BowlName); found {
		g.BowlName = b
	}

	if g.Location == "" {
		g.Location = model.LocationHome
	}

	if g.Phase == model.PhaseUnknown && g.Week > 0 {
		g.Phase = model.PhaseRegularSeason
	}

	if g.Phase != model.PhaseBowl {
		g.BowlWeek = 0
	}

	if !g.Phase.IsCFP() {
		g.CFPSlot = model.CFPSlotNone
		g.TeamSeed = 0
		g.OpponentSeed = 0
		return
	}

	g.CFPSlot = model.ResolveCFPSlot(g)
	if b := model.BowlNameForSlot(g.CFPSlot); b != "" {
		g.BowlName = b
	}
}

func validateGame(d *model.Dynasty, g *model.Game) error {
	if err := checkSeason(d, g.Year); err != nil {
		return err
	}
	if g.Opponent == "" {
		return validationErrorf("an opponent is required")
	}

	switch g.Phase {
	case model.PhaseUnknown:
		return validationErrorf("a regular season week or a postseason game type is required")
	case model.PhaseRegularSeason:
		if g.Week < 1 || g.Week > model.LastRegularSeasonWeek {
			return validationErrorf("week must be between 1 and %d, got %d", model.LastRegularSeasonWeek, g.Week)
		}
	case model.PhaseBowl:
		if g.BowlName == "" {
			return validationErrorf("a bowl game needs the name of the bowl")
		}
		if model.SlotForBowlName(g.BowlName) != model.CFPSlotNone {
			return validationErrorf("the %s is a playoff game", g.BowlName)
		}
		if g.BowlWeek < 0 {
			return validationErrorf("bowl week can not be negative")
		}
	}

	if g.Phase.IsCFP() && g.CFPSlot == model.CFPSlotNone {
		if g.Phase == model.PhaseCFPFirstRound {
			return validationErrorf("seeds %d and %d do not play in the first round", g.TeamSeed, g.OpponentSeed)
		}
		return validationErrorf("'%s' is not a bowl in this round of the playoff", g.BowlName)
	}
	if g.TeamSeed < 0 || g.TeamSeed > maxSeed || g.OpponentSeed < 0 || g.OpponentSeed > maxSeed {
		return validationErrorf("seeds must be between 1 and %d", maxSeed)
	}

	if err := validateScore(g); err != nil {
		return err
	}

	if g.OpponentRecord != "" && !model.ValidRecordString(g.OpponentRecord) {
		return validationErrorf("opponent record must look like 'W-L' or 'W-L (W-L)', got '%s'", g.OpponentRecord)
	}

	for _, r := range []*int{g.TeamRank, g.OpponentRank} {
		if r != nil && *r < 1 {
			return validationErrorf("rankings start at 1")
		}
	}
	for _, r := range []*int{g.TeamRating, g.OpponentRating} {
		if r != nil && (*r < 0 || *r > maxRating) {
			return validationErrorf("team ratings must be between 0 and %d", maxRating)
		}
	}
	return nil
}

// A win has to have the higher score, and there are no ties.
func validateScore(g *model.Game) error {
	if g.TeamScore < 0 || g.OpponentScore < 0 {
		return validationErrorf("scores can not be negative")
	}

	switch g.Result {
	case model.ResultNone:
		if g.TeamScore != 0 || g.OpponentScore != 0 {
			return validationErrorf("a score was entered without a result")
		}
	case model.ResultWin:
		if g.TeamScore <= g.OpponentScore {
			return validationErrorf("a win needs a higher score, got %d-%d", g.TeamScore, g.OpponentScore)
		}
	case model.ResultLoss:
		if g.TeamScore >= g.OpponentScore {
			return validationErrorf("a loss needs a lower score, got %d-%d", g.TeamScore, g.OpponentScore)
		}
	}
	return nil
}
