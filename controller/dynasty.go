package controller

import (
	"context"
	"strings"

	"github.com/mww/dynasty_tracker/model"
	"github.com/rs/zerolog/log"
)

func (c *controller) CreateDynasty(ctx context.Context, name, school, coach string, startYear int) (*model.Dynasty, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, validationErrorf("a dynasty name is required")
	}

	team := model.ParseTeam(school)
	if team == nil {
		return nil, validationErrorf("unknown school: '%s'", school)
	}

	if startYear == 0 {
		startYear = c.clock.Now().Year()
	}
	if !validYear(startYear) {
		return nil, validationErrorf("start year must be a four digit year, got %d", startYear)
	}

	d := &model.Dynasty{
		Name:        name,
		School:      team.String(),
		Coach:       strings.TrimSpace(coach),
		StartYear:   startYear,
		CurrentYear: startYear,
		Awards:      []model.Award{},
		Standings:   make(map[int][]model.StandingsEntry),
	}
	if err := c.db.AddDynasty(ctx, d); err != nil {
		return nil, err
	}

	log.Info().Str("dynasty", d.ID).Str("school", d.School).Int("year", d.StartYear).Msg("created dynasty")
	return d, nil
}

func (c *controller) GetDynasty(ctx context.Context, id string) (*model.Dynasty, error) {
	return c.db.GetDynasty(ctx, id)
}

func (c *controller) ListDynasties(ctx context.Context) ([]model.Dynasty, error) {
	return c.db.ListDynasties(ctx)
}

func (c *controller) DeleteDynasty(ctx context.Context, id string) error {
	if err := c.db.DeleteDynasty(ctx, id); err != nil {
		return err
	}
	log.Info().Str("dynasty", id).Msg("deleted dynasty")
	return nil
}

func (c *controller) AdvanceSeason(ctx context.Context, id string) (*model.Dynasty, error) {
	d, err := c.db.GetDynasty(ctx, id)
	if err != nil {
		return nil, err
	}

	d.CurrentYear++
	if err := c.db.UpdateDynasty(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (c *controller) AddAward(ctx context.Context, dynastyID string, a model.Award) (*model.Dynasty, error) {
	d, err := c.db.GetDynasty(ctx, dynastyID)
	if err != nil {
		return nil, err
	}

	a.Name = strings.TrimSpace(a.Name)
	a.Player = strings.TrimSpace(a.Player)
	if a.Name == "" || a.Player == "" {
		return nil, validationErrorf("an award needs both a name and a player")
	}
	if err := checkSeason(d, a.Year); err != nil {
		return nil, err
	}

	d.Awards = append(d.Awards, a)
	if err := c.db.UpdateDynasty(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func (c *controller) SetStandings(ctx context.Context, dynastyID string, year int, entries []model.StandingsEntry) (*model.Dynasty, error) {
	d, err := c.db.GetDynasty(ctx, dynastyID)
	if err != nil {
		return nil, err
	}
	if err := checkSeason(d, year); err != nil {
		return nil, err
	}

	for i := range entries {
		e := &entries[i]
		e.Team = strings.TrimSpace(e.Team)
		e.ConferenceRecord = strings.TrimSpace(e.ConferenceRecord)
		e.OverallRecord = strings.TrimSpace(e.OverallRecord)

		if e.Team == "" {
			return nil, validationErrorf("standings row %d is missing a team", i+1)
		}
		if !model.ValidRecordString(e.ConferenceRecord) || !model.ValidRecordString(e.OverallRecord) {
			return nil, validationErrorf("records for %s must look like 'W-L'", e.Team)
		}
	}

	if d.Standings == nil {
		d.Standings = make(map[int][]model.StandingsEntry)
	}
	if len(entries) == 0 {
		delete(d.Standings, year)
	} else {
		d.Standings[year] = entries
	}

	if err := c.db.UpdateDynasty(ctx, d); err != nil {
		return nil, err
	}
	return d, nil
}

func validYear(y int) bool {
	return y >= 1000 && y <= 9999
}

func checkSeason(d *model.Dynasty, year int) error {
	if year < d.StartYear || year > d.CurrentYear {
		return validationErrorf("%d is not a season of this dynasty (%d-%d)", year, d.StartYear, d.CurrentYear)
	}
	return nil
}
