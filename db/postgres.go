package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/mww/dynasty_tracker/model"
)

func NewPostgres(ctx context.Context, connString string, clock clock.Clock) (DB, error) {
	pool, err := pgxpool.New(ctx, connString)
	if err != nil {
		return nil, err
	}

	// Test the connection
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &postgresDB{pool: pool, clock: clock}, nil
}

type postgresDB struct {
	pool  *pgxpool.Pool
	clock clock.Clock
}

func (db *postgresDB) Close() {
	db.pool.Close()
}

func (db *postgresDB) AddDynasty(ctx context.Context, d *model.Dynasty) error {
	const query = `INSERT INTO dynasties (
		id,
		name,
		school,
		coach,
		start_year,
		current_year,
		awards,
		standings,
		created
	) VALUES (
		@id,
		@name,
		@school,
		@coach,
		@startYear,
		@currentYear,
		@awards,
		@standings,
		@created
	)`

	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.Created = db.clock.Now().UTC()

	args := namedArgsForDynasty(d)
	args["created"] = pgtype.Timestamptz{Time: d.Created, InfinityModifier: pgtype.Finite, Valid: true}
	if _, err := db.pool.Exec(ctx, query, args); err != nil {
		return fmt.Errorf("error inserting dynasty (%s): %w", d.Name, err)
	}
	return nil
}

func (db *postgresDB) GetDynasty(ctx context.Context, id string) (*model.Dynasty, error) {
	const query = `SELECT id, name, school, coach, start_year, current_year,
						awards, standings, created, updated
					FROM dynasties WHERE id=@id`

	row := db.pool.QueryRow(ctx, query, pgx.NamedArgs{"id": id})
	d, err := scanDynasty(row, true)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrDynastyNotFound
		}
		return nil, fmt.Errorf("error scanning dynasty %s: %w", id, err)
	}
	return d, nil
}

func (db *postgresDB) ListDynasties(ctx context.Context) ([]model.Dynasty, error) {
	const query = `SELECT id, name, school, coach, start_year, current_year, created, updated
					FROM dynasties ORDER BY created DESC`

	rows, err := db.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing dynasties: %w", err)
	}
	defer rows.Close()

	results := make([]model.Dynasty, 0, 8)
	for rows.Next() {
		d, err := scanDynasty(rows, false)
		if err != nil {
			return nil, fmt.Errorf("error scanning dynasty: %w", err)
		}
		results = append(results, *d)
	}
	return results, rows.Err()
}

func (db *postgresDB) UpdateDynasty(ctx context.Context, d *model.Dynasty) error {
	const update = `UPDATE dynasties
		SET name=@name,
			school=@school,
			coach=@coach,
			start_year=@startYear,
			current_year=@currentYear,
			awards=@awards,
			standings=@standings,
			updated=@updated
		WHERE id=@id`

	d.Updated = db.clock.Now().UTC()
	args := namedArgsForDynasty(d)
	args["updated"] = pgtype.Timestamptz{Time: d.Updated, InfinityModifier: pgtype.Finite, Valid: true}

	tag, err := db.pool.Exec(ctx, update, args)
	if err != nil {
		return fmt.Errorf("error updating dynasty (%s): %w", d.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDynastyNotFound
	}
	return nil
}

func (db *postgresDB) DeleteDynasty(ctx context.Context, id string) error {
	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	args := pgx.NamedArgs{"id": id}
	if _, err := tx.Exec(ctx, `DELETE FROM games WHERE dynasty=@id`, args); err != nil {
		return fmt.Errorf("error deleting games for dynasty %s: %w", id, err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM dynasties WHERE id=@id`, args)
	if err != nil {
		return fmt.Errorf("error deleting dynasty %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrDynastyNotFound
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("error commiting delete transaction: %w", err)
	}
	return nil
}

func (db *postgresDB) SaveGame(ctx context.Context, g *model.Game) error {
	if g == nil {
		return errors.New("SaveGame - game is nil")
	}
	if g.ID == "" {
		return db.insertGame(ctx, g)
	}
	return db.updateGame(ctx, g)
}

// execer is satisfied by both the pool and a transaction.
type execer interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
}

func (db *postgresDB) AddGames(ctx context.Context, games []model.Game) error {
	for i := range games {
		if games[i].ID != "" {
			return fmt.Errorf("AddGames - game %d already has an id", i+1)
		}
	}

	tx, err := db.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for i := range games {
		if err := db.execInsertGame(ctx, tx, &games[i]); err != nil {
			clearIDs(games)
			return fmt.Errorf("game %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		clearIDs(games)
		return fmt.Errorf("error commiting games: %w", err)
	}
	return nil
}

func (db *postgresDB) insertGame(ctx context.Context, g *model.Game) error {
	return db.execInsertGame(ctx, db.pool, g)
}

func (db *postgresDB) execInsertGame(ctx context.Context, q execer, g *model.Game) error {
	const query = `INSERT INTO games (
		id, dynasty, year, week, phase, bowl_name, bowl_week, opponent, location,
		result, team_score, opponent_score, conference_game,
		team_rank, opponent_rank, team_rating, opponent_rating,
		team_seed, opponent_seed, cfp_slot, opponent_record, notes, created
	) VALUES (
		@id, @dynasty, @year, @week, @phase, @bowlName, @bowlWeek, @opponent, @location,
		@result, @teamScore, @opponentScore, @conferenceGame,
		@teamRank, @opponentRank, @teamRating, @opponentRating,
		@teamSeed, @opponentSeed, @cfpSlot, @opponentRecord, @notes, @created
	)`

	g.ID = uuid.NewString()
	g.Created = db.clock.Now().UTC()

	args := namedArgsForGame(g)
	args["created"] = pgtype.Timestamptz{Time: g.Created, InfinityModifier: pgtype.Finite, Valid: true}
	if _, err := q.Exec(ctx, query, args); err != nil {
		g.ID = ""
		return fmt.Errorf("error inserting game: %w", err)
	}
	return nil
}

func (db *postgresDB) updateGame(ctx context.Context, g *model.Game) error {
	const update = `UPDATE games
		SET year=@year,
			week=@week,
			phase=@phase,
			bowl_name=@bowlName,
			bowl_week=@bowlWeek,
			opponent=@opponent,
			location=@location,
			result=@result,
			team_score=@teamScore,
			opponent_score=@opponentScore,
			conference_game=@conferenceGame,
			team_rank=@teamRank,
			opponent_rank=@opponentRank,
			team_rating=@teamRating,
			opponent_rating=@opponentRating,
			team_seed=@teamSeed,
			opponent_seed=@opponentSeed,
			cfp_slot=@cfpSlot,
			opponent_record=@opponentRecord,
			notes=@notes,
			updated=@updated
		WHERE id=@id AND dynasty=@dynasty`

	g.Updated = db.clock.Now().UTC()
	args := namedArgsForGame(g)
	args["updated"] = pgtype.Timestamptz{Time: g.Updated, InfinityModifier: pgtype.Finite, Valid: true}

	tag, err := db.pool.Exec(ctx, update, args)
	if err != nil {
		return fmt.Errorf("error updating game (%s): %w", g.ID, err)
	}
	if tag.RowsAffected() == 0 {
		return ErrGameNotFound
	}
	return nil
}

const gameColumns = `id, dynasty, year, week, phase, bowl_name, bowl_week, opponent, location,
	result, team_score, opponent_score, conference_game,
	team_rank, opponent_rank, team_rating, opponent_rating,
	team_seed, opponent_seed, cfp_slot, opponent_record, notes, created, updated`

func (db *postgresDB) GetGame(ctx context.Context, dynastyID, gameID string) (*model.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games WHERE id=@id AND dynasty=@dynasty`

	args := pgx.NamedArgs{
		"id":      gameID,
		"dynasty": dynastyID,
	}
	g, err := scanGame(db.pool.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("error scanning game %s: %w", gameID, err)
	}
	return g, nil
}

func (db *postgresDB) ListGames(ctx context.Context, dynastyID string, year int) ([]model.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games
		WHERE dynasty=@dynasty AND (@year = 0 OR year=@year)
		ORDER BY seq`

	args := pgx.NamedArgs{
		"dynasty": dynastyID,
		"year":    year,
	}
	rows, err := db.pool.Query(ctx, query, args)
	if err != nil {
		return nil, fmt.Errorf("error listing games: %w", err)
	}
	defer rows.Close()

	results := make([]model.Game, 0, 16)
	for rows.Next() {
		g, err := scanGame(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning game: %w", err)
		}
		results = append(results, *g)
	}
	return results, rows.Err()
}

func (db *postgresDB) FindCFPGame(ctx context.Context, dynastyID string, slot model.CFPSlot, year int) (*model.Game, error) {
	query := `SELECT ` + gameColumns + ` FROM games
		WHERE dynasty=@dynasty AND year=@year AND cfp_slot=@slot`

	args := pgx.NamedArgs{
		"dynasty": dynastyID,
		"year":    year,
		"slot":    string(slot),
	}
	g, err := scanGame(db.pool.QueryRow(ctx, query, args))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("error scanning cfp game %s: %w", model.CompositeID(slot, year), err)
	}
	return g, nil
}

func scanDynasty(row pgx.Row, full bool) (*model.Dynasty, error) {
	var d model.Dynasty
	var coach sql.NullString
	var created, updated pgtype.Timestamptz

	dest := []any{&d.ID, &d.Name, &d.School, &coach, &d.StartYear, &d.CurrentYear}
	if full {
		dest = append(dest, &d.Awards, &d.Standings)
	}
	dest = append(dest, &created, &updated)

	if err := row.Scan(dest...); err != nil {
		return nil, err
	}

	d.Coach = valueOrEmpty(coach)
	d.Created = created.Time
	d.Updated = updated.Time
	return &d, nil
}

func scanGame(row pgx.Row) (*model.Game, error) {
	var g model.Game
	var phase DBPhase
	var location DBLocation
	var result DBResult
	var bowlName, cfpSlot, oppRecord, notes sql.NullString
	var created, updated pgtype.Timestamptz

	err := row.Scan(
		&g.ID,
		&g.DynastyID,
		&g.Year,
		&g.Week,
		&phase,
		&bowlName,
		&g.BowlWeek,
		&g.Opponent,
		&location,
		&result,
		&g.TeamScore,
		&g.OpponentScore,
		&g.ConferenceGame,
		&g.TeamRank,
		&g.OpponentRank,
		&g.TeamRating,
		&g.OpponentRating,
		&g.TeamSeed,
		&g.OpponentSeed,
		&cfpSlot,
		&oppRecord,
		&notes,
		&created,
		&updated)
	if err != nil {
		return nil, err
	}

	g.Phase = phase.phase
	g.Location = location.location
	g.Result = result.result
	g.BowlName = valueOrEmpty(bowlName)
	g.CFPSlot = model.CFPSlot(valueOrEmpty(cfpSlot))
	g.OpponentRecord = valueOrEmpty(oppRecord)
	g.Notes = valueOrEmpty(notes)
	g.Created = created.Time
	g.Updated = updated.Time
	return &g, nil
}

func namedArgsForDynasty(d *model.Dynasty) pgx.NamedArgs {
	awards := d.Awards
	if awards == nil {
		awards = []model.Award{}
	}
	standings := d.Standings
	if standings == nil {
		standings = map[int][]model.StandingsEntry{}
	}

	return pgx.NamedArgs{
		"id":          d.ID,
		"name":        d.Name,
		"school":      d.School,
		"coach":       nullString(d.Coach),
		"startYear":   d.StartYear,
		"currentYear": d.CurrentYear,
		"awards":      awards,
		"standings":   standings,
	}
}

func namedArgsForGame(g *model.Game) pgx.NamedArgs {
	return pgx.NamedArgs{
		"id":             g.ID,
		"dynasty":        g.DynastyID,
		"year":           g.Year,
		"week":           g.Week,
		"phase":          &DBPhase{phase: g.Phase},
		"bowlName":       nullString(g.BowlName),
		"bowlWeek":       g.BowlWeek,
		"opponent":       g.Opponent,
		"location":       &DBLocation{location: g.Location},
		"result":         &DBResult{result: g.Result},
		"teamScore":      g.TeamScore,
		"opponentScore":  g.OpponentScore,
		"conferenceGame": g.ConferenceGame,
		"teamRank":       g.TeamRank,
		"opponentRank":   g.OpponentRank,
		"teamRating":     g.TeamRating,
		"opponentRating": g.OpponentRating,
		"teamSeed":       g.TeamSeed,
		"opponentSeed":   g.OpponentSeed,
		"cfpSlot":        nullString(string(g.CFPSlot)),
		"opponentRecord": nullString(g.OpponentRecord),
		"notes":          nullString(g.Notes),
	}
}

func nullString(s string) sql.NullString {
	return sql.NullString{
		String: s,
		Valid:  s != "",
	}
}

func valueOrEmpty(v sql.NullString) string {
	if v.Valid {
		return v.String
	}
	return ""
}

type DBPhase struct {
	phase model.Phase
}

func (p *DBPhase) ScanText(v pgtype.Text) error {
	p.phase = model.ParsePhase(v.String)
	return nil
}

func (p *DBPhase) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: string(p.phase),
		Valid:  true,
	}, nil
}

type DBLocation struct {
	location model.Location
}

func (l *DBLocation) ScanText(v pgtype.Text) error {
	l.location = model.ParseLocation(v.String)
	return nil
}

func (l *DBLocation) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: string(l.location),
		Valid:  true,
	}, nil
}

// Unplayed games are stored as NULL.
type DBResult struct {
	result model.Result
}

func (r *DBResult) ScanText(v pgtype.Text) error {
	r.result = model.ParseResult(v.String)
	return nil
}

func (r *DBResult) TextValue() (pgtype.Text, error) {
	return pgtype.Text{
		String: r.result.String(),
		Valid:  r.result.Played(),
	}, nil
}
