package db

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/itbasis/go-clock"
	"github.com/mww/dynasty_tracker/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	dynastiesCollection = "dynasties"
	gamesCollection     = "games"
)

func NewMongo(ctx context.Context, uri, database string, clock clock.Clock) (DB, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	db := &mongoDB{
		client:    client,
		dynasties: client.Database(database).Collection(dynastiesCollection),
		games:     client.Database(database).Collection(gamesCollection),
		clock:     clock,
	}
	if err := db.createIndexes(ctx); err != nil {
		client.Disconnect(context.Background())
		return nil, err
	}
	return db, nil
}

type mongoDB struct {
	client    *mongo.Client
	dynasties *mongo.Collection
	games     *mongo.Collection
	clock     clock.Clock
}

func (db *mongoDB) createIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "dynasty", Value: 1}, {Key: "year", Value: 1}},
		},
		{
			// A playoff slot can only be filled once per season.
			Keys: bson.D{{Key: "dynasty", Value: 1}, {Key: "year", Value: 1}, {Key: "cfp_slot", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetPartialFilterExpression(bson.M{"cfp_slot": bson.M{"$type": "string"}}),
		},
	}
	if _, err := db.games.Indexes().CreateMany(ctx, indexes); err != nil {
		return fmt.Errorf("error creating game indexes: %w", err)
	}
	return nil
}

func (db *mongoDB) Close() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	db.client.Disconnect(ctx)
}

func (db *mongoDB) AddDynasty(ctx context.Context, d *model.Dynasty) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	d.Created = db.clock.Now().UTC()

	if _, err := db.dynasties.InsertOne(ctx, toDynastyDoc(d)); err != nil {
		return fmt.Errorf("error inserting dynasty (%s): %w", d.Name, err)
	}
	return nil
}

func (db *mongoDB) GetDynasty(ctx context.Context, id string) (*model.Dynasty, error) {
	var doc dynastyDoc
	err := db.dynasties.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrDynastyNotFound
		}
		return nil, fmt.Errorf("error decoding dynasty %s: %w", id, err)
	}
	return doc.toModel(), nil
}

func (db *mongoDB) ListDynasties(ctx context.Context) ([]model.Dynasty, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created", Value: -1}}).
		SetProjection(bson.M{"awards": 0, "standings": 0})

	cursor, err := db.dynasties.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing dynasties: %w", err)
	}
	defer cursor.Close(ctx)

	results := make([]model.Dynasty, 0, 8)
	for cursor.Next(ctx) {
		var doc dynastyDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding dynasty: %w", err)
		}
		d := doc.toModel()
		d.Awards = nil
		d.Standings = nil
		results = append(results, *d)
	}
	return results, cursor.Err()
}

func (db *mongoDB) UpdateDynasty(ctx context.Context, d *model.Dynasty) error {
	d.Updated = db.clock.Now().UTC()
	doc := toDynastyDoc(d)

	update := bson.M{"$set": bson.M{
		"name":         doc.Name,
		"school":       doc.School,
		"coach":        doc.Coach,
		"start_year":   doc.StartYear,
		"current_year": doc.CurrentYear,
		"awards":       doc.Awards,
		"standings":    doc.Standings,
		"updated":      doc.Updated,
	}}
	res, err := db.dynasties.UpdateOne(ctx, bson.M{"_id": d.ID}, update)
	if err != nil {
		return fmt.Errorf("error updating dynasty (%s): %w", d.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrDynastyNotFound
	}
	return nil
}

// DeleteDynasty removes the games first, so a failure part way leaves the
// dynasty in place and the delete can be retried.
func (db *mongoDB) DeleteDynasty(ctx context.Context, id string) error {
	n, err := db.dynasties.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error finding dynasty %s: %w", id, err)
	}
	if n == 0 {
		return ErrDynastyNotFound
	}

	if _, err := db.games.DeleteMany(ctx, bson.M{"dynasty": id}); err != nil {
		return fmt.Errorf("error deleting games for dynasty %s: %w", id, err)
	}

	res, err := db.dynasties.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("error deleting dynasty %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrDynastyNotFound
	}
	return nil
}

// AddGames uses an ordered insert and removes whatever made it in when the
// insert fails. Standalone servers have no transactions.
func (db *mongoDB) AddGames(ctx context.Context, games []model.Game) error {
	if len(games) == 0 {
		return nil
	}

	now := db.clock.Now().UTC()
	docs := make([]any, 0, len(games))
	ids := make([]string, 0, len(games))
	for i := range games {
		if games[i].ID != "" {
			return fmt.Errorf("AddGames - game %d already has an id", i+1)
		}
	}
	for i := range games {
		games[i].ID = uuid.NewString()
		games[i].Created = now
		docs = append(docs, toGameDoc(&games[i]))
		ids = append(ids, games[i].ID)
	}

	if _, err := db.games.InsertMany(ctx, docs, options.InsertMany().SetOrdered(true)); err != nil {
		clearIDs(games)

		cleanupCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 5*time.Second)
		defer cancel()
		if _, delErr := db.games.DeleteMany(cleanupCtx, bson.M{"_id": bson.M{"$in": ids}}); delErr != nil {
			return fmt.Errorf("error inserting games: %w (cleanup failed: %v)", err, delErr)
		}
		return fmt.Errorf("error inserting games: %w", err)
	}
	return nil
}

func (db *mongoDB) SaveGame(ctx context.Context, g *model.Game) error {
	if g == nil {
		return errors.New("SaveGame - game is nil")
	}

	if g.ID == "" {
		g.ID = uuid.NewString()
		g.Created = db.clock.Now().UTC()
		if _, err := db.games.InsertOne(ctx, toGameDoc(g)); err != nil {
			g.ID = ""
			return fmt.Errorf("error inserting game: %w", err)
		}
		return nil
	}

	g.Updated = db.clock.Now().UTC()
	doc := toGameDoc(g)
	filter := bson.M{"_id": g.ID, "dynasty": g.DynastyID}

	// The created time is kept from the stored document.
	existing, err := db.findGame(ctx, filter)
	if err != nil {
		return err
	}
	doc.Created = existing.Created
	g.Created = existing.Created

	res, err := db.games.ReplaceOne(ctx, filter, doc)
	if err != nil {
		return fmt.Errorf("error updating game (%s): %w", g.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrGameNotFound
	}
	return nil
}

func (db *mongoDB) GetGame(ctx context.Context, dynastyID, gameID string) (*model.Game, error) {
	doc, err := db.findGame(ctx, bson.M{"_id": gameID, "dynasty": dynastyID})
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (db *mongoDB) ListGames(ctx context.Context, dynastyID string, year int) ([]model.Game, error) {
	filter := bson.M{"dynasty": dynastyID}
	if year != 0 {
		filter["year"] = year
	}
	opts := options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}})

	cursor, err := db.games.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("error listing games: %w", err)
	}
	defer cursor.Close(ctx)

	results := make([]model.Game, 0, 16)
	for cursor.Next(ctx) {
		var doc gameDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("error decoding game: %w", err)
		}
		results = append(results, *doc.toModel())
	}
	return results, cursor.Err()
}

func (db *mongoDB) FindCFPGame(ctx context.Context, dynastyID string, slot model.CFPSlot, year int) (*model.Game, error) {
	filter := bson.M{
		"dynasty":  dynastyID,
		"year":     year,
		"cfp_slot": string(slot),
	}
	doc, err := db.findGame(ctx, filter)
	if err != nil {
		return nil, err
	}
	return doc.toModel(), nil
}

func (db *mongoDB) findGame(ctx context.Context, filter bson.M) (*gameDoc, error) {
	var doc gameDoc
	if err := db.games.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrGameNotFound
		}
		return nil, fmt.Errorf("error decoding game: %w", err)
	}
	return &doc, nil
}

type dynastyDoc struct {
	ID          string                         `bson:"_id"`
	Name        string                         `bson:"name"`
	School      string                         `bson:"school"`
	Coach       string                         `bson:"coach,omitempty"`
	StartYear   int                            `bson:"start_year"`
	CurrentYear int                            `bson:"current_year"`
	Awards      []awardDoc                     `bson:"awards"`
	Standings   map[string][]standingsEntryDoc `bson:"standings"`
	Created     time.Time                      `bson:"created"`
	Updated     *time.Time                     `bson:"updated,omitempty"`
}

type awardDoc struct {
	Year   int    `bson:"year"`
	Name   string `bson:"name"`
	Player string `bson:"player"`
}

type standingsEntryDoc struct {
	Team             string `bson:"team"`
	ConferenceRecord string `bson:"conference_record"`
	OverallRecord    string `bson:"overall_record"`
}

// Standings are keyed by year, bson document keys have to be strings.
func toDynastyDoc(d *model.Dynasty) *dynastyDoc {
	doc := &dynastyDoc{
		ID:          d.ID,
		Name:        d.Name,
		School:      d.School,
		Coach:       d.Coach,
		StartYear:   d.StartYear,
		CurrentYear: d.CurrentYear,
		Awards:      make([]awardDoc, 0, len(d.Awards)),
		Standings:   make(map[string][]standingsEntryDoc, len(d.Standings)),
		Created:     d.Created,
		Updated:     optionalTime(d.Updated),
	}
	for _, a := range d.Awards {
		doc.Awards = append(doc.Awards, awardDoc(a))
	}
	for year, entries := range d.Standings {
		rows := make([]standingsEntryDoc, 0, len(entries))
		for _, e := range entries {
			rows = append(rows, standingsEntryDoc(e))
		}
		doc.Standings[strconv.Itoa(year)] = rows
	}
	return doc
}

func (doc *dynastyDoc) toModel() *model.Dynasty {
	d := &model.Dynasty{
		ID:          doc.ID,
		Name:        doc.Name,
		School:      doc.School,
		Coach:       doc.Coach,
		StartYear:   doc.StartYear,
		CurrentYear: doc.CurrentYear,
		Awards:      make([]model.Award, 0, len(doc.Awards)),
		Standings:   make(map[int][]model.StandingsEntry, len(doc.Standings)),
		Created:     doc.Created.UTC(),
	}
	if doc.Updated != nil {
		d.Updated = doc.Updated.UTC()
	}
	for _, a := range doc.Awards {
		d.Awards = append(d.Awards, model.Award(a))
	}
	for key, rows := range doc.Standings {
		year, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		entries := make([]model.StandingsEntry, 0, len(rows))
		for _, r := range rows {
			entries = append(entries, model.StandingsEntry(r))
		}
		d.Standings[year] = entries
	}
	return d
}

type gameDoc struct {
	ID             string     `bson:"_id"`
	DynastyID      string     `bson:"dynasty"`
	Year           int        `bson:"year"`
	Week           int        `bson:"week"`
	Phase          string     `bson:"phase"`
	BowlName       string     `bson:"bowl_name,omitempty"`
	BowlWeek       int        `bson:"bowl_week,omitempty"`
	Opponent       string     `bson:"opponent"`
	Location       string     `bson:"location"`
	Result         string     `bson:"result,omitempty"`
	TeamScore      int        `bson:"team_score"`
	OpponentScore  int        `bson:"opponent_score"`
	ConferenceGame bool       `bson:"conference_game"`
	TeamRank       *int       `bson:"team_rank,omitempty"`
	OpponentRank   *int       `bson:"opponent_rank,omitempty"`
	TeamRating     *int       `bson:"team_rating,omitempty"`
	OpponentRating *int       `bson:"opponent_rating,omitempty"`
	TeamSeed       int        `bson:"team_seed,omitempty"`
	OpponentSeed   int        `bson:"opponent_seed,omitempty"`
	CFPSlot        string     `bson:"cfp_slot,omitempty"`
	OpponentRecord string     `bson:"opponent_record,omitempty"`
	Notes          string     `bson:"notes,omitempty"`
	Created        time.Time  `bson:"created"`
	Updated        *time.Time `bson:"updated,omitempty"`
}

func toGameDoc(g *model.Game) *gameDoc {
	return &gameDoc{
		ID:             g.ID,
		DynastyID:      g.DynastyID,
		Year:           g.Year,
		Week:           g.Week,
		Phase:          string(g.Phase),
		BowlName:       g.BowlName,
		BowlWeek:       g.BowlWeek,
		Opponent:       g.Opponent,
		Location:       string(g.Location),
		Result:         g.Result.String(),
		TeamScore:      g.TeamScore,
		OpponentScore:  g.OpponentScore,
		ConferenceGame: g.ConferenceGame,
		TeamRank:       g.TeamRank,
		OpponentRank:   g.OpponentRank,
		TeamRating:     g.TeamRating,
		OpponentRating: g.OpponentRating,
		TeamSeed:       g.TeamSeed,
		OpponentSeed:   g.OpponentSeed,
		CFPSlot:        string(g.CFPSlot),
		OpponentRecord: g.OpponentRecord,
		Notes:          g.Notes,
		Created:        g.Created,
		Updated:        optionalTime(g.Updated),
	}
}

func (doc *gameDoc) toModel() *model.Game {
	g := &model.Game{
		ID:             doc.ID,
		DynastyID:      doc.DynastyID,
		Year:           doc.Year,
		Week:           doc.Week,
		Phase:          model.ParsePhase(doc.Phase),
		BowlName:       doc.BowlName,
		BowlWeek:       doc.BowlWeek,
		Opponent:       doc.Opponent,
		Location:       model.ParseLocation(doc.Location),
		Result:         model.ParseResult(doc.Result),
		TeamScore:      doc.TeamScore,
		OpponentScore:  doc.OpponentScore,
		ConferenceGame: doc.ConferenceGame,
		TeamRank:       doc.TeamRank,
		OpponentRank:   doc.OpponentRank,
		TeamRating:     doc.TeamRating,
		OpponentRating: doc.OpponentRating,
		TeamSeed:       doc.TeamSeed,
		OpponentSeed:   doc.OpponentSeed,
		CFPSlot:        model.CFPSlot(doc.CFPSlot),
		OpponentRecord: doc.OpponentRecord,
		Notes:          doc.Notes,
		Created:        doc.Created.UTC(),
	}
	if doc.Updated != nil {
		g.Updated = doc.Updated.UTC()
	}
	return g
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
