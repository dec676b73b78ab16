package model

const (
	// Rankings only go 25 deep, anything worse is unranked.
	UnrankedThreshold = 25

	homeRankBonus   = 5
	homeRatingBonus = 3
)

type Favorite string

const (
	FavoriteUnknown  Favorite = ""
	FavoriteTeam     Favorite = "favorite"
	FavoriteOpponent Favorite = "underdog"
)

// Matchup holds what is known about the two sides of a game, from the point of
// view of the dynasty's team. Location is where the dynasty's team plays.
type Matchup struct {
	TeamRank       *int
	OpponentRank   *int
	TeamRating     *int
	OpponentRating *int
	Location       Location
}

// ClassifyFavorite decides which side of the matchup is the favorite. FavoriteTeam
// means the dynasty's team is favored, FavoriteOpponent means it is the underdog.
// FavoriteUnknown is returned when there isn't enough data, or on an exact tie
// at a neutral site.
//
// Rankings decide first. One ranked team is the favorite unless the home
// bonus pushes it past 25, two ranked teams compare adjusted ranks. When
// neither is ranked the ratings are compared with a smaller home bonus.
func ClassifyFavorite(m Matchup) Favorite {
	teamRanked := isRanked(m.TeamRank)
	oppRanked := isRanked(m.OpponentRank)

	switch {
	case teamRanked && !oppRanked:
		return oneRanked(*m.TeamRank, m.Location, FavoriteTeam, FavoriteOpponent)
	case !teamRanked && oppRanked:
		return oneRanked(*m.OpponentRank, flip(m.Location), FavoriteOpponent, FavoriteTeam)
	case teamRanked && oppRanked:
		teamRank, oppRank := *m.TeamRank, *m.OpponentRank
		switch m.Location {
		case LocationHome:
			teamRank -= homeRankBonus
		case LocationAway:
			oppRank -= homeRankBonus
		}
		// Lower rank is better
		return compare(oppRank, teamRank, m.Location)
	}

	if m.TeamRating == nil || m.OpponentRating == nil {
		return FavoriteUnknown
	}
	teamRating, oppRating := *m.TeamRating, *m.OpponentRating
	switch m.Location {
	case LocationHome:
		teamRating += homeRatingBonus
	case LocationAway:
		oppRating += homeRatingBonus
	}
	return compare(teamRating, oppRating, m.Location)
}

// oneRanked handles a ranked team against an unranked one. loc is the ranked
// team's location.
func oneRanked(rank int, loc Location, ranked, unranked Favorite) Favorite {
	switch loc {
	case LocationHome:
		rank -= homeRankBonus
	case LocationAway:
		rank += homeRankBonus
	}
	if rank <= UnrankedThreshold {
		return ranked
	}
	return unranked
}

// compare returns FavoriteTeam when teamScore is higher. Ties go to the home
// team, a tie at a neutral site is unknown.
func compare(teamScore, oppScore int, loc Location) Favorite {
	switch {
	case teamScore > oppScore:
		return FavoriteTeam
	case teamScore < oppScore:
		return FavoriteOpponent
	}

	switch loc {
	case LocationHome:
		return FavoriteTeam
	case LocationAway:
		return FavoriteOpponent
	default:
		return FavoriteUnknown
	}
}

func isRanked(rank *int) bool {
	return rank != nil && *rank >= 1 && *rank <= UnrankedThreshold
}

func flip(loc Location) Location {
	switch loc {
	case LocationHome:
		return LocationAway
	case LocationAway:
		return LocationHome
	default:
		return loc
	}
}

// An undetermined favorite is written as null.
func (f Favorite) MarshalJSON() ([]byte, error) {
	if f == FavoriteUnknown {
		return []byte("null"), nil
	}
	return []byte(`"` + string(f) + `"`), nil
}
