package model

import (
	"time"
)

// Dynasty is the root document for one simulated career. Games are stored on
// their own and looked up by dynasty and season.
type Dynasty struct {
	ID          string                   `json:"id"`
	Name        string                   `json:"name"`
	School      string                   `json:"school"`
	Coach       string                   `json:"coach"`
	StartYear   int                      `json:"startYear"`
	CurrentYear int                      `json:"currentYear"`
	Awards      []Award                  `json:"awards"`
	Standings   map[int][]StandingsEntry `json:"standings"`
	Created     time.Time                `json:"created"`
	Updated     time.Time                `json:"updated"`
}

func (d *Dynasty) Team() *Team {
	return ParseTeam(d.School)
}

// Seasons lists the years of the dynasty from the first through the current one.
func (d *Dynasty) Seasons() []int {
	if d.CurrentYear < d.StartYear {
		return nil
	}
	years := make([]int, 0, d.CurrentYear-d.StartYear+1)
	for y := d.StartYear; y <= d.CurrentYear; y++ {
		years = append(years, y)
	}
	return years
}

type Award struct {
	Year   int    `json:"year"`
	Name   string `json:"name"`
	Player string `json:"player"`
}

// StandingsEntry is one row of a conference standings table, as typed in at
// the end of a season. The records are kept as the "W-L" strings they were
// entered as.
type StandingsEntry struct {
	Team             string `json:"team"`
	ConferenceRecord string `json:"conferenceRecord"`
	OverallRecord    string `json:"overallRecord"`
}
