package model

import (
	"strings"
)

// Bowls that are not part of the playoff. The playoff bowls live in the CFP
// slot table.
var bowlNames = []string{
	"Alamo Bowl",
	"Armed Forces Bowl",
	"Birmingham Bowl",
	"Boca Raton Bowl",
	"Citrus Bowl",
	"Cure Bowl",
	"Duke's Mayo Bowl",
	"Fenway Bowl",
	"First Responder Bowl",
	"Frisco Bowl",
	"Gasparilla Bowl",
	"Gator Bowl",
	"Guaranteed Rate Bowl",
	"Hawai'i Bowl",
	"Holiday Bowl",
	"Independence Bowl",
	"LA Bowl",
	"Las Vegas Bowl",
	"Liberty Bowl",
	"Military Bowl",
	"Music City Bowl",
	"New Mexico Bowl",
	"New Orleans Bowl",
	"Pinstripe Bowl",
	"Pop-Tarts Bowl",
	"ReliaQuest Bowl",
	"Sun Bowl",
	"Texas Bowl",
}

var bowlMap map[string]string = buildBowlMap()

// ParseBowl returns the canonical name of a bowl, playoff bowls included. The
// lookup is case insensitive and "Bowl" may be left off.
func ParseBowl(name string) (string, bool) {
	key := strings.ToLower(strings.TrimSpace(name))
	b, found := bowlMap[key]
	if !found {
		b, found = bowlMap[key+" bowl"]
	}
	return b, found
}

func BowlNames() []string {
	return append([]string(nil), bowlNames...)
}

func buildBowlMap() map[string]string {
	m := make(map[string]string)
	for _, b := range bowlNames {
		m[strings.ToLower(b)] = b
	}
	for _, b := range cfpBowls {
		m[strings.ToLower(b)] = b
	}
	return m
}
