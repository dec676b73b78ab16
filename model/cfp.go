package model

import (
	"fmt"
	"strconv"
	"strings"
)

// CFPSlot is one of the fixed positions in the 12 team playoff bracket.
type CFPSlot string

const (
	CFPSlotNone CFPSlot = ""

	CFPFirstRound1 CFPSlot = "cfpfr1"
	CFPFirstRound2 CFPSlot = "cfpfr2"
	CFPFirstRound3 CFPSlot = "cfpfr3"
	CFPFirstRound4 CFPSlot = "cfpfr4"

	CFPQuarterfinal1 CFPSlot = "cfpqf1"
	CFPQuarterfinal2 CFPSlot = "cfpqf2"
	CFPQuarterfinal3 CFPSlot = "cfpqf3"
	CFPQuarterfinal4 CFPSlot = "cfpqf4"

	CFPSemifinal1 CFPSlot = "cfpsf1"
	CFPSemifinal2 CFPSlot = "cfpsf2"

	CFPChampionship CFPSlot = "cfpnc"
)

const NationalChampionshipName = "CFP National Championship"

type CFPRound struct {
	Number int    `json:"number"`
	Label  string `json:"label"`
	Flag   string `json:"flag"`
	Phase  Phase  `json:"phase"`
}

var (
	roundFirstRound   = CFPRound{Number: 1, Label: "First Round", Flag: "isCFPFirstRound", Phase: PhaseCFPFirstRound}
	roundQuarterfinal = CFPRound{Number: 2, Label: "Quarterfinal", Flag: "isCFPQuarterfinal", Phase: PhaseCFPQuarterfinal}
	roundSemifinal    = CFPRound{Number: 3, Label: "Semifinal", Flag: "isCFPSemifinal", Phase: PhaseCFPSemifinal}
	roundChampionship = CFPRound{Number: 4, Label: "National Championship", Flag: "isCFPChampionship", Phase: PhaseCFPChampionship}

	// Slot key prefix to round. The prefixes don't overlap.
	cfpRoundPrefixes = map[string]CFPRound{
		"cfpfr": roundFirstRound,
		"cfpqf": roundQuarterfinal,
		"cfpsf": roundSemifinal,
		"cfpnc": roundChampionship,
	}

	cfpSlots = []CFPSlot{
		CFPFirstRound1, CFPFirstRound2, CFPFirstRound3, CFPFirstRound4,
		CFPQuarterfinal1, CFPQuarterfinal2, CFPQuarterfinal3, CFPQuarterfinal4,
		CFPSemifinal1, CFPSemifinal2,
		CFPChampionship,
	}

	cfpBowls = map[CFPSlot]string{
		CFPQuarterfinal1: "Sugar Bowl",
		CFPQuarterfinal2: "Fiesta Bowl",
		CFPQuarterfinal3: "Peach Bowl",
		CFPQuarterfinal4: "Rose Bowl",
		CFPSemifinal1:    "Orange Bowl",
		CFPSemifinal2:    "Cotton Bowl",
		CFPChampionship:  NationalChampionshipName,
	}

	// First round games are played at the higher seed, so they are keyed by seed pair.
	cfpSeeds = map[CFPSlot][2]int{
		CFPFirstRound1: {5, 12},
		CFPFirstRound2: {8, 9},
		CFPFirstRound3: {6, 11},
		CFPFirstRound4: {7, 10},
	}

	cfpSlotByBowl  map[string]CFPSlot = invertBowls()
	cfpSlotBySeeds map[[2]int]CFPSlot = invertSeeds()
)

// AllCFPSlots returns every bracket slot in bracket order.
func AllCFPSlots() []CFPSlot {
	return append([]CFPSlot(nil), cfpSlots...)
}

func (s CFPSlot) Valid() bool {
	return isKnownSlot(s)
}

func SlotForBowlName(name string) CFPSlot {
	return cfpSlotByBowl[name]
}

func BowlNameForSlot(s CFPSlot) string {
	return cfpBowls[s]
}

// SlotForSeeds finds the first round slot for a seed pairing, the order of the
// seeds does not matter. Only the four fixed first round pairings match.
func SlotForSeeds(a, b int) CFPSlot {
	return cfpSlotBySeeds[seedKey(a, b)]
}

// SeedsForSlot returns the seed pairing of a first round slot.
func SeedsForSlot(s CFPSlot) (int, int, bool) {
	p, found := cfpSeeds[s]
	return p[0], p[1], found
}

// CompositeID combines a slot and a season into the identifier used to link
// to the game played in that slot, e.g. "cfpqf3-2027".
func CompositeID(s CFPSlot, year int) string {
	return fmt.Sprintf("%s-%d", s, year)
}

// ParseCompositeID reverses CompositeID. The slot never contains a '-' so the
// first one is the separator, which keeps negative years intact.
func ParseCompositeID(id string) (CFPSlot, int, bool) {
	slot, yearStr, found := strings.Cut(id, "-")
	if !found || !isKnownSlot(CFPSlot(slot)) {
		return CFPSlotNone, 0, false
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil {
		return CFPSlotNone, 0, false
	}
	return CFPSlot(slot), year, true
}

// RoundInfoForSlot looks up the round from the prefix of the slot key.
func RoundInfoForSlot(s CFPSlot) (CFPRound, bool) {
	if len(s) < 5 {
		return CFPRound{}, false
	}
	r, found := cfpRoundPrefixes[string(s[:5])]
	return r, found
}

func isKnownSlot(s CFPSlot) bool {
	for _, k := range cfpSlots {
		if k == s {
			return true
		}
	}
	return false
}

func seedKey(a, b int) [2]int {
	if a > b {
		a, b = b, a
	}
	return [2]int{a, b}
}

func invertBowls() map[string]CFPSlot {
	m := make(map[string]CFPSlot, len(cfpBowls))
	for s, name := range cfpBowls {
		m[name] = s
	}
	return m
}

func invertSeeds() map[[2]int]CFPSlot {
	m := make(map[[2]int]CFPSlot)
	for s, p := range cfpSeeds {
		m[seedKey(p[0], p[1])] = s
	}
	return m
}

// ResolveCFPSlot finds the bracket slot for a playoff game. A slot already on
// the game wins if it belongs to the game's round. Otherwise first round games
// are matched by seeds and later rounds by bowl name.
func ResolveCFPSlot(g *Game) CFPSlot {
	if !g.Phase.IsCFP() {
		return CFPSlotNone
	}

	if g.CFPSlot.Valid() {
		if r, _ := RoundInfoForSlot(g.CFPSlot); r.Phase == g.Phase {
			return g.CFPSlot
		}
	}

	var s CFPSlot
	switch g.Phase {
	case PhaseCFPFirstRound:
		s = SlotForSeeds(g.TeamSeed, g.OpponentSeed)
	case PhaseCFPChampionship:
		s = CFPChampionship
	default:
		s = SlotForBowlName(g.BowlName)
	}

	if r, _ := RoundInfoForSlot(s); r.Phase != g.Phase {
		return CFPSlotNone
	}
	return s
}
