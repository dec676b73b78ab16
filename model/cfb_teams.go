package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

type Team struct {
	name   string
	school string
	mascot string
	conf   Conference
	nick   []string // Other names the team goes by, e.g. Bama for ALA
}

func (t *Team) String() string {
	return t.name
}

func (t *Team) School() string {
	return t.school
}

func (t *Team) Mascot() string {
	return t.mascot
}

func (t *Team) Conference() Conference {
	return t.conf
}

func (t *Team) Friendly() string {
	return fmt.Sprintf("%s %s", t.school, t.mascot)
}

func (t *Team) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Abbreviation string     `json:"abbreviation"`
		School       string     `json:"school"`
		Mascot       string     `json:"mascot"`
		Conference   Conference `json:"conference"`
	}{t.name, t.school, t.mascot, t.conf})
}

func (t *Team) Equals(o *Team) bool {
	if o == nil {
		return false
	}

	if t == o {
		return true
	}

	return t.name == o.name &&
		t.school == o.school &&
		t.mascot == o.mascot &&
		t.conf == o.conf &&
		arrayEquals(t.nick, o.nick)
}

var (
	// ACC
	TEAM_BC   *Team = &Team{name: "BC", school: "Boston College", mascot: "Eagles", conf: CONF_ACC}
	TEAM_CAL  *Team = &Team{name: "CAL", school: "California", mascot: "Golden Bears", conf: CONF_ACC, nick: []string{"Cal"}}
	TEAM_CLEM *Team = &Team{name: "CLEM", school: "Clemson", mascot: "Tigers", conf: CONF_ACC}
	TEAM_DUKE *Team = &Team{name: "DUKE", school: "Duke", mascot: "Blue Devils", conf: CONF_ACC}
	TEAM_FSU  *Team = &Team{name: "FSU", school: "Florida State", mascot: "Seminoles", conf: CONF_ACC, nick: []string{"Noles"}}
	TEAM_GT   *Team = &Team{name: "GT", school: "Georgia Tech", mascot: "Yellow Jackets", conf: CONF_ACC}
	TEAM_LOU  *Team = &Team{name: "LOU", school: "Louisville", mascot: "Cardinals", conf: CONF_ACC}
	TEAM_MIA  *Team = &Team{name: "MIA", school: "Miami", mascot: "Hurricanes", conf: CONF_ACC, nick: []string{"The U", "Canes"}}
	TEAM_UNC  *Team = &Team{name: "UNC", school: "North Carolina", mascot: "Tar Heels", conf: CONF_ACC}
	TEAM_NCST *Team = &Team{name: "NCST", school: "NC State", mascot: "Wolfpack", conf: CONF_ACC}
	TEAM_PITT *Team = &Team{name: "PITT", school: "Pittsburgh", mascot: "Panthers", conf: CONF_ACC, nick: []string{"Pitt"}}
	TEAM_SMU  *Team = &Team{name: "SMU", school: "SMU", mascot: "Mustangs", conf: CONF_ACC}
	TEAM_STAN *Team = &Team{name: "STAN", school: "Stanford", mascot: "Cardinal", conf: CONF_ACC}
	TEAM_SYR  *Team = &Team{name: "SYR", school: "Syracuse", mascot: "Orange", conf: CONF_ACC, nick: []string{"Cuse"}}
	TEAM_UVA  *Team = &Team{name: "UVA", school: "Virginia", mascot: "Cavaliers", conf: CONF_ACC, nick: []string{"Hoos"}}
	TEAM_VT   *Team = &Team{name: "VT", school: "Virginia Tech", mascot: "Hokies", conf: CONF_ACC}
	TEAM_WAKE *Team = &Team{name: "WAKE", school: "Wake Forest", mascot: "Demon Deacons", conf: CONF_ACC}

	// Big Ten
	TEAM_ILL  *Team = &Team{name: "ILL", school: "Illinois", mascot: "Fighting Illini", conf: CONF_B1G}
	TEAM_IND  *Team = &Team{name: "IND", school: "Indiana", mascot: "Hoosiers", conf: CONF_B1G}
	TEAM_IOWA *Team = &Team{name: "IOWA", school: "Iowa", mascot: "Hawkeyes", conf: CONF_B1G}
	TEAM_MD   *Team = &Team{name: "MD", school: "Maryland", mascot: "Terrapins", conf: CONF_B1G, nick: []string{"Terps"}}
	TEAM_MICH *Team = &Team{name: "MICH", school: "Michigan", mascot: "Wolverines", conf: CONF_B1G}
	TEAM_MSU  *Team = &Team{name: "MSU", school: "Michigan State", mascot: "Spartans", conf: CONF_B1G}
	TEAM_MINN *Team = &Team{name: "MINN", school: "Minnesota", mascot: "Golden Gophers", conf: CONF_B1G, nick: []string{"Gophers"}}
	TEAM_NEB  *Team = &Team{name: "NEB", school: "Nebraska", mascot: "Cornhuskers", conf: CONF_B1G, nick: []string{"Huskers"}}
	TEAM_NW   *Team = &Team{name: "NW", school: "Northwestern", mascot: "Wildcats", conf: CONF_B1G}
	TEAM_OSU  *Team = &Team{name: "OSU", school: "Ohio State", mascot: "Buckeyes", conf: CONF_B1G, nick: []string{"Ohio St."}}
	TEAM_ORE  *Team = &Team{name: "ORE", school: "Oregon", mascot: "Ducks", conf: CONF_B1G}
	TEAM_PSU  *Team = &Team{name: "PSU", school: "Penn State", mascot: "Nittany Lions", conf: CONF_B1G}
	TEAM_PUR  *Team = &Team{name: "PUR", school: "Purdue", mascot: "Boilermakers", conf: CONF_B1G}
	TEAM_RUTG *Team = &Team{name: "RUTG", school: "Rutgers", mascot: "Scarlet Knights", conf: CONF_B1G}
	TEAM_UCLA *Team = &Team{name: "UCLA", school: "UCLA", mascot: "Bruins", conf: CONF_B1G}
	TEAM_USC  *Team = &Team{name: "USC", school: "USC", mascot: "Trojans", conf: CONF_B1G, nick: []string{"Southern California"}}
	TEAM_WASH *Team = &Team{name: "WASH", school: "Washington", mascot: "Huskies", conf: CONF_B1G, nick: []string{"UW", "Dawgs"}}
	TEAM_WIS  *Team = &Team{name: "WIS", school: "Wisconsin", mascot: "Badgers", conf: CONF_B1G}

	// Big 12
	TEAM_ARIZ *Team = &Team{name: "ARIZ", school: "Arizona", mascot: "Wildcats", conf: CONF_B12, nick: []string{"Zona"}}
	TEAM_ASU  *Team = &Team{name: "ASU", school: "Arizona State", mascot: "Sun Devils", conf: CONF_B12}
	TEAM_BAY  *Team = &Team{name: "BAY", school: "Baylor", mascot: "Bears", conf: CONF_B12}
	TEAM_BYU  *Team = &Team{name: "BYU", school: "BYU", mascot: "Cougars", conf: CONF_B12}
	TEAM_CIN  *Team = &Team{name: "CIN", school: "Cincinnati", mascot: "Bearcats", conf: CONF_B12, nick: []string{"Cincy"}}
	TEAM_COLO *Team = &Team{name: "COLO", school: "Colorado", mascot: "Buffaloes", conf: CONF_B12, nick: []string{"Buffs"}}
	TEAM_HOU  *Team = &Team{name: "HOU", school: "Houston", mascot: "Cougars", conf: CONF_B12}
	TEAM_ISU  *Team = &Team{name: "ISU", school: "Iowa State", mascot: "Cyclones", conf: CONF_B12}
	TEAM_KU   *Team = &Team{name: "KU", school: "Kansas", mascot: "Jayhawks", conf: CONF_B12}
	TEAM_KSU  *Team = &Team{name: "KSU", school: "Kansas State", mascot: "Wildcats", conf: CONF_B12, nick: []string{"K-State"}}
	TEAM_OKST *Team = &Team{name: "OKST", school: "Oklahoma State", mascot: "Cowboys", conf: CONF_B12, nick: []string{"Pokes"}}
	TEAM_TCU  *Team = &Team{name: "TCU", school: "TCU", mascot: "Horned Frogs", conf: CONF_B12}
	TEAM_TTU  *Team = &Team{name: "TTU", school: "Texas Tech", mascot: "Red Raiders", conf: CONF_B12}
	TEAM_UCF  *Team = &Team{name: "UCF", school: "UCF", mascot: "Knights", conf: CONF_B12}
	TEAM_UTAH *Team = &Team{name: "UTAH", school: "Utah", mascot: "Utes", conf: CONF_B12}
	TEAM_WVU  *Team = &Team{name: "WVU", school: "West Virginia", mascot: "Mountaineers", conf: CONF_B12}

	// SEC
	TEAM_ALA  *Team = &Team{name: "ALA", school: "Alabama", mascot: "Crimson Tide", conf: CONF_SEC, nick: []string{"Bama"}}
	TEAM_ARK  *Team = &Team{name: "ARK", school: "Arkansas", mascot: "Razorbacks", conf: CONF_SEC, nick: []string{"Hogs"}}
	TEAM_AUB  *Team = &Team{name: "AUB", school: "Auburn", mascot: "Tigers", conf: CONF_SEC}
	TEAM_FLA  *Team = &Team{name: "FLA", school: "Florida", mascot: "Gators", conf: CONF_SEC}
	TEAM_UGA  *Team = &Team{name: "UGA", school: "Georgia", mascot: "Bulldogs", conf: CONF_SEC}
	TEAM_UK   *Team = &Team{name: "UK", school: "Kentucky", mascot: "Wildcats", conf: CONF_SEC}
	TEAM_LSU  *Team = &Team{name: "LSU", school: "LSU", mascot: "Tigers", conf: CONF_SEC}
	TEAM_MISS *Team = &Team{name: "MISS", school: "Ole Miss", mascot: "Rebels", conf: CONF_SEC}
	TEAM_MSST *Team = &Team{name: "MSST", school: "Mississippi State", mascot: "Bulldogs", conf: CONF_SEC}
	TEAM_MIZ  *Team = &Team{name: "MIZ", school: "Missouri", mascot: "Tigers", conf: CONF_SEC, nick: []string{"Mizzou"}}
	TEAM_OU   *Team = &Team{name: "OU", school: "Oklahoma", mascot: "Sooners", conf: CONF_SEC}
	TEAM_SC   *Team = &Team{name: "SC", school: "South Carolina", mascot: "Gamecocks", conf: CONF_SEC}
	TEAM_TENN *Team = &Team{name: "TENN", school: "Tennessee", mascot: "Volunteers", conf: CONF_SEC, nick: []string{"Vols"}}
	TEAM_TEX  *Team = &Team{name: "TEX", school: "Texas", mascot: "Longhorns", conf: CONF_SEC}
	TEAM_TAMU *Team = &Team{name: "TAMU", school: "Texas A&M", mascot: "Aggies", conf: CONF_SEC}
	TEAM_VAN  *Team = &Team{name: "VAN", school: "Vanderbilt", mascot: "Commodores", conf: CONF_SEC, nick: []string{"Vandy"}}

	// Group of five and independents
	TEAM_ND   *Team = &Team{name: "ND", school: "Notre Dame", mascot: "Fighting Irish", conf: CONF_IND}
	TEAM_ARMY *Team = &Team{name: "ARMY", school: "Army", mascot: "Black Knights", conf: CONF_AAC}
	TEAM_NAVY *Team = &Team{name: "NAVY", school: "Navy", mascot: "Midshipmen", conf: CONF_AAC}
	TEAM_TULN *Team = &Team{name: "TULN", school: "Tulane", mascot: "Green Wave", conf: CONF_AAC}
	TEAM_MEM  *Team = &Team{name: "MEM", school: "Memphis", mascot: "Tigers", conf: CONF_AAC}
	TEAM_BOIS *Team = &Team{name: "BOIS", school: "Boise State", mascot: "Broncos", conf: CONF_MWC}
	TEAM_SDSU *Team = &Team{name: "SDSU", school: "San Diego State", mascot: "Aztecs", conf: CONF_MWC}
	TEAM_FRES *Team = &Team{name: "FRES", school: "Fresno State", mascot: "Bulldogs", conf: CONF_MWC}
	TEAM_WSU  *Team = &Team{name: "WSU", school: "Washington State", mascot: "Cougars", conf: CONF_PAC, nick: []string{"Wazzu"}}
	TEAM_ORST *Team = &Team{name: "ORST", school: "Oregon State", mascot: "Beavers", conf: CONF_PAC}
	TEAM_APP  *Team = &Team{name: "APP", school: "Appalachian State", mascot: "Mountaineers", conf: CONF_SBC, nick: []string{"App State"}}
	TEAM_JMU  *Team = &Team{name: "JMU", school: "James Madison", mascot: "Dukes", conf: CONF_SBC}
	TEAM_CCU  *Team = &Team{name: "CCU", school: "Coastal Carolina", mascot: "Chanticleers", conf: CONF_SBC}
	TEAM_TOL  *Team = &Team{name: "TOL", school: "Toledo", mascot: "Rockets", conf: CONF_MAC}
	TEAM_MIOH *Team = &Team{name: "MIOH", school: "Miami (OH)", mascot: "RedHawks", conf: CONF_MAC, nick: []string{"M-OH"}}
	TEAM_LIB  *Team = &Team{name: "LIB", school: "Liberty", mascot: "Flames", conf: CONF_CUSA}
	TEAM_WKU  *Team = &Team{name: "WKU", school: "Western Kentucky", mascot: "Hilltoppers", conf: CONF_CUSA}

	allTeams []*Team = []*Team{
		TEAM_BC, TEAM_CAL, TEAM_CLEM, TEAM_DUKE, TEAM_FSU, TEAM_GT, TEAM_LOU, TEAM_MIA, TEAM_UNC,
		TEAM_NCST, TEAM_PITT, TEAM_SMU, TEAM_STAN, TEAM_SYR, TEAM_UVA, TEAM_VT, TEAM_WAKE,

		TEAM_ILL, TEAM_IND, TEAM_IOWA, TEAM_MD, TEAM_MICH, TEAM_MSU, TEAM_MINN, TEAM_NEB, TEAM_NW,
		TEAM_OSU, TEAM_ORE, TEAM_PSU, TEAM_PUR, TEAM_RUTG, TEAM_UCLA, TEAM_USC, TEAM_WASH, TEAM_WIS,

		TEAM_ARIZ, TEAM_ASU, TEAM_BAY, TEAM_BYU, TEAM_CIN, TEAM_COLO, TEAM_HOU, TEAM_ISU, TEAM_KU,
		TEAM_KSU, TEAM_OKST, TEAM_TCU, TEAM_TTU, TEAM_UCF, TEAM_UTAH, TEAM_WVU,

		TEAM_ALA, TEAM_ARK, TEAM_AUB, TEAM_FLA, TEAM_UGA, TEAM_UK, TEAM_LSU, TEAM_MISS, TEAM_MSST,
		TEAM_MIZ, TEAM_OU, TEAM_SC, TEAM_TENN, TEAM_TEX, TEAM_TAMU, TEAM_VAN,

		TEAM_ND, TEAM_ARMY, TEAM_NAVY, TEAM_TULN, TEAM_MEM, TEAM_BOIS, TEAM_SDSU, TEAM_FRES,
		TEAM_WSU, TEAM_ORST, TEAM_APP, TEAM_JMU, TEAM_CCU, TEAM_TOL, TEAM_MIOH, TEAM_LIB, TEAM_WKU,
	}

	teamMap           map[string]*Team       = buildTeamMap()
	conferenceMembers map[Conference][]*Team = buildConferenceMembers()
)

// ParseTeam looks a team up by abbreviation, school, mascot or nickname. Some
// mascots are shared (Tigers, Wildcats, ...), for those the first team in the
// table wins, so prefer the abbreviation or school. Returns nil for teams not
// in the table, e.g. FCS opponents.
func ParseTeam(name string) *Team {
	return teamMap[strings.ToLower(strings.TrimSpace(name))]
}

func Teams() []*Team {
	return append([]*Team(nil), allTeams...)
}

// DisplayName resolves an opponent as typed into the friendly name, falling
// back to the raw value when the team is not known.
func DisplayName(opponent string) string {
	if t := ParseTeam(opponent); t != nil {
		return t.Friendly()
	}
	return opponent
}

func buildTeamMap() map[string]*Team {
	teamMap := make(map[string]*Team)
	add := func(key string, t *Team) {
		key = strings.ToLower(key)
		if _, found := teamMap[key]; !found {
			teamMap[key] = t
		}
	}

	// Abbreviations and schools go in first so that they win over shared mascots.
	for _, t := range allTeams {
		add(t.name, t)
		add(t.school, t)
	}
	for _, t := range allTeams {
		add(t.Friendly(), t)
		for _, n := range t.nick {
			add(n, t)
		}
	}
	for _, t := range allTeams {
		add(t.mascot, t)
	}
	return teamMap
}

func buildConferenceMembers() map[Conference][]*Team {
	m := make(map[Conference][]*Team)
	for _, t := range allTeams {
		m[t.conf] = append(m[t.conf], t)
	}
	return m
}

func arrayEquals(a, b []string) bool {
	if a == nil && b == nil {
		return true
	}

	if (a == nil && b != nil) || (a != nil && b == nil) {
		return false
	}

	if len(a) != len(b) {
		return false
	}

	for i, v := range a {
		if v != b[i] {
			return false
		}
	}

	return true
}
