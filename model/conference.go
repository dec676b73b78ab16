package model

import (
	"strings"
)

type Conference string

const (
	CONF_UNKNOWN Conference = ""
	CONF_ACC     Conference = "ACC"
	CONF_AAC     Conference = "American"
	CONF_B12     Conference = "Big 12"
	CONF_B1G     Conference = "Big Ten"
	CONF_CUSA    Conference = "Conference USA"
	CONF_IND     Conference = "Independent"
	CONF_MAC     Conference = "MAC"
	CONF_MWC     Conference = "Mountain West"
	CONF_PAC     Conference = "Pac-12"
	CONF_SEC     Conference = "SEC"
	CONF_SBC     Conference = "Sun Belt"
)

var conferences = []Conference{
	CONF_ACC, CONF_AAC, CONF_B12, CONF_B1G, CONF_CUSA, CONF_IND,
	CONF_MAC, CONF_MWC, CONF_PAC, CONF_SEC, CONF_SBC,
}

func ParseConference(conf string) Conference {
	conf = strings.ToLower(strings.TrimSpace(conf))
	switch conf {
	case "acc", "atlantic coast":
		return CONF_ACC
	case "american", "aac", "american athletic":
		return CONF_AAC
	case "big 12", "big12", "b12", "big xii":
		return CONF_B12
	case "big ten", "bigten", "big 10", "b1g":
		return CONF_B1G
	case "conference usa", "c-usa", "cusa":
		return CONF_CUSA
	case "independent", "ind", "independents":
		return CONF_IND
	case "mac", "mid-american":
		return CONF_MAC
	case "mountain west", "mwc":
		return CONF_MWC
	case "pac-12", "pac 12", "pac12":
		return CONF_PAC
	case "sec", "southeastern":
		return CONF_SEC
	case "sun belt", "sbc", "sunbelt":
		return CONF_SBC
	default:
		return CONF_UNKNOWN
	}
}

func Conferences() []Conference {
	return append([]Conference(nil), conferences...)
}

// ConferenceTeams lists the members of a conference in table order.
func ConferenceTeams(c Conference) []*Team {
	return conferenceMembers[c]
}
