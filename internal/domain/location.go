package domain

import "strings"

// Location a store/hub where motorcycles are picked up or transferred to
type Location string

const (
	LocationAracaju   Location = "Aracaju"
	LocationSocorro   Location = "Socorro"
	LocationItabaiana Location = "Itabaiana"

	// LocationOther sentinel: the actual place is given as free text
	LocationOther Location = "Outro"
)

// HubLocations the named hubs in display priority order
var HubLocations = []Location{
	LocationAracaju,
	LocationSocorro,
	LocationItabaiana,
}

// IsKnownLocation returns true for the hubs and the "other" sentinel
func IsKnownLocation(s string) bool {
	if IsOtherLocation(s) {
		return true
	}
	return HubPriority(s) >= 0
}

// IsOtherLocation returns true if s is the "other" sentinel
func IsOtherLocation(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), string(LocationOther))
}

// HubPriority returns the position of a hub in HubLocations or -1 for anything else
func HubPriority(s string) int {
	for i, hub := range HubLocations {
		if string(hub) == s {
			return i
		}
	}
	return -1
}
