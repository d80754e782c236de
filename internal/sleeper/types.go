package sleeper

import "strings"

// League describes a Sleeper league.
type League struct {
	LeagueID     string `json:"league_id"`
	Name         string `json:"name"`
	Season       string `json:"season"`
	TotalRosters int    `json:"total_rosters"`
}

// Draft is one entry of a league's draft list.
type Draft struct {
	DraftID string `json:"draft_id"`
	Status  string `json:"status"`
	Type    string `json:"type"`
	Created int64  `json:"created"`
}

// User maps a league member's ID to their display name.
type User struct {
	UserID      string `json:"user_id"`
	DisplayName string `json:"display_name"`
}

// PickMetadata is the player snapshot embedded in a draft pick. Display names
// come from here, not from the player directory.
type PickMetadata struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
}

// Pick is a single selection in a draft, in draft-sequence order.
type Pick struct {
	PlayerID string       `json:"player_id"`
	PickedBy string       `json:"picked_by"`
	Round    int          `json:"round"`
	PickNo   int          `json:"pick_no"`
	Metadata PickMetadata `json:"metadata"`
}

// PlayerName joins the embedded first and last names. Both empty yields an
// empty string rather than a stray space.
func (p Pick) PlayerName() string {
	return strings.TrimSpace(p.Metadata.FirstName + " " + p.Metadata.LastName)
}

// Player is one record of the full player directory dump.
type Player struct {
	PlayerID  string `json:"player_id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Position  string `json:"position"`
	Team      string `json:"team"`
}
