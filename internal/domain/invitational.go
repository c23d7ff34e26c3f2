package domain

import "time"

type InvitationalStatus string

const (
	InvitationalOpen   InvitationalStatus = "open"
	InvitationalActive InvitationalStatus = "active"
	InvitationalClosed InvitationalStatus = "closed"
)

// RosterEntry is one slot on an invitational roster. Ghost entries are
// placeholders created by the host: they carry an invite code and no user id
// until someone claims them.
type RosterEntry struct {
	UserID      uint   `json:"user_id,omitempty"`
	DisplayName string `json:"display_name"`
	InviteCode  string `json:"invite_code,omitempty"`
	Ghost       bool   `json:"ghost"`
}

type Invitational struct {
	ID     uint               `json:"id"`
	Name   string             `json:"name"`
	HostID uint               `json:"host_id"`
	Status InvitationalStatus `json:"status"`
	Roster []RosterEntry      `json:"roster"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ClaimInviteResult reports the outcome of an invite-code claim. Domain
// failures (bad code, already claimed, already rostered) come back in Error
// with Success false; they are never surfaced as Go errors.
type ClaimInviteResult struct {
	Success          bool   `json:"success"`
	InvitationalID   uint   `json:"invitational_id,omitempty"`
	InvitationalName string `json:"invitational_name,omitempty"`
	Error            string `json:"error,omitempty"`
}
