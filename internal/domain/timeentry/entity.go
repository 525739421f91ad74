package timeentry

import "time"

// EntryType marks the direction of a clock event.
type EntryType string

const (
	TypeEntry EntryType = "ENTRY" // clock-in
	TypeExit  EntryType = "EXIT"  // clock-out
)

// WorkMode is the work mode the user declared for the event.
type WorkMode string

const (
	ModeRemote     WorkMode = "REMOTE"
	ModePresential WorkMode = "PRESENTIAL"
)

// Location is a coordinate pair in signed decimal degrees.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// TimeEntry is a single clock event. Entries for a user must strictly
// alternate ENTRY, EXIT, ENTRY, ... ordered by timestamp; the service layer
// enforces this at creation time and entries are never updated afterwards.
type TimeEntry struct {
	ID         string
	UserID     string
	TenantID   string
	Type       EntryType
	Mode       WorkMode
	Timestamp  time.Time
	Location   *Location
	IsVerified bool
	Note       *string
	IPAddress  *string
	CreatedAt  time.Time
}
