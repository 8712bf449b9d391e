package audit

import "time"

// Entry is one immutable audit trail row; every mutating endpoint records
// who did what to which entity.
type Entry struct {
	ID        string
	ActorID   string
	Action    string // e.g. attendance.mark, employee.update
	Entity    string
	EntityID  string
	Detail    string
	CreatedAt time.Time
}

type Filter struct {
	ActorID *string
	Entity  *string
	Page    int
	Limit   int
}

type EntryResponse struct {
	ID        string `json:"id"`
	ActorID   string `json:"actor_id"`
	Action    string `json:"action"`
	Entity    string `json:"entity"`
	EntityID  string `json:"entity_id"`
	Detail    string `json:"detail,omitempty"`
	CreatedAt string `json:"created_at"`
}

type ListResponse struct {
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	Entries    []EntryResponse `json:"entries"`
}
