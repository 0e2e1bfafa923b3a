package models

import "time"

type Attendee struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	EventID     uint       `gorm:"not null;index" json:"event_id"`
	Name        string     `gorm:"size:255;not null" json:"name"`
	Phone       string     `gorm:"size:50" json:"phone,omitempty"`
	Affiliation string     `gorm:"size:255" json:"affiliation,omitempty"`
	CheckedIn   bool       `gorm:"not null;default:false" json:"checked_in"`
	CheckedInAt *time.Time `json:"checked_in_at,omitempty"`
	Source      string     `gorm:"size:10;not null;default:'manual'" json:"source"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

const (
	SourceManual = "manual"
	SourceImport = "import"
)

const (
	MatchedByPhone = "phone"
	MatchedByName  = "name"
)

// DuplicateCandidate is a proposed-but-withheld import row that matched
// an existing attendee. It is never persisted: the client holds it
// between the import response and the confirm call.
type DuplicateCandidate struct {
	Name          string `json:"name"`
	Phone         string `json:"phone,omitempty"`
	Affiliation   string `json:"affiliation,omitempty"`
	Row           int    `json:"row"`
	MatchedBy     string `json:"matched_by"`
	ExistingName  string `json:"existing_name"`
	ExistingPhone string `json:"existing_phone,omitempty"`
}

// Stats is the per-event roster summary, recomputed on demand.
type Stats struct {
	Total     int64 `json:"total"`
	CheckedIn int64 `json:"checked_in"`
}
