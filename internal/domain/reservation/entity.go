package reservation

import "time"

// Record is a read-only snapshot of a single walk booking as stored by the backend.
// Optional fields are pointers; nil means the value is missing in the source document.
type Record struct {
	ID              string
	OwnerName       string
	WalkerName      string
	WalkerPhotoURL  string
	PetName         string
	Date            *time.Time
	StartTime       string
	Status          Status
	Cost            Money
	DurationMinutes int
	Kind            Kind
	GroupID         *string
	IsGroupMember   *bool
}

// InGroup reports whether the record must be aggregated with the other days of its group.
func (r Record) InGroup() bool {
	return r.IsGroupMember != nil && *r.IsGroupMember &&
		r.GroupID != nil && *r.GroupID != ""
}

func (r Record) FormattedDate() string {
	return formatDate(r.Date)
}

func (r Record) IsCompleted() bool {
	return r.Status == StatusCompleted
}
