package reservation

type Status string

const (
	StatusPending    Status = "PENDING"
	StatusConfirmed  Status = "CONFIRMED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusCompleted  Status = "COMPLETED"
	StatusCancelled  Status = "CANCELLED"
	StatusRejected   Status = "REJECTED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsKnown() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted, StatusCancelled, StatusRejected:
		return true
	default:
		return false
	}
}

// IsActive reports whether the walk still needs attention. Anything that is neither
// completed nor cancelled counts, including empty or unknown values.
func (s Status) IsActive() bool {
	return s != StatusCompleted && s != StatusCancelled
}

type Kind string

const (
	KindSingle  Kind = "SINGLE"
	KindWeekly  Kind = "WEEKLY"
	KindMonthly Kind = "MONTHLY"
)

func (k Kind) String() string {
	return string(k)
}

func (k Kind) IsValid() bool {
	switch k {
	case KindSingle, KindWeekly, KindMonthly:
		return true
	default:
		return false
	}
}
