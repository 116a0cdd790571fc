package user

type Role string

const (
	RoleOwner  Role = "owner"
	RoleWalker Role = "walker"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleOwner, RoleWalker, RoleAdmin:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// WalkerStatus tracks a walker application through the admission quiz.
type WalkerStatus string

const (
	WalkerStatusQuizPending WalkerStatus = "quiz_pending"
	WalkerStatusApproved    WalkerStatus = "approved"
	WalkerStatusRejected    WalkerStatus = "rejected"
)

func (s WalkerStatus) String() string {
	return string(s)
}

func (s WalkerStatus) IsValid() bool {
	switch s {
	case WalkerStatusQuizPending, WalkerStatusApproved, WalkerStatusRejected:
		return true
	default:
		return false
	}
}

// WalkerStatusFromVerdict maps a quiz verdict to the resulting application status.
func WalkerStatusFromVerdict(passed bool) WalkerStatus {
	if passed {
		return WalkerStatusApproved
	}
	return WalkerStatusRejected
}
