package ptr

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

func Of[T any](v T) *T {
	return &v
}

// Deref returns the value pointed to by p if it's not nil, otherwise returns fallback
func Deref[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}

func BoolFromPgtype(pb pgtype.Bool) *bool {
	if !pb.Valid {
		return nil
	}
	return &pb.Bool
}

func DateFromPgtype(pd pgtype.Date) *time.Time {
	if !pd.Valid {
		return nil
	}
	t := pd.Time
	return &t
}

func TimeFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	return &pt.Time
}
