package reservation

import (
	"fmt"
	"time"
)

// DateLayout is the dd/MM/yyyy format used for every date shown to owners and walkers.
const DateLayout = "02/01/2006"

// Money is a non-negative amount in cents.
type Money struct {
	cents int64
}

// NewMoney clamps negative input to zero; costs come from snapshots that are never rejected.
func NewMoney(cents int64) Money {
	if cents < 0 {
		cents = 0
	}
	return Money{cents: cents}
}

func (m Money) Cents() int64 {
	return m.cents
}

func (m Money) Amount() float64 {
	return float64(m.cents) / 100.0
}

func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

func (m Money) String() string {
	return fmt.Sprintf("%d.%02d", m.cents/100, m.cents%100)
}

func formatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.Format(DateLayout)
}

// compareDates orders known dates chronologically and puts unknown dates after known ones.
// Two unknown dates compare equal.
func compareDates(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return a.Compare(*b)
	}
}
