//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// TestPassword is the plain text behind TestPasswordHash.
const TestPassword = "password123"

const TestPasswordHash = "$2a$12$uhAjVE9f92IGYv3E25pJNetg.27lVt0p7jmLWjqjmhOg92ldPS0A."

// CreateTestUser inserts an active user with a fresh valid cédula. Walkers start in
// walkerStatus; pass "" for owners and admins.
func CreateTestUser(t *testing.T, db DBLike, email, role, walkerStatus string) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	var status any
	if walkerStatus != "" {
		status = walkerStatus
	}

	ctx := context.Background()
	tag, err := db.Exec(ctx, `
		INSERT INTO users (id, email, password_hash, role, full_name, phone, cedula, walker_status, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, true)
		ON CONFLICT (email) DO NOTHING`,
		userID, email, TestPasswordHash, role, "Test "+role, "0991234567", RandomCedula(), status)
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestPet(t *testing.T, db DBLike, ownerID uuid.UUID, name string) uuid.UUID {
	t.Helper()

	petID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO pets (id, owner_id, name, breed) VALUES ($1, $2, $3, $4)",
		petID, ownerID, name, "Mestizo")
	require.NoError(t, err)

	return petID
}

// Walk is one row of the walks table. Nil pointers are stored as NULL.
type Walk struct {
	OwnerID       uuid.UUID
	WalkerID      uuid.UUID
	PetID         uuid.UUID
	Date          *time.Time
	StartTime     *string
	Status        string
	CostCents     int64
	Duration      int
	Kind          string
	GroupID       *string
	IsGroupMember *bool
	CreatedAt     time.Time
}

func CreateTestWalk(t *testing.T, db DBLike, w Walk) uuid.UUID {
	t.Helper()

	if w.Status == "" {
		w.Status = "PENDING"
	}
	if w.Kind == "" {
		w.Kind = "SINGLE"
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now()
	}

	walkID := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO walks (id, owner_id, walker_id, pet_id, walk_date, start_time, status,
		                   cost_cents, duration_minutes, kind, group_id, is_group_member, created_at)
		VALUES ($1, $2, $3, $4, $5, $6::text::time, $7, $8, $9, $10, $11, $12, $13)`,
		walkID, w.OwnerID, w.WalkerID, w.PetID, w.Date, w.StartTime, w.Status,
		w.CostCents, w.Duration, w.Kind, w.GroupID, w.IsGroupMember, w.CreatedAt)
	require.NoError(t, err)

	return walkID
}

// RandomCedula builds a number that passes the province, third digit and check digit rules.
func RandomCedula() string {
	digits := make([]int, 10)
	province := rand.IntN(24) + 1
	digits[0], digits[1] = province/10, province%10
	digits[2] = rand.IntN(6)
	for i := 3; i < 9; i++ {
		digits[i] = rand.IntN(10)
	}

	sum := 0
	for i := 0; i < 9; i++ {
		p := digits[i] * (2 - i%2)
		if p >= 10 {
			p -= 9
		}
		sum += p
	}
	digits[9] = (10 - sum%10) % 10

	var b strings.Builder
	for _, d := range digits {
		b.WriteByte(byte('0' + d))
	}
	return b.String()
}

// SeedReferenceData inserts the admin account every environment starts with.
func SeedReferenceData(pool *pgxpool.Pool) error {
	ctx := context.Background()

	_, err := pool.Exec(ctx, `
		INSERT INTO users (email, password_hash, role, full_name, phone, cedula)
		VALUES ('admin@paseos.test', $1, 'admin', 'Admin', '0990000000', '1712345675')
		ON CONFLICT (email) DO NOTHING;
	`, TestPasswordHash)
	if err != nil {
		return err
	}

	return nil
}

// resetTables lists every table the schema owns, children first.
var resetTables = []string{"walks", "pets", "walker_quiz_results", "users"}

// ResetDB empties the schema and reseeds reference data.
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	stmt := "TRUNCATE " + strings.Join(resetTables, ", ") + " RESTART IDENTITY CASCADE"
	if _, err := pool.Exec(ctx, stmt); err != nil {
		return fmt.Errorf("reset tables: %w", err)
	}

	return SeedReferenceData(pool)
}
