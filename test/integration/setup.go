package integration

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"foodzy/internal/database"
	"foodzy/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestDB represents a test database instance.
type TestDB struct {
	Container *postgres.PostgresContainer
	Pool      *pgxpool.Pool
	ConnStr   string
}

// SetupTestDB creates a PostgreSQL test container, applies the schema
// and seeds the catalogue.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		t.Fatalf("failed to start postgres container: %v", err)
	}

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		t.Fatalf("failed to get connection string: %v", err)
	}

	poolConfig, err := pgxpool.ParseConfig(connStr)
	if err != nil {
		t.Fatalf("failed to parse connection string: %v", err)
	}
	pool, err := pgxpool.NewWithConfig(ctx, poolConfig)
	if err != nil {
		t.Fatalf("failed to create connection pool: %v", err)
	}

	if err := pool.Ping(ctx); err != nil {
		t.Fatalf("failed to ping database: %v", err)
	}

	// Same path the server takes at startup: schema plus catalogue seed.
	if err := database.Migrate(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}

	t.Cleanup(func() {
		pool.Close()
		if err := postgresContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	return &TestDB{
		Container: postgresContainer,
		Pool:      pool,
		ConnStr:   connStr,
	}
}

// CleanupDB removes all mutable data. The seeded catalogue stays.
func CleanupDB(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	ctx := context.Background()

	tables := []string{"order_items", "orders", "otps", "users"}
	for _, table := range tables {
		_, err := pool.Exec(ctx, fmt.Sprintf("DELETE FROM %s", table))
		if err != nil {
			t.Logf("failed to clean table %s: %v", table, err)
		}
	}
}

// CapturingSender is a mail.Sender that records messages instead of
// delivering them.
type CapturingSender struct {
	mu            sync.Mutex
	OTPs          []CapturedOTP
	Confirmations []CapturedConfirmation
}

// CapturedOTP is one recorded passcode delivery.
type CapturedOTP struct {
	To   string
	Code string
}

// CapturedConfirmation is one recorded order confirmation delivery.
type CapturedConfirmation struct {
	To    string
	Order *model.OrderResponse
}

func (s *CapturingSender) SendOTP(ctx context.Context, to, code string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.OTPs = append(s.OTPs, CapturedOTP{To: to, Code: code})
	return nil
}

func (s *CapturingSender) SendOrderConfirmation(ctx context.Context, to string, order *model.OrderResponse) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Confirmations = append(s.Confirmations, CapturedConfirmation{To: to, Order: order})
	return nil
}

// LastOTP returns the most recently recorded passcode, or nil.
func (s *CapturingSender) LastOTP() *CapturedOTP {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.OTPs) == 0 {
		return nil
	}
	otp := s.OTPs[len(s.OTPs)-1]
	return &otp
}

// LastConfirmation returns the most recently recorded confirmation, or nil.
func (s *CapturingSender) LastConfirmation() *CapturedConfirmation {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.Confirmations) == 0 {
		return nil
	}
	c := s.Confirmations[len(s.Confirmations)-1]
	return &c
}
