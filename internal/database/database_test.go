package database

import (
	"context"
	"testing"
)

func TestMigrate(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { db.Close() })
	db.SetMaxOpenConns(1)

	ctx := context.Background()

	version, err := Migrate(ctx, db)
	if err != nil {
		t.Fatalf("Migrate() error = %v", err)
	}
	if version != 2 {
		t.Errorf("Expected schema version 2, got %d", version)
	}

	for _, table := range []string{"fund", "fund_nav", "fund_dividend"} {
		var name string
		err := db.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table).Scan(&name)
		if err != nil {
			t.Errorf("Expected table %s to exist: %v", table, err)
		}
	}

	t.Run("is idempotent", func(t *testing.T) {
		again, err := Migrate(ctx, db)
		if err != nil {
			t.Fatalf("Migrate() error = %v", err)
		}
		if again != version {
			t.Errorf("Expected version %d, got %d", version, again)
		}
	})

	t.Run("reports schema version", func(t *testing.T) {
		current, latest, err := SchemaVersion(ctx, db)
		if err != nil {
			t.Fatalf("SchemaVersion() error = %v", err)
		}
		if current != latest || current != version {
			t.Errorf("Expected current = latest = %d, got %d and %d", version, current, latest)
		}
	})

	t.Run("rejects non-positive nav", func(t *testing.T) {
		if _, err := db.Exec(`INSERT INTO fund (id, name, isin, symbol, currency) VALUES ('f1', 'Fund', 'SA0000000001', 'F', 'SAR')`); err != nil {
			t.Fatalf("Failed to insert fund: %v", err)
		}
		_, err := db.Exec(`INSERT INTO fund_nav (id, fund_id, date, nav) VALUES ('n1', 'f1', '2024-01-01', 0)`)
		if err == nil {
			t.Error("Expected check constraint violation for nav = 0")
		}
	})
}

func TestHealthCheck(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	if err := HealthCheck(context.Background(), db); err != nil {
		t.Errorf("HealthCheck() error = %v", err)
	}

	db.Close()
	if err := HealthCheck(context.Background(), db); err == nil {
		t.Error("Expected error after close")
	}
}
