package service_test

import (
	"context"
	"testing"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/testutil"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/version"
)

func TestSystemService(t *testing.T) {
	ctx := context.Background()

	t.Run("healthy database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		if err := svc.CheckHealth(ctx); err != nil {
			t.Errorf("CheckHealth() returned unexpected error: %v", err)
		}
	})

	t.Run("version info", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)

		info, err := svc.CheckVersion(ctx)
		if err != nil {
			t.Fatalf("CheckVersion() returned unexpected error: %v", err)
		}
		if info.AppVersion != version.Version {
			t.Errorf("Expected app version %s, got %s", version.Version, info.AppVersion)
		}
		if info.DbVersion != info.LatestDbVersion || info.MigrationNeeded {
			t.Errorf("Expected migrated database, got %+v", info)
		}
		if !info.Features["calculator"] {
			t.Errorf("Expected calculator feature, got %v", info.Features)
		}
	})

	t.Run("closed database", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSystemService(t, db)
		db.Close()

		if err := svc.CheckHealth(ctx); err == nil {
			t.Error("Expected health check to fail")
		}
		if _, err := svc.CheckVersion(ctx); err == nil {
			t.Error("Expected version check to fail")
		}
	})
}
