package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ndewijer/Fund-Growth-Calculator/internal/apperrors"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/model"
	"github.com/ndewijer/Fund-Growth-Calculator/internal/testutil"
)

func TestRefreshService_RefreshAll(t *testing.T) {
	ctx := context.Background()

	t.Run("stores only newer observations", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		fund := testutil.NewFund().WithSymbol("FLAG.SR").Build(t, db)
		testutil.NewNavSeries(fund.ID).Add("2025-01-02", 10).Build(t, db)

		// 2024-12-31 .. 2025-01-04; two are not newer than the stored date
		feed := testutil.NewMockFeedClient().
			WithNavs("FLAG.SR", testutil.RecentNavs(testutil.Date("2025-01-04"), 5, 9)...)
		svc := testutil.NewTestRefreshService(t, db, feed)

		stored, err := svc.RefreshAll(ctx)
		if err != nil {
			t.Fatalf("RefreshAll() returned unexpected error: %v", err)
		}
		if stored != 2 {
			t.Errorf("Expected 2 stored observations, got %d", stored)
		}
		testutil.AssertRowCount(t, db, "fund_nav", 3)

		again, err := svc.RefreshAll(ctx)
		if err != nil || again != 0 {
			t.Errorf("Expected second refresh to store nothing, got %d (%v)", again, err)
		}
	})

	t.Run("empty fund takes everything", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.NewFund().WithSymbol("NEW.SR").Build(t, db)

		feed := testutil.NewMockFeedClient().
			WithNavs("NEW.SR", testutil.RecentNavs(testutil.Date("2025-01-04"), 3, 5)...)
		svc := testutil.NewTestRefreshService(t, db, feed)

		stored, err := svc.RefreshAll(ctx)
		if err != nil || stored != 3 {
			t.Errorf("Expected 3 stored observations, got %d (%v)", stored, err)
		}
	})

	t.Run("funds without symbol are skipped", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.NewFund().WithSymbol("").Build(t, db)

		feed := testutil.NewMockFeedClient()
		svc := testutil.NewTestRefreshService(t, db, feed)

		if _, err := svc.RefreshAll(ctx); err != nil {
			t.Fatalf("RefreshAll() returned unexpected error: %v", err)
		}
		if feed.QueryCount != 0 {
			t.Errorf("Expected no feed queries, got %d", feed.QueryCount)
		}
	})

	t.Run("non-positive closes are dropped", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.NewFund().WithSymbol("ZERO.SR").Build(t, db)

		feed := testutil.NewMockFeedClient().WithNavs("ZERO.SR",
			model.NavObservation{Date: testutil.Date("2025-01-02"), NAV: 0},
			model.NavObservation{Date: testutil.Date("2025-01-03"), NAV: 4},
		)
		svc := testutil.NewTestRefreshService(t, db, feed)

		stored, err := svc.RefreshAll(ctx)
		if err != nil || stored != 1 {
			t.Errorf("Expected 1 stored observation, got %d (%v)", stored, err)
		}
	})

	t.Run("one failing fund does not stop the others", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		testutil.NewFund().WithName("A Fund").WithSymbol("BAD.SR").Build(t, db)
		testutil.NewFund().WithName("B Fund").WithSymbol("GOOD.SR").Build(t, db)

		feed := testutil.NewMockFeedClient().
			WithError("BAD.SR", errors.New("feed down")).
			WithNavs("GOOD.SR", testutil.RecentNavs(time.Date(2025, 1, 4, 0, 0, 0, 0, time.UTC), 2, 3)...)
		svc := testutil.NewTestRefreshService(t, db, feed)

		stored, err := svc.RefreshAll(ctx)
		if !errors.Is(err, apperrors.ErrFailedToRefreshNavs) {
			t.Errorf("Expected ErrFailedToRefreshNavs, got %v", err)
		}
		if stored != 2 {
			t.Errorf("Expected 2 stored observations, got %d", stored)
		}
		if feed.QueryCount != 2 {
			t.Errorf("Expected 2 feed queries, got %d", feed.QueryCount)
		}
	})
}
