package commerce

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/yungbote/storefront-analytics/internal/data/repos/testutil"
	"github.com/yungbote/storefront-analytics/internal/domain"
)

func TestSpendingByCustomer(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewOrderRepo(db, testutil.Logger(t))
	ctx := context.Background()

	cust := testutil.SeedCustomer(t, ctx, tx, "spending@example.com")
	prod := testutil.SeedProduct(t, ctx, tx, "Widget", "gadgets", 25)

	testutil.SeedOrderWithTotal(t, ctx, tx, cust.ID, domain.OrderStatusCompleted,
		time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), 100,
		[]domain.OrderItem{{ProductID: prod.ID, Quantity: 4, PriceAtPurchase: 25}})
	testutil.SeedOrderWithTotal(t, ctx, tx, cust.ID, domain.OrderStatusCompleted,
		time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC), 50,
		[]domain.OrderItem{{ProductID: prod.ID, Quantity: 2, PriceAtPurchase: 25}})

	row, err := repo.SpendingByCustomer(ctx, tx, cust.ID)
	if err != nil {
		t.Fatalf("SpendingByCustomer: %v", err)
	}
	if row.TotalSpent != 150 {
		t.Fatalf("TotalSpent: got=%v want=150", row.TotalSpent)
	}
	if row.OrderCount != 2 {
		t.Fatalf("OrderCount: got=%d want=2", row.OrderCount)
	}
	if row.LastOrderDate == nil || !row.LastOrderDate.Equal(time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("LastOrderDate: got=%v", row.LastOrderDate)
	}
}

func TestSpendingByCustomerNoOrders(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewOrderRepo(db, testutil.Logger(t))
	ctx := context.Background()

	cust := testutil.SeedCustomer(t, ctx, tx, "noorders@example.com")

	row, err := repo.SpendingByCustomer(ctx, tx, cust.ID)
	if err != nil {
		t.Fatalf("SpendingByCustomer: %v", err)
	}
	if row.TotalSpent != 0 || row.OrderCount != 0 {
		t.Fatalf("expected zero row, got=%+v", row)
	}
	if row.LastOrderDate != nil {
		t.Fatalf("LastOrderDate: expected nil, got=%v", row.LastOrderDate)
	}
}

func TestTopProductQuantities(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewOrderRepo(db, testutil.Logger(t))
	ctx := context.Background()

	cust := testutil.SeedCustomer(t, ctx, tx, "topproducts@example.com")
	p1 := testutil.SeedProduct(t, ctx, tx, "Alpha", "gadgets", 10)
	p2 := testutil.SeedProduct(t, ctx, tx, "Beta", "gadgets", 20)

	// p1 sells 8 across two orders, one of them pending: no status
	// filter applies to this query.
	testutil.SeedOrder(t, ctx, tx, cust.ID, domain.OrderStatusCompleted,
		time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		[]domain.OrderItem{{ProductID: p1.ID, Quantity: 3, PriceAtPurchase: 10}})
	testutil.SeedOrder(t, ctx, tx, cust.ID, domain.OrderStatusPending,
		time.Date(2024, 2, 2, 0, 0, 0, 0, time.UTC),
		[]domain.OrderItem{
			{ProductID: p1.ID, Quantity: 5, PriceAtPurchase: 10},
			{ProductID: p2.ID, Quantity: 1, PriceAtPurchase: 20},
		})

	rows, err := repo.TopProductQuantities(ctx, tx, 1)
	if err != nil {
		t.Fatalf("TopProductQuantities: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected 1 row, got=%d", len(rows))
	}
	if rows[0].ProductID != p1.ID || rows[0].TotalSold != 8 {
		t.Fatalf("unexpected top row: %+v", rows[0])
	}

	rows, err = repo.TopProductQuantities(ctx, tx, 10)
	if err != nil {
		t.Fatalf("TopProductQuantities: %v", err)
	}
	for i := 1; i < len(rows); i++ {
		if rows[i].TotalSold > rows[i-1].TotalSold {
			t.Fatalf("rows not sorted desc: %+v", rows)
		}
	}
}

func TestCompletedTotalsInWindowBoundaries(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewOrderRepo(db, testutil.Logger(t))
	ctx := context.Background()

	cust := testutil.SeedCustomer(t, ctx, tx, "window@example.com")
	prod := testutil.SeedProduct(t, ctx, tx, "Gamma", "gear", 30)

	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	// Included: on the start boundary.
	testutil.SeedOrderWithTotal(t, ctx, tx, cust.ID, domain.OrderStatusCompleted, start, 60,
		[]domain.OrderItem{{ProductID: prod.ID, Quantity: 2, PriceAtPurchase: 30}})
	// Excluded: on the end boundary.
	testutil.SeedOrderWithTotal(t, ctx, tx, cust.ID, domain.OrderStatusCompleted, end, 30,
		[]domain.OrderItem{{ProductID: prod.ID, Quantity: 1, PriceAtPurchase: 30}})
	// Excluded: pending inside the window.
	testutil.SeedOrderWithTotal(t, ctx, tx, cust.ID, domain.OrderStatusPending,
		start.AddDate(0, 0, 10), 90,
		[]domain.OrderItem{{ProductID: prod.ID, Quantity: 3, PriceAtPurchase: 30}})

	row, err := repo.CompletedTotalsInWindow(ctx, tx, start, end)
	if err != nil {
		t.Fatalf("CompletedTotalsInWindow: %v", err)
	}
	if row.TotalRevenue != 60 {
		t.Fatalf("TotalRevenue: got=%v want=60", row.TotalRevenue)
	}
	if row.CompletedOrders != 1 {
		t.Fatalf("CompletedOrders: got=%d want=1", row.CompletedOrders)
	}
}

func TestCategoryRevenueInWindow(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewOrderRepo(db, testutil.Logger(t))
	ctx := context.Background()

	cust := testutil.SeedCustomer(t, ctx, tx, "categories@example.com")
	books := testutil.SeedProduct(t, ctx, tx, "Novel", "books", 15)
	gear := testutil.SeedProduct(t, ctx, tx, "Tent", "outdoors", 120)

	start := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	// Stored total (999) diverges from line revenue on purpose; the
	// breakdown must use recomputed quantity * price_at_purchase.
	testutil.SeedOrderWithTotal(t, ctx, tx, cust.ID, domain.OrderStatusCompleted,
		start.AddDate(0, 0, 3), 999,
		[]domain.OrderItem{
			{ProductID: books.ID, Quantity: 2, PriceAtPurchase: 15},
			{ProductID: gear.ID, Quantity: 1, PriceAtPurchase: 120},
		})

	rows, err := repo.CategoryRevenueInWindow(ctx, tx, start, end)
	if err != nil {
		t.Fatalf("CategoryRevenueInWindow: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 categories, got=%d (%+v)", len(rows), rows)
	}
	if rows[0].Category != "outdoors" || rows[0].Revenue != 120 {
		t.Fatalf("unexpected first row: %+v", rows[0])
	}
	if rows[1].Category != "books" || rows[1].Revenue != 30 {
		t.Fatalf("unexpected second row: %+v", rows[1])
	}
}

func TestGetByIDsPreloadsItems(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewOrderRepo(db, testutil.Logger(t))
	ctx := context.Background()

	cust := testutil.SeedCustomer(t, ctx, tx, "preload@example.com")
	prod := testutil.SeedProduct(t, ctx, tx, "Delta", "gadgets", 5)
	order := testutil.SeedOrder(t, ctx, tx, cust.ID, domain.OrderStatusCompleted,
		time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC),
		[]domain.OrderItem{{ProductID: prod.ID, Quantity: 2, PriceAtPurchase: 5}})

	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{order.ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 1 || len(got[0].Items) != 1 {
		t.Fatalf("expected order with 1 item, got=%+v", got)
	}
	if got[0].Items[0].ProductID != prod.ID {
		t.Fatalf("unexpected item: %+v", got[0].Items[0])
	}
}
