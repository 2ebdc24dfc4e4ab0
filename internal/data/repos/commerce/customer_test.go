package commerce

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/yungbote/storefront-analytics/internal/data/repos/testutil"
)

func TestCustomerRepoExists(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewCustomerRepo(db, testutil.Logger(t))
	ctx := context.Background()

	cust := testutil.SeedCustomer(t, ctx, tx, "exists@example.com")

	exists, err := repo.Exists(ctx, tx, cust.ID)
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !exists {
		t.Fatalf("Exists: expected true")
	}

	exists, err = repo.Exists(ctx, tx, uuid.New())
	if err != nil {
		t.Fatalf("Exists (missing): %v", err)
	}
	if exists {
		t.Fatalf("Exists (missing): expected false")
	}
}

func TestCustomerRepoGetByIDs(t *testing.T) {
	db := testutil.DB(t)
	tx := testutil.Tx(t, db)
	repo := NewCustomerRepo(db, testutil.Logger(t))
	ctx := context.Background()

	cust := testutil.SeedCustomer(t, ctx, tx, "getbyids@example.com")

	got, err := repo.GetByIDs(ctx, tx, []uuid.UUID{cust.ID})
	if err != nil {
		t.Fatalf("GetByIDs: %v", err)
	}
	if len(got) != 1 || got[0].ID != cust.ID {
		t.Fatalf("GetByIDs: unexpected result: %+v", got)
	}

	got, err = repo.GetByIDs(ctx, tx, nil)
	if err != nil {
		t.Fatalf("GetByIDs (empty): %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("GetByIDs (empty): expected no rows, got=%d", len(got))
	}
}
