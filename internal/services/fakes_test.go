package services

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/storefront-analytics/internal/data/repos"
	"github.com/yungbote/storefront-analytics/internal/domain"
)

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*domain.Customer
	err       error
}

func (f *fakeCustomerRepo) Create(_ context.Context, _ *gorm.DB, customers []*domain.Customer) ([]*domain.Customer, error) {
	return customers, f.err
}

func (f *fakeCustomerRepo) GetByIDs(_ context.Context, _ *gorm.DB, ids []uuid.UUID) ([]*domain.Customer, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Customer
	for _, id := range ids {
		if c, ok := f.customers[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) Exists(_ context.Context, _ *gorm.DB, id uuid.UUID) (bool, error) {
	if f.err != nil {
		return false, f.err
	}
	_, ok := f.customers[id]
	return ok, nil
}

type fakeProductRepo struct {
	products map[uuid.UUID]*domain.Product
	err      error
}

func (f *fakeProductRepo) Create(_ context.Context, _ *gorm.DB, products []*domain.Product) ([]*domain.Product, error) {
	return products, f.err
}

func (f *fakeProductRepo) GetByIDs(_ context.Context, _ *gorm.DB, ids []uuid.UUID) ([]*domain.Product, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

type fakeOrderRepo struct {
	mu    sync.Mutex
	calls []string

	orders []*domain.Order

	spending    *repos.SpendingRow
	spendingErr error

	quantities    []repos.ProductQuantityRow
	quantitiesErr error

	totals    *repos.WindowTotalsRow
	totalsErr error

	categories    []repos.CategoryRevenueRow
	categoriesErr error

	getErr error
}

func (f *fakeOrderRepo) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeOrderRepo) Create(_ context.Context, _ *gorm.DB, orders []*domain.Order) ([]*domain.Order, error) {
	return orders, nil
}

func (f *fakeOrderRepo) GetByIDs(_ context.Context, _ *gorm.DB, ids []uuid.UUID) ([]*domain.Order, error) {
	f.record("GetByIDs")
	if f.getErr != nil {
		return nil, f.getErr
	}
	var out []*domain.Order
	for _, id := range ids {
		for _, o := range f.orders {
			if o.ID == id {
				out = append(out, o)
			}
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) SpendingByCustomer(_ context.Context, _ *gorm.DB, _ uuid.UUID) (*repos.SpendingRow, error) {
	f.record("SpendingByCustomer")
	if f.spendingErr != nil {
		return nil, f.spendingErr
	}
	if f.spending == nil {
		return &repos.SpendingRow{}, nil
	}
	return f.spending, nil
}

func (f *fakeOrderRepo) TopProductQuantities(_ context.Context, _ *gorm.DB, limit int) ([]repos.ProductQuantityRow, error) {
	f.record("TopProductQuantities")
	if f.quantitiesErr != nil {
		return nil, f.quantitiesErr
	}
	if limit > len(f.quantities) {
		limit = len(f.quantities)
	}
	return f.quantities[:limit], nil
}

func (f *fakeOrderRepo) CompletedTotalsInWindow(_ context.Context, _ *gorm.DB, _, _ time.Time) (*repos.WindowTotalsRow, error) {
	f.record("CompletedTotalsInWindow")
	if f.totalsErr != nil {
		return nil, f.totalsErr
	}
	if f.totals == nil {
		return &repos.WindowTotalsRow{}, nil
	}
	return f.totals, nil
}

func (f *fakeOrderRepo) CategoryRevenueInWindow(_ context.Context, _ *gorm.DB, _, _ time.Time) ([]repos.CategoryRevenueRow, error) {
	f.record("CategoryRevenueInWindow")
	if f.categoriesErr != nil {
		return nil, f.categoriesErr
	}
	return f.categories, nil
}

func (f *fakeOrderRepo) called(name string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, c := range f.calls {
		if c == name {
			return true
		}
	}
	return false
}
