package services

import (
	"context"
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/yungbote/storefront-analytics/internal/data/repos"
	"github.com/yungbote/storefront-analytics/internal/domain"
	"github.com/yungbote/storefront-analytics/internal/platform/apierr"
	"github.com/yungbote/storefront-analytics/internal/platform/logger"
)

// ReportService runs the three analytics queries. Parameter
// validation happens before any store access; store failures are
// logged here and surfaced as a generic internal error.
type ReportService interface {
	GetCustomerSpending(ctx context.Context, customerID string) (*domain.CustomerSpending, error)
	GetTopSellingProducts(ctx context.Context, limit int) ([]*domain.TopProduct, error)
	GetSalesAnalytics(ctx context.Context, startDate, endDate string) (*domain.SalesAnalytics, error)
}

type reportService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo repos.CustomerRepo
	productRepo  repos.ProductRepo
	orderRepo    repos.OrderRepo
	queryTimeout time.Duration
}

func NewReportService(
	db *gorm.DB,
	baseLog *logger.Logger,
	customerRepo repos.CustomerRepo,
	productRepo repos.ProductRepo,
	orderRepo repos.OrderRepo,
	queryTimeout time.Duration,
) ReportService {
	serviceLog := baseLog.With("service", "ReportService")
	if queryTimeout <= 0 {
		queryTimeout = 5 * time.Second
	}
	return &reportService{
		db:           db,
		log:          serviceLog,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		queryTimeout: queryTimeout,
	}
}

func (rs *reportService) GetCustomerSpending(ctx context.Context, customerID string) (*domain.CustomerSpending, error) {
	customerID = strings.TrimSpace(customerID)
	if customerID == "" {
		return nil, apierr.BadInput("customer_id_required", errors.New("customer id is required"))
	}
	cid, err := uuid.Parse(customerID)
	if err != nil {
		return nil, apierr.BadInput("customer_id_invalid", errors.New("customer id is not a valid uuid"))
	}

	qctx, cancel := rs.queryContext(ctx)
	defer cancel()

	row, err := rs.orderRepo.SpendingByCustomer(qctx, nil, cid)
	if err != nil {
		return nil, rs.storeError("GetCustomerSpending", err)
	}

	if row.OrderCount == 0 {
		// Zero orders is a legitimate summary, but only for a
		// customer that actually exists.
		exists, err := rs.customerRepo.Exists(qctx, nil, cid)
		if err != nil {
			return nil, rs.storeError("GetCustomerSpending", err)
		}
		if !exists {
			return nil, apierr.NotFound("customer_not_found", errors.New("customer not found"))
		}
		return &domain.CustomerSpending{CustomerID: cid}, nil
	}

	avg := row.TotalSpent / float64(row.OrderCount)
	summary := &domain.CustomerSpending{
		CustomerID:        cid,
		TotalSpent:        round2(row.TotalSpent),
		AverageOrderValue: round2(avg),
		OrderCount:        row.OrderCount,
	}
	if row.LastOrderDate != nil {
		last := domain.NewISOTime(*row.LastOrderDate)
		summary.LastOrderDate = &last
	}
	return summary, nil
}

func (rs *reportService) GetTopSellingProducts(ctx context.Context, limit int) ([]*domain.TopProduct, error) {
	if limit <= 0 {
		return nil, apierr.BadInput("limit_invalid", errors.New("limit must be a positive integer"))
	}

	qctx, cancel := rs.queryContext(ctx)
	defer cancel()

	rows, err := rs.orderRepo.TopProductQuantities(qctx, nil, limit)
	if err != nil {
		return nil, rs.storeError("GetTopSellingProducts", err)
	}

	ids := make([]uuid.UUID, 0, len(rows))
	for _, row := range rows {
		ids = append(ids, row.ProductID)
	}
	products, err := rs.productRepo.GetByIDs(qctx, nil, ids)
	if err != nil {
		return nil, rs.storeError("GetTopSellingProducts", err)
	}
	byID := make(map[uuid.UUID]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	// Groups whose product no longer exists are dropped, not
	// backfilled; the page may come back shorter than limit.
	out := make([]*domain.TopProduct, 0, len(rows))
	for _, row := range rows {
		p, ok := byID[row.ProductID]
		if !ok {
			continue
		}
		out = append(out, &domain.TopProduct{
			ProductID: row.ProductID,
			Name:      p.Name,
			TotalSold: row.TotalSold,
		})
	}
	return out, nil
}

func (rs *reportService) GetSalesAnalytics(ctx context.Context, startDate, endDate string) (*domain.SalesAnalytics, error) {
	start, err := domain.ParseISOTime(startDate)
	if err != nil {
		return nil, apierr.BadInput("start_date_invalid", errors.New("start date is not a valid timestamp"))
	}
	end, err := domain.ParseISOTime(endDate)
	if err != nil {
		return nil, apierr.BadInput("end_date_invalid", errors.New("end date is not a valid timestamp"))
	}
	if !start.Time.Before(end.Time) {
		return nil, apierr.BadInput("date_range_invalid", errors.New("start date must be before end date"))
	}

	qctx, cancel := rs.queryContext(ctx)
	defer cancel()

	// Overall totals and the category breakdown are independent reads
	// over the same filtered set; run both and join before assembly.
	var (
		totals *repos.WindowTotalsRow
		cats   []repos.CategoryRevenueRow
	)
	g, gctx := errgroup.WithContext(qctx)
	g.Go(func() error {
		var err error
		totals, err = rs.orderRepo.CompletedTotalsInWindow(gctx, nil, start.Time, end.Time)
		return err
	})
	g.Go(func() error {
		var err error
		cats, err = rs.orderRepo.CategoryRevenueInWindow(gctx, nil, start.Time, end.Time)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, rs.storeError("GetSalesAnalytics", err)
	}

	breakdown := make([]domain.CategoryRevenue, 0, len(cats))
	for _, c := range cats {
		breakdown = append(breakdown, domain.CategoryRevenue{
			Category: c.Category,
			Revenue:  round2(c.Revenue),
		})
	}
	return &domain.SalesAnalytics{
		TotalRevenue:      round2(totals.TotalRevenue),
		CompletedOrders:   totals.CompletedOrders,
		CategoryBreakdown: breakdown,
	}, nil
}

func (rs *reportService) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, rs.queryTimeout)
}

// Store errors never reach the caller verbatim.
func (rs *reportService) storeError(op string, err error) error {
	rs.log.Error("store query failed", "op", op, "error", err)
	return apierr.Internal("store_query_failed", errors.New("store query failed"))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
