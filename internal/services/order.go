package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/storefront-analytics/internal/data/repos"
	"github.com/yungbote/storefront-analytics/internal/domain"
	"github.com/yungbote/storefront-analytics/internal/platform/apierr"
	"github.com/yungbote/storefront-analytics/internal/platform/logger"
)

type OrderService interface {
	// GetByID returns the order, optionally enriched with its
	// customer and per-item products. Enrichment failures resolve to
	// null rather than failing the lookup.
	GetByID(ctx context.Context, orderID string, expandCustomer, expandProducts bool) (*domain.Order, error)
}

type orderService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo repos.CustomerRepo
	productRepo  repos.ProductRepo
	orderRepo    repos.OrderRepo
	queryTimeout time.Duration
}

func NewOrderService(
	db *gorm.DB,
	baseLog *logger.Logger,
	customerRepo repos.CustomerRepo,
	productRepo repos.ProductRepo,
	orderRepo repos.OrderRepo,
	queryTimeout time.Duration,
) OrderService {
	serviceLog := baseLog.With("service", "OrderService")
	if queryTimeout <= 0 {
		queryTimeout = 5 * time.Second
	}
	return &orderService{
		db:           db,
		log:          serviceLog,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		orderRepo:    orderRepo,
		queryTimeout: queryTimeout,
	}
}

func (os *orderService) GetByID(ctx context.Context, orderID string, expandCustomer, expandProducts bool) (*domain.Order, error) {
	oid, err := parseID(orderID, "order_id")
	if err != nil {
		return nil, err
	}

	qctx, cancel := context.WithTimeout(ctx, os.queryTimeout)
	defer cancel()

	orders, err := os.orderRepo.GetByIDs(qctx, nil, []uuid.UUID{oid})
	if err != nil {
		os.log.Error("store query failed", "op", "OrderService.GetByID", "error", err)
		return nil, apierr.Internal("store_query_failed", errors.New("store query failed"))
	}
	if len(orders) == 0 {
		return nil, apierr.NotFound("order_not_found", errors.New("order not found"))
	}
	order := orders[0]

	if expandCustomer || expandProducts {
		os.enrich(qctx, order, expandCustomer, expandProducts)
	}
	return order, nil
}

// enrich resolves referenced entities concurrently. A resolution that
// fails or finds nothing leaves the field nil; partial results beat
// failing the whole response.
func (os *orderService) enrich(ctx context.Context, order *domain.Order, expandCustomer, expandProducts bool) {
	var wg sync.WaitGroup

	if expandCustomer {
		wg.Add(1)
		go func() {
			defer wg.Done()
			customers, err := os.customerRepo.GetByIDs(ctx, nil, []uuid.UUID{order.CustomerID})
			if err != nil {
				os.log.Warn("customer resolution failed", "order_id", order.ID.String(), "error", err)
				return
			}
			if len(customers) > 0 {
				order.Customer = customers[0]
			}
		}()
	}

	if expandProducts && len(order.Items) > 0 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ids := make([]uuid.UUID, 0, len(order.Items))
			for _, it := range order.Items {
				ids = append(ids, it.ProductID)
			}
			products, err := os.productRepo.GetByIDs(ctx, nil, ids)
			if err != nil {
				os.log.Warn("product resolution failed", "order_id", order.ID.String(), "error", err)
				return
			}
			byID := make(map[uuid.UUID]*domain.Product, len(products))
			for _, p := range products {
				byID[p.ID] = p
			}
			for i := range order.Items {
				if p, ok := byID[order.Items[i].ProductID]; ok {
					order.Items[i].Product = p
				}
			}
		}()
	}

	wg.Wait()
}
