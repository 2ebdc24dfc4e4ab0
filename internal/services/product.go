package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/storefront-analytics/internal/data/repos"
	"github.com/yungbote/storefront-analytics/internal/domain"
	"github.com/yungbote/storefront-analytics/internal/platform/apierr"
	"github.com/yungbote/storefront-analytics/internal/platform/logger"
)

type ProductService interface {
	GetByID(ctx context.Context, productID string) (*domain.Product, error)
}

type productService struct {
	db           *gorm.DB
	log          *logger.Logger
	productRepo  repos.ProductRepo
	queryTimeout time.Duration
}

func NewProductService(db *gorm.DB, baseLog *logger.Logger, productRepo repos.ProductRepo, queryTimeout time.Duration) ProductService {
	serviceLog := baseLog.With("service", "ProductService")
	if queryTimeout <= 0 {
		queryTimeout = 5 * time.Second
	}
	return &productService{
		db:           db,
		log:          serviceLog,
		productRepo:  productRepo,
		queryTimeout: queryTimeout,
	}
}

func (ps *productService) GetByID(ctx context.Context, productID string) (*domain.Product, error) {
	pid, err := parseID(productID, "product_id")
	if err != nil {
		return nil, err
	}

	qctx, cancel := context.WithTimeout(ctx, ps.queryTimeout)
	defer cancel()

	products, err := ps.productRepo.GetByIDs(qctx, nil, []uuid.UUID{pid})
	if err != nil {
		ps.log.Error("store query failed", "op", "ProductService.GetByID", "error", err)
		return nil, apierr.Internal("store_query_failed", errors.New("store query failed"))
	}
	if len(products) == 0 {
		return nil, apierr.NotFound("product_not_found", errors.New("product not found"))
	}
	return products[0], nil
}
