package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/storefront-analytics/internal/data/repos"
	"github.com/yungbote/storefront-analytics/internal/domain"
	"github.com/yungbote/storefront-analytics/internal/platform/apierr"
	"github.com/yungbote/storefront-analytics/internal/platform/logger"
)

type CustomerService interface {
	GetByID(ctx context.Context, customerID string) (*domain.Customer, error)
}

type customerService struct {
	db           *gorm.DB
	log          *logger.Logger
	customerRepo repos.CustomerRepo
	queryTimeout time.Duration
}

func NewCustomerService(db *gorm.DB, baseLog *logger.Logger, customerRepo repos.CustomerRepo, queryTimeout time.Duration) CustomerService {
	serviceLog := baseLog.With("service", "CustomerService")
	if queryTimeout <= 0 {
		queryTimeout = 5 * time.Second
	}
	return &customerService{
		db:           db,
		log:          serviceLog,
		customerRepo: customerRepo,
		queryTimeout: queryTimeout,
	}
}

func (cs *customerService) GetByID(ctx context.Context, customerID string) (*domain.Customer, error) {
	cid, err := parseID(customerID, "customer_id")
	if err != nil {
		return nil, err
	}

	qctx, cancel := context.WithTimeout(ctx, cs.queryTimeout)
	defer cancel()

	customers, err := cs.customerRepo.GetByIDs(qctx, nil, []uuid.UUID{cid})
	if err != nil {
		cs.log.Error("store query failed", "op", "CustomerService.GetByID", "error", err)
		return nil, apierr.Internal("store_query_failed", errors.New("store query failed"))
	}
	if len(customers) == 0 {
		return nil, apierr.NotFound("customer_not_found", errors.New("customer not found"))
	}
	return customers[0], nil
}

// parseID maps an empty or malformed identifier to the bad-input
// kind, which stays distinct from not-found.
func parseID(raw, field string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, apierr.BadInput(field+"_required", errors.New(field+" is required"))
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apierr.BadInput(field+"_invalid", errors.New(field+" is not a valid uuid"))
	}
	return id, nil
}
