package commerce

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/yungbote/storefront-analytics/internal/domain"
	"github.com/yungbote/storefront-analytics/internal/platform/logger"
)

type CustomerRepo interface {
	Create(ctx context.Context, tx *gorm.DB, customers []*domain.Customer) ([]*domain.Customer, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, customerIDs []uuid.UUID) ([]*domain.Customer, error)
	Exists(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) (bool, error)
}

type customerRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCustomerRepo(db *gorm.DB, baseLog *logger.Logger) CustomerRepo {
	repoLog := baseLog.With("repo", "CustomerRepo")
	return &customerRepo{db: db, log: repoLog}
}

func (cr *customerRepo) Create(ctx context.Context, tx *gorm.DB, customers []*domain.Customer) ([]*domain.Customer, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	if len(customers) == 0 {
		return []*domain.Customer{}, nil
	}

	if err := transaction.WithContext(ctx).Create(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (cr *customerRepo) GetByIDs(ctx context.Context, tx *gorm.DB, customerIDs []uuid.UUID) ([]*domain.Customer, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var results []*domain.Customer
	if len(customerIDs) == 0 {
		return results, nil
	}

	if err := transaction.WithContext(ctx).
		Where("id IN ?", customerIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (cr *customerRepo) Exists(ctx context.Context, tx *gorm.DB, customerID uuid.UUID) (bool, error) {
	transaction := tx
	if transaction == nil {
		transaction = cr.db
	}

	var count int64
	if err := transaction.WithContext(ctx).
		Model(&domain.Customer{}).
		Where("id = ?", customerID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
