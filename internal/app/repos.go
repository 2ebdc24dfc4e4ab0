package app

import (
	"gorm.io/gorm"

	"github.com/yungbote/storefront-analytics/internal/data/repos"
	"github.com/yungbote/storefront-analytics/internal/platform/logger"
)

type Repos struct {
	Customer repos.CustomerRepo
	Product  repos.ProductRepo
	Order    repos.OrderRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Customer: repos.NewCustomerRepo(db, log),
		Product:  repos.NewProductRepo(db, log),
		Order:    repos.NewOrderRepo(db, log),
	}
}
