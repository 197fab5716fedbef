// Package v1 is the HTTP API for the household finance backend.
//
// Every resource endpoint acts on behalf of the owner identified by the
// X-Owner-ID header.
package v1

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/household-finance/backend/internal/config"
	"github.com/household-finance/backend/pkg/settlement"
	"github.com/household-finance/backend/pkg/store"
)

// Controller serves the v1 API.
type Controller struct {
	store  *store.Store
	engine *settlement.Engine
	cfg    *config.Config
	now    func() time.Time
}

// New returns a Controller working on the store.
func New(s *store.Store, cfg *config.Config) Controller {
	return Controller{
		store:  s,
		engine: settlement.New(s),
		cfg:    cfg,
		now:    time.Now,
	}
}

// RegisterRoutes registers all v1 routes with the RouterGroup that is passed.
func (co Controller) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("", Get)
	r.OPTIONS("", Options)

	api := r.Group("", co.OwnerMiddleware())

	co.RegisterAccountRoutes(api.Group("/accounts"))
	co.RegisterCreditCardRoutes(api.Group("/credit-cards"))
	co.RegisterCategoryRoutes(api.Group("/categories"))
	co.RegisterThirdPartyRoutes(api.Group("/third-parties"))
	co.RegisterTransactionRoutes(api.Group("/transactions"))
	co.RegisterReceivableRoutes(api.Group("/receivables"))
	co.RegisterScheduledIncomeRoutes(api.Group("/scheduled-incomes"))
	co.RegisterMonthRoutes(api.Group("/months"))
	co.RegisterProfileRoutes(api.Group("/profile"))
}
