// Package server is the HTTP surface of the tracker: gin router,
// token middleware and JSON handlers over the storage and the
// derived-metrics engine.
package server

import (
	"context"

	"github.com/gin-gonic/gin"

	"max.ks1230/finance-tracker/internal/clients/kafka"
	"max.ks1230/finance-tracker/internal/entity/currency"
	"max.ks1230/finance-tracker/internal/entity/finance"
	"max.ks1230/finance-tracker/internal/model/display"
)

type financeStorage interface {
	EnsureProfile(ctx context.Context, profile finance.Profile) error
	GetProfile(ctx context.Context, userID int64) (finance.Profile, error)
	SaveTransaction(ctx context.Context, userID int64, tx finance.Transaction) error
	GetTransactions(ctx context.Context, userID int64) ([]finance.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, id int64) error
	SaveBudget(ctx context.Context, userID int64, budget finance.Budget) error
	GetBudgets(ctx context.Context, userID int64) ([]finance.Budget, error)
	DeleteBudget(ctx context.Context, userID, id int64) error
	SavePot(ctx context.Context, userID int64, pot finance.Pot) error
	GetPots(ctx context.Context, userID int64) ([]finance.Pot, error)
	UpdatePotTotal(ctx context.Context, userID, id int64, delta float64) error
	DeletePot(ctx context.Context, userID, id int64) error
	SaveBill(ctx context.Context, userID int64, bill finance.RecurringBill) error
	GetBills(ctx context.Context, userID int64) ([]finance.RecurringBill, error)
	DeleteBill(ctx context.Context, userID, id int64) error
	GetSettings(ctx context.Context, userID int64) (finance.Settings, error)
	SaveSettings(ctx context.Context, settings finance.Settings) error
}

type ratesProvider interface {
	Table() currency.RateTable
}

type statementCache interface {
	GetStatement(userID int64, period string) (string, error)
	InvalidateStatements(userID int64, periods []string) error
}

type statementQueue interface {
	RequestStatement(req *kafka.StatementRequest) error
}

type serverConfig interface {
	Mode() string
	Secret() string
}

type appConfig interface {
	BaseCurrency() string
	TrendMonths() int
}

type Server struct {
	storage     financeStorage
	rates       ratesProvider
	cache       statementCache
	queue       statementQueue
	formatter   *display.Formatter
	secret      string
	baseCode    string
	trendMonths int
}

func New(
	serverCfg serverConfig,
	appCfg appConfig,
	storage financeStorage,
	rates ratesProvider,
	cache statementCache,
	queue statementQueue,
) *Server {
	return &Server{
		storage:     storage,
		rates:       rates,
		cache:       cache,
		queue:       queue,
		formatter:   display.NewFormatter(rates, appCfg),
		secret:      serverCfg.Secret(),
		baseCode:    appCfg.BaseCurrency(),
		trendMonths: appCfg.TrendMonths(),
	}
}

// Router wires every route. Everything under /api requires a valid
// token except the static category catalog.
func Router(cfg serverConfig, s *Server) *gin.Engine {
	if cfg.Mode() != "" {
		gin.SetMode(cfg.Mode())
	}
	r := gin.New()
	r.Use(gin.Recovery(), observeRequests())

	api := r.Group("/api")
	api.GET("/categories", s.listCategories)

	protected := api.Group("")
	protected.Use(s.authMiddleware())

	protected.GET("/me", s.getProfile)

	protected.GET("/transactions", s.listTransactions)
	protected.POST("/transactions", s.createTransaction)
	protected.DELETE("/transactions/:id", s.deleteTransaction)

	protected.GET("/budgets", s.listBudgets)
	protected.POST("/budgets", s.createBudget)
	protected.DELETE("/budgets/:id", s.deleteBudget)

	protected.GET("/pots", s.listPots)
	protected.POST("/pots", s.createPot)
	protected.POST("/pots/:id/money", s.movePotMoney)
	protected.DELETE("/pots/:id", s.deletePot)

	protected.GET("/bills", s.listBills)
	protected.POST("/bills", s.createBill)
	protected.DELETE("/bills/:id", s.deleteBill)

	protected.GET("/settings", s.getSettings)
	protected.PUT("/settings", s.saveSettings)

	protected.GET("/overview", s.getOverview)
	protected.GET("/overview/breakdown", s.getBreakdown)
	protected.GET("/overview/trend", s.getTrend)
	protected.GET("/overview/alerts", s.getAlerts)

	protected.GET("/rates", s.getRates)

	protected.POST("/statements", s.requestStatement)
	protected.GET("/statements/:period", s.getStatement)

	return r
}
