package entity

import "github.com/shopspring/decimal"

// DashboardStats foto agregada de la plataforma. No tiene identidad propia:
// el backend la recalcula en cada GET /api/admin/dashboard.
type DashboardStats struct {
	TotalUsers   int             `json:"totalUsers"`
	TotalRoutes  int             `json:"totalRoutes"`
	ActiveStores int             `json:"activeStores"`
	TotalSales   decimal.Decimal `json:"totalSales"`
}
