package repository

import (
	"context"
	"time"
)

// RecentAd fila resumida para el panel de admin.
type RecentAd struct {
	ID          string
	ProductName string
	VendorName  string
	CreatedAt   time.Time
}

// RecentRequest fila resumida de solicitud pendiente para el panel de admin.
type RecentRequest struct {
	ID         string
	VendorName string
	CafeName   string
	Status     string
	CreatedAt  time.Time
}

// VendorStats conteos del panel del vendedor. Cada métrica es una lectura
// independiente; no hay snapshot consistente entre ellas.
type VendorStats struct {
	TotalAds         int64
	ApprovedAds      int64
	TotalRequests    int64
	ApprovedRequests int64
}

// DashboardRepository consultas de solo lectura para los paneles.
type DashboardRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountPendingAds(ctx context.Context) (int64, error)
	CountPendingRequests(ctx context.Context) (int64, error)
	RecentPendingAds(ctx context.Context, limit int) ([]RecentAd, error)
	RecentPendingRequests(ctx context.Context, limit int) ([]RecentRequest, error)
	VendorStats(ctx context.Context, vendorID string) (VendorStats, error)
}
