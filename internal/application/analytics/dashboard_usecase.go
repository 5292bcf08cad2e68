// Package analytics arma los paneles de admin y vendedor a partir de
// lecturas independientes: una métrica puede reflejar un instante distinto a
// otra de la misma respuesta, aceptable para reporting.
package analytics

import (
	"context"

	"github.com/jhoicas/cafes-platform-api/internal/application/dto"
	"github.com/jhoicas/cafes-platform-api/internal/domain/repository"
)

// recentLimit filas recientes mostradas en el panel de admin.
const recentLimit = 5

// DashboardUseCase compone las métricas de los paneles.
type DashboardUseCase struct {
	repo repository.DashboardRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.DashboardRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// AdminDashboard conteos globales más los últimos pendientes de moderación.
func (uc *DashboardUseCase) AdminDashboard(ctx context.Context) (*dto.AdminDashboardResponse, error) {
	pendingAds, err := uc.repo.CountPendingAds(ctx)
	if err != nil {
		return nil, err
	}
	users, err := uc.repo.CountUsers(ctx)
	if err != nil {
		return nil, err
	}
	openRequests, err := uc.repo.CountPendingRequests(ctx)
	if err != nil {
		return nil, err
	}
	recentAds, err := uc.repo.RecentPendingAds(ctx, recentLimit)
	if err != nil {
		return nil, err
	}
	recentRequests, err := uc.repo.RecentPendingRequests(ctx, recentLimit)
	if err != nil {
		return nil, err
	}

	out := &dto.AdminDashboardResponse{
		Stats: dto.AdminStats{
			PendingProducts: pendingAds,
			Users:           users,
			OpenRequests:    openRequests,
			Flags:           0,
		},
		RecentProducts: make([]dto.RecentAdDTO, 0, len(recentAds)),
		RecentRequests: make([]dto.RecentRequestDTO, 0, len(recentRequests)),
	}
	for _, a := range recentAds {
		out.RecentProducts = append(out.RecentProducts, dto.RecentAdDTO{
			ID:          a.ID,
			ProductName: a.ProductName,
			VendorName:  a.VendorName,
			CreatedAt:   a.CreatedAt,
		})
	}
	for _, q := range recentRequests {
		out.RecentRequests = append(out.RecentRequests, dto.RecentRequestDTO{
			ID:         q.ID,
			VendorName: q.VendorName,
			CafeName:   q.CafeName,
			Status:     q.Status,
			CreatedAt:  q.CreatedAt,
		})
	}
	return out, nil
}

// VendorDashboard métricas del vendedor autenticado.
func (uc *DashboardUseCase) VendorDashboard(ctx context.Context, vendorID string) (*dto.VendorDashboardResponse, error) {
	stats, err := uc.repo.VendorStats(ctx, vendorID)
	if err != nil {
		return nil, err
	}
	return &dto.VendorDashboardResponse{
		TotalAds:         stats.TotalAds,
		ApprovedAds:      stats.ApprovedAds,
		TotalRequests:    stats.TotalRequests,
		ApprovedRequests: stats.ApprovedRequests,
	}, nil
}
