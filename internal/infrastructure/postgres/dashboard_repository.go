package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/cafes-platform-api/internal/domain/repository"
)

var _ repository.DashboardRepository = (*DashboardRepo)(nil)

// DashboardRepo consultas de solo lectura para los paneles de admin y vendedor.
// Cada conteo es una lectura independiente (sin snapshot entre métricas).
type DashboardRepo struct {
	db DB
}

// NewDashboardRepository construye el adaptador de paneles.
func NewDashboardRepository(db DB) *DashboardRepo {
	return &DashboardRepo{db: db}
}

// CountUsers total de cuentas registradas.
func (r *DashboardRepo) CountUsers(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM users`)
}

// CountPendingAds anuncios a la espera de moderación.
func (r *DashboardRepo) CountPendingAds(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM product_ads WHERE status = 'pending'`)
}

// CountPendingRequests solicitudes de partnership abiertas.
func (r *DashboardRepo) CountPendingRequests(ctx context.Context) (int64, error) {
	return r.count(ctx, `SELECT COUNT(*) FROM partnership_requests WHERE status = 'pending'`)
}

// RecentPendingAds los últimos anuncios pendientes con nombre del vendedor.
func (r *DashboardRepo) RecentPendingAds(ctx context.Context, limit int) ([]repository.RecentAd, error) {
	query := `
		SELECT pa.id, pa.product_name, u.username AS vendor_name, pa.created_at
		FROM product_ads pa
		JOIN users u ON pa.vendor_id = u.id
		WHERE pa.status = 'pending'
		ORDER BY pa.created_at DESC
		LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent pending ads: %w", err)
	}
	defer rows.Close()
	var list []repository.RecentAd
	for rows.Next() {
		var a repository.RecentAd
		if err := rows.Scan(&a.ID, &a.ProductName, &a.VendorName, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recent ad: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}

// RecentPendingRequests las últimas solicitudes pendientes con ambos nombres.
func (r *DashboardRepo) RecentPendingRequests(ctx context.Context, limit int) ([]repository.RecentRequest, error) {
	query := `
		SELECT pr.id, vendor.username AS vendor_name, cafe.username AS cafe_name, pr.status, pr.created_at
		FROM partnership_requests pr
		JOIN users vendor ON pr.vendor_id = vendor.id
		JOIN users cafe ON pr.cafe_owner_id = cafe.id
		WHERE pr.status = 'pending'
		ORDER BY pr.created_at DESC
		LIMIT $1`
	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("recent pending requests: %w", err)
	}
	defer rows.Close()
	var list []repository.RecentRequest
	for rows.Next() {
		var q repository.RecentRequest
		if err := rows.Scan(&q.ID, &q.VendorName, &q.CafeName, &q.Status, &q.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan recent request: %w", err)
		}
		list = append(list, q)
	}
	return list, rows.Err()
}

// VendorStats conteos del panel del vendedor en una sola pasada por tabla.
func (r *DashboardRepo) VendorStats(ctx context.Context, vendorID string) (repository.VendorStats, error) {
	var s repository.VendorStats
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'approved')
		FROM product_ads WHERE vendor_id = $1`, vendorID,
	).Scan(&s.TotalAds, &s.ApprovedAds)
	if err != nil {
		return s, fmt.Errorf("vendor ad stats: %w", err)
	}
	err = r.db.QueryRow(ctx, `
		SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'approved')
		FROM partnership_requests WHERE vendor_id = $1`, vendorID,
	).Scan(&s.TotalRequests, &s.ApprovedRequests)
	if err != nil {
		return s, fmt.Errorf("vendor request stats: %w", err)
	}
	return s, nil
}

func (r *DashboardRepo) count(ctx context.Context, query string) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, query).Scan(&n); err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return n, nil
}
