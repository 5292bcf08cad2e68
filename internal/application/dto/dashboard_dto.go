package dto

import "time"

// AdminStats conteos del panel de administración. Flags aún no está
// implementado en la plataforma; se reporta en cero para el frontend.
type AdminStats struct {
	PendingProducts int64 `json:"pendingProducts"`
	Users           int64 `json:"users"`
	OpenRequests    int64 `json:"openRequests"`
	Flags           int64 `json:"flags"`
}

// RecentAdDTO anuncio pendiente reciente del panel de admin.
type RecentAdDTO struct {
	ID          string    `json:"id"`
	ProductName string    `json:"product_name"`
	VendorName  string    `json:"vendor_name"`
	CreatedAt   time.Time `json:"created_at"`
}

// RecentRequestDTO solicitud pendiente reciente del panel de admin.
type RecentRequestDTO struct {
	ID         string    `json:"id"`
	VendorName string    `json:"vendor_name"`
	CafeName   string    `json:"cafe_owner"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

// AdminDashboardResponse respuesta completa del panel de admin.
// Cada métrica es una lectura independiente (sin snapshot entre ellas).
type AdminDashboardResponse struct {
	Stats          AdminStats         `json:"stats"`
	RecentProducts []RecentAdDTO      `json:"recentProducts"`
	RecentRequests []RecentRequestDTO `json:"recentRequests"`
}

// VendorDashboardResponse conteos del panel del vendedor.
type VendorDashboardResponse struct {
	TotalAds         int64 `json:"totalAds"`
	ApprovedAds      int64 `json:"activeAds"`
	TotalRequests    int64 `json:"totalRequests"`
	ApprovedRequests int64 `json:"approvedRequests"`
}
