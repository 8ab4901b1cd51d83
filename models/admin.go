package models

// PlatformStats is the admin dashboard summary.
type PlatformStats struct {
	TotalUsers        int64   `json:"totalUsers"`
	TotalCreatives    int64   `json:"totalCreatives"`
	PendingCreatives  int64   `json:"pendingCreatives"`
	TotalBookings     int64   `json:"totalBookings"`
	NewBookings7d     int64   `json:"newBookings7d"`
	NewBookings30d    int64   `json:"newBookings30d"`
	CompletedRevenue  float64 `json:"completedRevenue"`
	AverageRating     float64 `json:"averageRating"`
}
