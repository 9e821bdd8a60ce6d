package model

// DashboardStats holds the per-kind pending counts shown on the dashboard.
type DashboardStats struct {
	TotalStudents     int64 `json:"total_students"`
	PendingOutings    int64 `json:"pending_outings"`
	PendingXerox      int64 `json:"pending_xerox"`
	PendingMess       int64 `json:"pending_mess"`
	PendingFivestar   int64 `json:"pending_fivestar"`
	PendingCCD        int64 `json:"pending_ccd"`
	PendingStationary int64 `json:"pending_stationary"`
}

// PlaceholderStats is the documented fallback shown when the stats endpoint
// is unreachable. The values are fixed, not cached from a previous load.
func PlaceholderStats() *DashboardStats {
	return &DashboardStats{
		TotalStudents:     150,
		PendingOutings:    5,
		PendingXerox:      12,
		PendingMess:       8,
		PendingFivestar:   3,
		PendingCCD:        4,
		PendingStationary: 2,
	}
}
