package dto

type DashboardStatsResponse struct {
	Patients int64 `json:"patients"`
	Visits   int64 `json:"visits"`
}
