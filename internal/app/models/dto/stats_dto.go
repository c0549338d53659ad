package dto

// StatusCounts maps a status value to the number of entities in that status,
// plus a total
type StatusCounts struct {
	Counts map[string]int64 `json:"counts"`
	Total  int64            `json:"total"`
}

// StatsResponse is the admin dashboard aggregate
type StatsResponse struct {
	Teachers     StatusCounts `json:"teachers"`
	Parents      StatusCounts `json:"parents"`
	Requests     StatusCounts `json:"requests"`
	Appointments StatusCounts `json:"appointments"`
}
