package dto

// RoleCount is one slice of the role distribution chart.
type RoleCount struct {
	Role  string `json:"role"`
	Value int    `json:"value"`
}

// MonthCount is one month bucket of the feedback-per-month chart. Months
// without feedback are omitted, not zero-filled.
type MonthCount struct {
	Month string `json:"month"`
	Count int    `json:"count"`
}

// YearCount is one bucket of the students-per-year chart.
type YearCount struct {
	Year  int `json:"year"`
	Count int `json:"count"`
}

// AdminOverview is the admin dashboard payload.
type AdminOverview struct {
	TotalUsers       int          `json:"totalUsers"`
	TotalStudents    int          `json:"totalStudents"`
	TotalPrograms    int          `json:"totalPrograms"`
	AverageRating    float64      `json:"averageRating"`
	MonthlyFeedbacks []MonthCount `json:"monthlyFeedbacks"`
	RoleDistribution []RoleCount  `json:"roleDistribution"`
	StudentsPerYear  []YearCount  `json:"studentsPerYear"`
}
