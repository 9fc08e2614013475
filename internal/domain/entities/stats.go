package entities

// StatsWindow holds counts and sums for one reporting window
type StatsWindow struct {
	Washes  int64   `json:"washes"`
	Revenue float64 `json:"revenue"`
}

// MerchantDashboard aggregates a merchant's ledger for the dashboard view.
// Computed from source tables on every request, never cached.
type MerchantDashboard struct {
	Today          StatsWindow    `json:"today"`
	ThisWeek       StatsWindow    `json:"thisWeek"`
	ThisMonth      StatsWindow    `json:"thisMonth"`
	AllTime        StatsWindow    `json:"allTime"`
	Customers      int64          `json:"customers"`
	RewardsIssued  int64          `json:"rewardsIssued"`
	RewardsClaimed int64          `json:"rewardsClaimed"`
	RecentWashes   []*WashHistory `json:"recentWashes"`
}

// SuperadminDashboard aggregates platform-wide statistics
type SuperadminDashboard struct {
	TotalMerchants    int64            `json:"totalMerchants"`
	TotalCustomers    int64            `json:"totalCustomers"`
	TotalWashes       int64            `json:"totalWashes"`
	TotalRevenue      float64          `json:"totalRevenue"`
	RewardsIssued     int64            `json:"rewardsIssued"`
	RewardsClaimed    int64            `json:"rewardsClaimed"`
	MerchantsByPlan   map[string]int64 `json:"merchantsByPlan"`
	MerchantsByStatus map[string]int64 `json:"merchantsByStatus"`
}
