package domain

import "time"

// TopRatedItem is one row of the best-rated ranking.
// Title, Price and CoverURL stay empty when the item record is gone.
type TopRatedItem struct {
	ItemID        string   `json:"item_id"`
	AvgRating     float64  `json:"avg_rating"`
	ReviewCount   int      `json:"review_count"`
	RecommendRate float64  `json:"recommend_rate"`
	AvgPlaytime   *float64 `json:"avg_playtime"`
	Title         string   `json:"title,omitempty"`
	Price         *float64 `json:"price,omitempty"`
	CoverURL      string   `json:"cover_url,omitempty"`
}

// PublisherRevenue sums purchases of one publisher's items.
type PublisherRevenue struct {
	PublisherID   string  `json:"publisher_id"`
	PublisherName string  `json:"publisher_name"`
	TotalRevenue  float64 `json:"total_revenue"`
	TotalSales    int     `json:"total_sales"`
	AvgPrice      float64 `json:"avg_price"`
}

// PlatformStat summarizes item prices on one platform.
type PlatformStat struct {
	Platform  string  `json:"platform"`
	ItemCount int     `json:"item_count"`
	AvgPrice  float64 `json:"avg_price"`
	MinPrice  float64 `json:"min_price"`
	MaxPrice  float64 `json:"max_price"`
}

// SpendingSummary aggregates one person's transactions.
type SpendingSummary struct {
	PersonID      string     `json:"person_id"`
	TotalSpent    float64    `json:"total_spent"`
	ItemsBought   int        `json:"items_bought"`
	AvgPricePaid  float64    `json:"avg_price_paid"`
	FirstPurchase *time.Time `json:"first_purchase,omitempty"`
	LastPurchase  *time.Time `json:"last_purchase,omitempty"`
}
