package models

// DailyStat keeps one row per calendar day. Counters only ever go up;
// concurrent increments go through an atomic upsert, never read-modify-write.
type DailyStat struct {
	Date         string  `gorm:"primaryKey;type:varchar(10)" json:"date"`
	TotalVisits  int     `gorm:"not null;default:0" json:"total_visits"`
	TotalOrders  int     `gorm:"not null;default:0" json:"total_orders"`
	TotalRevenue float64 `gorm:"not null;default:0" json:"total_revenue"`
}

// DateLayout is the primary-key format for DailyStat rows. ISO dates sort
// lexicographically, so "ORDER BY date" is chronological.
const DateLayout = "2006-01-02"
