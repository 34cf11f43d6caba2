package domain

// HarvestResult is returned when a grown animal is collected
type HarvestResult struct {
	Animal           Animal `json:"animal"`
	RewardCategory   string `json:"reward_category"`
	RewardAmount     string `json:"reward_amount"`
	OrdersPlaced     int    `json:"orders_placed"`
	ExperienceEarned int    `json:"experience_earned"`
	TotalExperience  int    `json:"total_experience"`
	CouponCode       string `json:"coupon_code"`
	Message          string `json:"message"`
}
