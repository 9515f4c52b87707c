package domain

// PlanTier is one subscription plan. Payment links are nil when the
// corresponding checkout URL was never configured.
type PlanTier struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Hours     int      `json:"hours"`
	PriceNote string   `json:"price_note"`
	Features  []string `json:"features"`
	StripeURL *string  `json:"stripe_url"`
	PaypalURL *string  `json:"paypal_url"`
}

// PlanUsecase lists the subscription tiers shown on the marketing site.
type PlanUsecase interface {
	ListPlans() []PlanTier
}
