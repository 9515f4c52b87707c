package usecase

import (
	"strings"

	"mc-creative-backend/config"
	"mc-creative-backend/internal/domain"
)

// Every tier ships the same feature list; only hours and links differ.
var planFeatures = []string{
	"Priority support",
	"AI-enhanced workflows",
	"Flexible hour use",
	"Instant collaboration",
}

var planTiers = []struct {
	ID    string
	Name  string
	Hours int
}{
	{"starter", "Starter", 3},
	{"growth", "Growth", 6},
	{"scale", "Scale", 9},
}

type planUsecase struct {
	cfg *config.Config
}

func NewPlanUsecase(cfg *config.Config) domain.PlanUsecase {
	return &planUsecase{cfg: cfg}
}

// ListPlans returns the fixed three-tier catalog enriched with any configured
// payment links. Pure read, no failure mode.
func (uc *planUsecase) ListPlans() []domain.PlanTier {
	plans := make([]domain.PlanTier, 0, len(planTiers))
	for _, tier := range planTiers {
		key := strings.ToUpper(tier.ID)
		plans = append(plans, domain.PlanTier{
			ID:        tier.ID,
			Name:      tier.Name,
			Hours:     tier.Hours,
			PriceNote: "Billed hourly via subscription",
			Features:  planFeatures,
			StripeURL: uc.cfg.PaymentLink("STRIPE", key),
			PaypalURL: uc.cfg.PaymentLink("PAYPAL", key),
		})
	}
	return plans
}
