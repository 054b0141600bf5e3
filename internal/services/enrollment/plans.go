package enrollment

// PaymentPlan is a named schedule: a down-payment percentage, a number
// of equal remaining installments, and a flat processing fee charged
// once. The fee is never discounted; the launch special applies to the
// principal only.
type PaymentPlan struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Description        string  `json:"description"`
	Installments       int     `json:"installments"`
	DownPaymentPercent float64 `json:"downPaymentPercent"`
	ProcessingFeeUSD   float64 `json:"processingFeeUSD"`
}

// InstallmentThresholdUSD is the minimum course price (in USD, before
// any discount) at which installment plans are offered. Below it only
// full payment is valid.
const InstallmentThresholdUSD = 200

// Predefined payment plans.
var (
	PlanFull = PaymentPlan{
		ID:                 "full",
		Name:               "Pay in Full",
		Description:        "One payment, no processing fee.",
		Installments:       1,
		DownPaymentPercent: 100,
		ProcessingFeeUSD:   0,
	}

	PlanSplit2 = PaymentPlan{
		ID:                 "split_2",
		Name:               "Split in 2",
		Description:        "Half now, half in 30 days.",
		Installments:       2,
		DownPaymentPercent: 50,
		ProcessingFeeUSD:   10,
	}

	PlanMonthly3 = PaymentPlan{
		ID:                 "monthly_3",
		Name:               "3 Monthly Payments",
		Description:        "35% down, then two equal monthly payments.",
		Installments:       3,
		DownPaymentPercent: 35,
		ProcessingFeeUSD:   20,
	}
)

var allPlans = []PaymentPlan{PlanFull, PlanSplit2, PlanMonthly3}

// AmountDueTodayUSD computes the first charge for a principal:
// down payment plus the flat fee.
func (p PaymentPlan) AmountDueTodayUSD(principalUSD float64) float64 {
	return principalUSD*p.DownPaymentPercent/100 + p.ProcessingFeeUSD
}

// PerRemainingInstallmentUSD computes each of the equal payments after
// the down payment. Zero for single-installment plans.
func (p PaymentPlan) PerRemainingInstallmentUSD(principalUSD float64) float64 {
	if p.Installments <= 1 {
		return 0
	}
	return principalUSD * (100 - p.DownPaymentPercent) / 100 / float64(p.Installments-1)
}

// EligiblePlans returns the plans offered for a course price. The
// threshold is evaluated against the undiscounted USD price so plan
// availability does not flicker with the promotional window.
func EligiblePlans(priceUSD float64) []PaymentPlan {
	if priceUSD < InstallmentThresholdUSD {
		return []PaymentPlan{PlanFull}
	}
	out := make([]PaymentPlan, len(allPlans))
	copy(out, allPlans)
	return out
}

// PlanByID looks up a plan among those eligible for the price.
func PlanByID(id string, priceUSD float64) (*PaymentPlan, error) {
	for _, p := range EligiblePlans(priceUSD) {
		if p.ID == id {
			plan := p
			return &plan, nil
		}
	}
	return nil, ErrPlanNotAvailable
}
