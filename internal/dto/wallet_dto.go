package dto

type WalletResponse struct {
	Coins int `json:"coins"`
}

type EarnResponse struct {
	Coins  int `json:"coins"`
	Earned int `json:"earned"`
}

type AdminCreditRequest struct {
	Amount int `json:"amount"`
}

// SubscriptionPlan is a display-only tier; there is no purchase flow.
type SubscriptionPlan struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceINR    int    `json:"price_inr"`
	DurationMo  int    `json:"duration_months"`
	Highlight   bool   `json:"highlight"`
}
