package domain

type FeeType string

const (
	FeeTypePercentage FeeType = "percentage"
	FeeTypeFixed      FeeType = "fixed"
)

type PaymentMethod struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	FeeType     FeeType `json:"fee_type"`
	FeeValue    string  `json:"fee_value"`
	Description string  `json:"description"`
}

// PaymentData carries provider-specific fields (TRC20 wallet address, QR
// payload and so on); unknown providers add their own keys.
type PaymentData map[string]any

type PaymentInitResponse struct {
	PaymentURL  string      `json:"payment_url"`
	PaymentData PaymentData `json:"payment_data"`
	ExpiresIn   int         `json:"expires_in"`
}

type PaymentStatusResponse struct {
	OrderNo     string `json:"order_no"`
	Status      string `json:"status"`
	OrderStatus string `json:"order_status"`
	PaidAt      string `json:"paid_at,omitempty"`
}
