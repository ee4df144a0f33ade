package domain

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusPaid       OrderStatus = "paid"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusCompleted  OrderStatus = "completed"
	OrderStatusCancelled  OrderStatus = "cancelled"
	OrderStatusRefunded   OrderStatus = "refunded"
)

func (s OrderStatus) String() string {
	return string(s)
}

// DisplayText returns the user-facing label for the status. Unknown values
// fall through as-is.
func (s OrderStatus) DisplayText() string {
	switch s {
	case OrderStatusPending:
		return "awaiting payment"
	case OrderStatusPaid:
		return "paid"
	case OrderStatusProcessing:
		return "processing"
	case OrderStatusCompleted:
		return "completed"
	case OrderStatusCancelled:
		return "cancelled"
	case OrderStatusRefunded:
		return "refunded"
	default:
		return string(s)
	}
}

type OrderItemCreate struct {
	ProductID int64 `json:"product_id"`
	Quantity  int   `json:"quantity"`
}

type OrderCreate struct {
	Email           string            `json:"email"`
	Items           []OrderItemCreate `json:"items"`
	PaymentMethodID int64             `json:"payment_method_id"`
	Currency        string            `json:"currency"`
	ShippingName    string            `json:"shipping_name,omitempty"`
	ShippingPhone   string            `json:"shipping_phone,omitempty"`
	ShippingAddress string            `json:"shipping_address,omitempty"`
	Remark          string            `json:"remark,omitempty"`
}

type OrderItem struct {
	ID              int64       `json:"id"`
	ProductID       int64       `json:"product_id"`
	ProductName     string      `json:"product_name"`
	ProductType     ProductType `json:"product_type"`
	Quantity        int         `json:"quantity"`
	Price           string      `json:"price"`
	Subtotal        string      `json:"subtotal"`
	DeliveryContent string      `json:"delivery_content,omitempty"`
	DeliveredAt     string      `json:"delivered_at,omitempty"`
}

type OrderListItem struct {
	ID              int64       `json:"id"`
	OrderNo         string      `json:"order_no"`
	Status          OrderStatus `json:"status"`
	Email           string      `json:"email"`
	Currency        string      `json:"currency"`
	TotalPrice      string      `json:"total_price"`
	CreatedAt       string      `json:"created_at"`
	ShippingName    string      `json:"shipping_name,omitempty"`
	ShippingPhone   string      `json:"shipping_phone,omitempty"`
	ShippingAddress string      `json:"shipping_address,omitempty"`
}

type OrderDetail struct {
	OrderListItem

	PaidAt          string      `json:"paid_at,omitempty"`
	PaymentMethodID *int64      `json:"payment_method_id"`
	Remark          string      `json:"remark,omitempty"`
	UpdatedAt       string      `json:"updated_at"`
	Items           []OrderItem `json:"items"`
}

// LocalOrderRecord is the slim order snapshot kept in local history so a
// guest can find their recent orders again.
type LocalOrderRecord struct {
	OrderNo    string      `json:"order_no"`
	Email      string      `json:"email"`
	TotalPrice string      `json:"total_price"`
	Status     OrderStatus `json:"status"`
	CreatedAt  string      `json:"created_at"`
}
