package client

import (
	"context"
	"fmt"

	"cardstore/client/internal/domain"
	"cardstore/client/internal/state"
	"cardstore/client/internal/storage"

	log "github.com/sirupsen/logrus"
)

// CheckoutRequest carries the buyer-entered checkout form.
type CheckoutRequest struct {
	Email           string
	PaymentMethodID int64
	Currency        string
	ShippingName    string
	ShippingPhone   string
	ShippingAddress string
	Remark          string
}

// Checkout submits the current cart as an order, records it in local order
// history and empties the cart. The cart is only cleared once the order is
// accepted.
func Checkout(ctx context.Context, sf *Storefront, cart *state.Cart, history *storage.History, req CheckoutRequest) (*domain.OrderDetail, error) {
	items := cart.Items()
	if len(items) == 0 {
		return nil, fmt.Errorf("cannot check out an empty cart")
	}

	create := domain.OrderCreate{
		Email:           req.Email,
		PaymentMethodID: req.PaymentMethodID,
		Currency:        req.Currency,
		ShippingName:    req.ShippingName,
		ShippingPhone:   req.ShippingPhone,
		ShippingAddress: req.ShippingAddress,
		Remark:          req.Remark,
	}
	for _, item := range items {
		create.Items = append(create.Items, domain.OrderItemCreate{
			ProductID: item.Product.ID,
			Quantity:  item.Quantity,
		})
	}

	order, err := sf.CreateOrder(ctx, create)
	if err != nil {
		return nil, err
	}

	record := domain.LocalOrderRecord{
		OrderNo:    order.OrderNo,
		Email:      order.Email,
		TotalPrice: order.TotalPrice,
		Status:     order.Status,
		CreatedAt:  order.CreatedAt,
	}
	if err := history.Add(ctx, record); err != nil {
		log.Warnf("Failed to record order %s in local history: %v", order.OrderNo, err)
	}

	cart.Clear(ctx)
	return order, nil
}
