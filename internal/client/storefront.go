package client

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"cardstore/client/internal/domain"
	"cardstore/client/internal/gateway"
)

// Storefront is the typed surface over the public /v1 API.
type Storefront struct {
	gw *gateway.Gateway
}

func NewStorefront(gw *gateway.Gateway) *Storefront {
	return &Storefront{gw: gw}
}

// ProductQuery narrows the product listing.
type ProductQuery struct {
	Page     int
	PageSize int
	Category string
	Search   string
	Tag      string
}

func (q ProductQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Tag != "" {
		v.Set("tag", q.Tag)
	}
	return v
}

func (s *Storefront) Products(ctx context.Context, query ProductQuery) (*domain.PaginatedData[domain.ProductListItem], error) {
	page, err := gateway.Get[domain.PaginatedData[domain.ProductListItem]](ctx, s.gw, "/v1/products", query.values())
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// ProductByID resolves one product through the listing endpoint; the public
// API has no by-id route. Returns nil when the id is not found.
func (s *Storefront) ProductByID(ctx context.Context, id int64) (*domain.ProductListItem, error) {
	page, err := s.Products(ctx, ProductQuery{PageSize: 100})
	if err != nil {
		return nil, err
	}
	for i := range page.Items {
		if page.Items[i].ID == id {
			return &page.Items[i], nil
		}
	}
	return nil, nil
}

func (s *Storefront) ProductBySlug(ctx context.Context, slug string) (*domain.ProductDetail, error) {
	detail, err := gateway.Get[domain.ProductDetail](ctx, s.gw, "/v1/products/"+url.PathEscape(slug), nil)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *Storefront) Categories(ctx context.Context) ([]domain.Category, error) {
	return gateway.Get[[]domain.Category](ctx, s.gw, "/v1/products/categories", nil)
}

func (s *Storefront) TagGroups(ctx context.Context) ([]domain.TagGroup, error) {
	return gateway.Get[[]domain.TagGroup](ctx, s.gw, "/v1/products/tags", nil)
}

func (s *Storefront) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return gateway.Get[[]domain.PaymentMethod](ctx, s.gw, "/v1/products/payment-methods", nil)
}

func (s *Storefront) SiteConfig(ctx context.Context) (*domain.SiteConfig, error) {
	cfg, err := gateway.Get[domain.SiteConfig](ctx, s.gw, "/v1/platform/site-config", nil)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (s *Storefront) Banners(ctx context.Context) ([]domain.Banner, error) {
	return gateway.Get[[]domain.Banner](ctx, s.gw, "/v1/platform/banners", nil)
}

func (s *Storefront) FooterLinks(ctx context.Context) ([]domain.FooterLink, error) {
	return gateway.Get[[]domain.FooterLink](ctx, s.gw, "/v1/platform/footer-links", nil)
}

func (s *Storefront) Announcements(ctx context.Context, page, pageSize int) (*domain.PaginatedData[domain.Announcement], error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}
	result, err := gateway.Get[domain.PaginatedData[domain.Announcement]](ctx, s.gw, "/v1/platform/announcements", query)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *Storefront) Announcement(ctx context.Context, id int64) (*domain.Announcement, error) {
	a, err := gateway.Get[domain.Announcement](ctx, s.gw, fmt.Sprintf("/v1/platform/announcements/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (s *Storefront) PopupAnnouncement(ctx context.Context) (*domain.Announcement, error) {
	a, err := gateway.Get[*domain.Announcement](ctx, s.gw, "/v1/platform/announcements/popup", nil)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (s *Storefront) CreateOrder(ctx context.Context, order domain.OrderCreate) (*domain.OrderDetail, error) {
	detail, err := gateway.Post[domain.OrderDetail](ctx, s.gw, "/v1/orders", order)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (s *Storefront) OrderByNo(ctx context.Context, orderNo string) (*domain.OrderDetail, error) {
	detail, err := gateway.Get[domain.OrderDetail](ctx, s.gw, "/v1/orders/"+url.PathEscape(orderNo), nil)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

// OrdersByEmail looks up a guest's orders by the email used at checkout.
func (s *Storefront) OrdersByEmail(ctx context.Context, email string) ([]domain.OrderListItem, error) {
	return gateway.Post[[]domain.OrderListItem](ctx, s.gw, "/v1/orders/query", map[string]string{"email": email})
}

type paymentInitRequest struct {
	OrderNo         string `json:"order_no"`
	PaymentMethodID int64  `json:"payment_method_id"`
}

func (s *Storefront) InitPayment(ctx context.Context, orderNo string, methodID int64) (*domain.PaymentInitResponse, error) {
	res, err := gateway.Post[domain.PaymentInitResponse](ctx, s.gw, "/v1/payment/init", paymentInitRequest{
		OrderNo:         orderNo,
		PaymentMethodID: methodID,
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (s *Storefront) PaymentStatus(ctx context.Context, orderNo string) (*domain.PaymentStatusResponse, error) {
	res, err := gateway.Get[domain.PaymentStatusResponse](ctx, s.gw, "/v1/payment/status/"+url.PathEscape(orderNo), nil)
	if err != nil {
		return nil, err
	}
	return &res, nil
}
