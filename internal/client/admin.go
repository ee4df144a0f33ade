package client

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"strconv"

	"cardstore/client/internal/domain"
	"cardstore/client/internal/gateway"
)

// Admin is the typed surface over the /admin back-office API. Every call
// goes through the shared gateway, which injects the bearer token.
type Admin struct {
	gw *gateway.Gateway
}

func NewAdmin(gw *gateway.Gateway) *Admin {
	return &Admin{gw: gw}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (a *Admin) Login(ctx context.Context, username, password string) (*domain.TokenResponse, error) {
	res, err := gateway.Post[domain.TokenResponse](ctx, a.gw, "/admin/auth/login", loginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

func (a *Admin) Me(ctx context.Context) (*domain.Admin, error) {
	profile, err := gateway.Get[domain.Admin](ctx, a.gw, "/admin/auth/me", nil)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

type changePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

func (a *Admin) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	_, err := gateway.Put[any](ctx, a.gw, "/admin/auth/me/password", changePasswordRequest{
		OldPassword: oldPassword,
		NewPassword: newPassword,
	})
	return err
}

func (a *Admin) SiteConfig(ctx context.Context) (*domain.SiteConfig, error) {
	cfg, err := gateway.Get[domain.SiteConfig](ctx, a.gw, "/admin/platform/site-config", nil)
	if err != nil {
		return nil, err
	}
	return &cfg, nil
}

type configValue struct {
	Value string `json:"value"`
}

// UpdateConfig writes one platform configuration key.
func (a *Admin) UpdateConfig(ctx context.Context, key, value string) error {
	_, err := gateway.Put[any](ctx, a.gw, "/admin/platform/config/"+url.PathEscape(key), configValue{Value: value})
	return err
}

// CategoryInput is the create/update payload for a category.
type CategoryInput struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	ParentID    *int64 `json:"parent_id,omitempty"`
	SortOrder   int    `json:"sort_order"`
	IsActive    bool   `json:"is_active"`
}

func (a *Admin) Categories(ctx context.Context) ([]domain.Category, error) {
	return gateway.Get[[]domain.Category](ctx, a.gw, "/admin/products/categories", nil)
}

func (a *Admin) CreateCategory(ctx context.Context, input CategoryInput) (*domain.Category, error) {
	c, err := gateway.Post[domain.Category](ctx, a.gw, "/admin/products/categories", input)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (a *Admin) UpdateCategory(ctx context.Context, id int64, input CategoryInput) error {
	_, err := gateway.Put[any](ctx, a.gw, fmt.Sprintf("/admin/products/categories/%d", id), input)
	return err
}

func (a *Admin) DeleteCategory(ctx context.Context, id int64) error {
	_, err := gateway.Delete[any](ctx, a.gw, fmt.Sprintf("/admin/products/categories/%d", id))
	return err
}

// ProductInput is the create/update payload for a product.
type ProductInput struct {
	Name        string              `json:"name"`
	Slug        string              `json:"slug"`
	ProductType domain.ProductType  `json:"product_type"`
	Price       string              `json:"price"`
	Stock       int                 `json:"stock"`
	IsActive    bool                `json:"is_active"`
	CategoryID  *int64              `json:"category_id,omitempty"`
	SortOrder   int                 `json:"sort_order"`
	Tags        []domain.ProductTag `json:"tags,omitempty"`
	Images      []string            `json:"images,omitempty"`
}

func (a *Admin) Products(ctx context.Context, page, pageSize int) (*domain.PaginatedData[domain.ProductListItem], error) {
	query := url.Values{}
	if page > 0 {
		query.Set("page", strconv.Itoa(page))
	}
	if pageSize > 0 {
		query.Set("page_size", strconv.Itoa(pageSize))
	}
	result, err := gateway.Get[domain.PaginatedData[domain.ProductListItem]](ctx, a.gw, "/admin/products", query)
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *Admin) Product(ctx context.Context, id int64) (*domain.ProductDetail, error) {
	detail, err := gateway.Get[domain.ProductDetail](ctx, a.gw, fmt.Sprintf("/admin/products/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (a *Admin) CreateProduct(ctx context.Context, input ProductInput) (*domain.ProductDetail, error) {
	detail, err := gateway.Post[domain.ProductDetail](ctx, a.gw, "/admin/products", input)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

func (a *Admin) UpdateProduct(ctx context.Context, id int64, input ProductInput) error {
	_, err := gateway.Put[any](ctx, a.gw, fmt.Sprintf("/admin/products/%d", id), input)
	return err
}

func (a *Admin) DeleteProduct(ctx context.Context, id int64) error {
	_, err := gateway.Delete[any](ctx, a.gw, fmt.Sprintf("/admin/products/%d", id))
	return err
}

// BannerInput is the create/update payload for a banner.
type BannerInput struct {
	ImageURL  string `json:"image_url"`
	LinkURL   string `json:"link_url,omitempty"`
	SortOrder int    `json:"sort_order"`
}

func (a *Admin) Banners(ctx context.Context) ([]domain.Banner, error) {
	return gateway.Get[[]domain.Banner](ctx, a.gw, "/admin/platform/banners", nil)
}

func (a *Admin) CreateBanner(ctx context.Context, input BannerInput) error {
	_, err := gateway.Post[any](ctx, a.gw, "/admin/platform/banners", input)
	return err
}

func (a *Admin) UpdateBanner(ctx context.Context, id int64, input BannerInput) error {
	_, err := gateway.Put[any](ctx, a.gw, fmt.Sprintf("/admin/platform/banners/%d", id), input)
	return err
}

func (a *Admin) DeleteBanner(ctx context.Context, id int64) error {
	_, err := gateway.Delete[any](ctx, a.gw, fmt.Sprintf("/admin/platform/banners/%d", id))
	return err
}

// AnnouncementInput is the create/update payload for an announcement.
type AnnouncementInput struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	IsPopup     bool   `json:"is_popup"`
}

func (a *Admin) Announcements(ctx context.Context) ([]domain.Announcement, error) {
	return gateway.Get[[]domain.Announcement](ctx, a.gw, "/admin/platform/announcements", nil)
}

func (a *Admin) CreateAnnouncement(ctx context.Context, input AnnouncementInput) error {
	_, err := gateway.Post[any](ctx, a.gw, "/admin/platform/announcements", input)
	return err
}

func (a *Admin) UpdateAnnouncement(ctx context.Context, id int64, input AnnouncementInput) error {
	_, err := gateway.Put[any](ctx, a.gw, fmt.Sprintf("/admin/platform/announcements/%d", id), input)
	return err
}

func (a *Admin) DeleteAnnouncement(ctx context.Context, id int64) error {
	_, err := gateway.Delete[any](ctx, a.gw, fmt.Sprintf("/admin/platform/announcements/%d", id))
	return err
}

// FooterLinkInput is the create/update payload for a footer link.
type FooterLinkInput struct {
	Title     string          `json:"title"`
	URL       string          `json:"url"`
	LinkType  domain.LinkType `json:"link_type"`
	SortOrder int             `json:"sort_order"`
}

func (a *Admin) FooterLinks(ctx context.Context) ([]domain.FooterLink, error) {
	return gateway.Get[[]domain.FooterLink](ctx, a.gw, "/admin/platform/footer-links", nil)
}

func (a *Admin) CreateFooterLink(ctx context.Context, input FooterLinkInput) error {
	_, err := gateway.Post[any](ctx, a.gw, "/admin/platform/footer-links", input)
	return err
}

func (a *Admin) UpdateFooterLink(ctx context.Context, id int64, input FooterLinkInput) error {
	_, err := gateway.Put[any](ctx, a.gw, fmt.Sprintf("/admin/platform/footer-links/%d", id), input)
	return err
}

func (a *Admin) DeleteFooterLink(ctx context.Context, id int64) error {
	_, err := gateway.Delete[any](ctx, a.gw, fmt.Sprintf("/admin/platform/footer-links/%d", id))
	return err
}

// PaymentMethodInput is the create/update payload for a payment method.
type PaymentMethodInput struct {
	Name        string         `json:"name"`
	Icon        string         `json:"icon,omitempty"`
	FeeType     domain.FeeType `json:"fee_type"`
	FeeValue    string         `json:"fee_value"`
	Description string         `json:"description,omitempty"`
}

func (a *Admin) PaymentMethods(ctx context.Context) ([]domain.PaymentMethod, error) {
	return gateway.Get[[]domain.PaymentMethod](ctx, a.gw, "/admin/products/payment-methods", nil)
}

func (a *Admin) CreatePaymentMethod(ctx context.Context, input PaymentMethodInput) error {
	_, err := gateway.Post[any](ctx, a.gw, "/admin/products/payment-methods", input)
	return err
}

func (a *Admin) UpdatePaymentMethod(ctx context.Context, id int64, input PaymentMethodInput) error {
	_, err := gateway.Put[any](ctx, a.gw, fmt.Sprintf("/admin/products/payment-methods/%d", id), input)
	return err
}

func (a *Admin) DeletePaymentMethod(ctx context.Context, id int64) error {
	_, err := gateway.Delete[any](ctx, a.gw, fmt.Sprintf("/admin/products/payment-methods/%d", id))
	return err
}

// OrderQuery narrows the back-office order listing.
type OrderQuery struct {
	Page     int
	PageSize int
	Status   domain.OrderStatus
	Search   string
}

func (q OrderQuery) values() url.Values {
	v := url.Values{}
	if q.Page > 0 {
		v.Set("page", strconv.Itoa(q.Page))
	}
	if q.PageSize > 0 {
		v.Set("page_size", strconv.Itoa(q.PageSize))
	}
	if q.Status != "" {
		v.Set("status", q.Status.String())
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}

func (a *Admin) Orders(ctx context.Context, query OrderQuery) (*domain.PaginatedData[domain.OrderListItem], error) {
	result, err := gateway.Get[domain.PaginatedData[domain.OrderListItem]](ctx, a.gw, "/admin/orders", query.values())
	if err != nil {
		return nil, err
	}
	return &result, nil
}

func (a *Admin) Order(ctx context.Context, id int64) (*domain.OrderDetail, error) {
	detail, err := gateway.Get[domain.OrderDetail](ctx, a.gw, fmt.Sprintf("/admin/orders/%d", id), nil)
	if err != nil {
		return nil, err
	}
	return &detail, nil
}

type orderStatusUpdate struct {
	Status domain.OrderStatus `json:"status"`
}

func (a *Admin) UpdateOrderStatus(ctx context.Context, id int64, status domain.OrderStatus) error {
	_, err := gateway.Put[any](ctx, a.gw, fmt.Sprintf("/admin/orders/%d", id), orderStatusUpdate{Status: status})
	return err
}

func (a *Admin) CancelOrder(ctx context.Context, id int64) error {
	_, err := gateway.Post[any](ctx, a.gw, fmt.Sprintf("/admin/orders/%d/cancel", id), nil)
	return err
}

// UploadResult is the stored location of an uploaded file.
type UploadResult struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}

// Upload submits one file to the shared upload endpoint under a
// subdirectory.
func (a *Admin) Upload(ctx context.Context, subdir, filename string, file io.Reader) (*UploadResult, error) {
	result, err := gateway.Upload[UploadResult](ctx, a.gw, "/common/upload", subdir, filename, file)
	if err != nil {
		return nil, err
	}
	return &result, nil
}
