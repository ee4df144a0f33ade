package domain

import (
	"fmt"
	"strconv"
)

type SiteConfig struct {
	SiteName        string `json:"site_name"`
	SiteDescription string `json:"site_description"`
	SiteLogo        string `json:"site_logo,omitempty"`
	SiteFavicon     string `json:"site_favicon,omitempty"`
	Currency        string `json:"currency"`
	CurrencySymbol  string `json:"currency_symbol"`
	ContactInfo     string `json:"contact_info,omitempty"`
}

type Banner struct {
	ID        int64  `json:"id"`
	ImageURL  string `json:"image_url"`
	LinkURL   string `json:"link_url,omitempty"`
	SortOrder int    `json:"sort_order"`
}

type Announcement struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`
	IsPopup     bool   `json:"is_popup"`
	CreatedAt   string `json:"created_at"`
}

type LinkType string

const (
	LinkTypeAgreement  LinkType = "agreement"
	LinkTypeFriendLink LinkType = "friend_link"
)

type FooterLink struct {
	ID        int64    `json:"id"`
	Title     string   `json:"title"`
	URL       string   `json:"url"`
	LinkType  LinkType `json:"link_type"`
	SortOrder int      `json:"sort_order"`
}

// FormatPrice renders a decimal-string price with the given currency symbol,
// e.g. "$12.30". Unparseable prices render as zero.
func FormatPrice(symbol, price string) string {
	amount, err := strconv.ParseFloat(price, 64)
	if err != nil {
		amount = 0
	}
	return FormatAmount(symbol, amount)
}

func FormatAmount(symbol string, amount float64) string {
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
