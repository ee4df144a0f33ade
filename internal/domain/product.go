package domain

import "strconv"

type ProductType string

const (
	ProductTypeVirtual  ProductType = "virtual"
	ProductTypePhysical ProductType = "physical"
)

func (p ProductType) String() string {
	return string(p)
}

type Category struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Slug        string     `json:"slug"`
	Description string     `json:"description"`
	Icon        string     `json:"icon"`
	ParentID    *int64     `json:"parent_id"`
	SortOrder   int        `json:"sort_order"`
	IsActive    bool       `json:"is_active"`
	Children    []Category `json:"children,omitempty"`
}

type ProductTag struct {
	ID    int64  `json:"id"`
	Key   string `json:"key"`
	Value string `json:"value"`
}

type TagGroup struct {
	Key    string   `json:"key"`
	Values []string `json:"values"`
}

type ProductImage struct {
	ID        int64  `json:"id"`
	ImageURL  string `json:"image_url"`
	SortOrder int    `json:"sort_order"`
	IsPrimary bool   `json:"is_primary"`
}

type ProductIntro struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Content   string `json:"content"`
	Icon      string `json:"icon"`
	SortOrder int    `json:"sort_order"`
	IsActive  bool   `json:"is_active"`
}

// ProductListItem is the catalog snapshot used by listings and the cart.
// Price stays in the backend's decimal-string form until display time.
type ProductListItem struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Slug         string       `json:"slug"`
	ProductType  ProductType  `json:"product_type"`
	Price        string       `json:"price"`
	Stock        int          `json:"stock"`
	IsActive     bool         `json:"is_active"`
	Category     *Category    `json:"category"`
	PrimaryImage string       `json:"primary_image"`
	Tags         []ProductTag `json:"tags"`
}

// PriceAmount parses the decimal-string price. An unparseable price counts
// as zero, matching the tolerant parsing the views rely on.
func (p *ProductListItem) PriceAmount() float64 {
	amount, err := strconv.ParseFloat(p.Price, 64)
	if err != nil {
		return 0
	}
	return amount
}

type ProductDetail struct {
	ProductListItem

	Images         []ProductImage  `json:"images"`
	Intros         []ProductIntro  `json:"intros"`
	PaymentMethods []PaymentMethod `json:"payment_methods"`
	SortOrder      int             `json:"sort_order"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

// CartItem pairs a catalog snapshot with the chosen quantity.
type CartItem struct {
	Product  ProductListItem `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal is the snapshotted price times the quantity.
func (c *CartItem) Subtotal() float64 {
	return c.Product.PriceAmount() * float64(c.Quantity)
}
