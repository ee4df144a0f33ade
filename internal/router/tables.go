package router

// StorefrontRoutes is the customer-facing route table. Everything here is
// public; the storefront has no account surface.
func StorefrontRoutes() *Table {
	routes := []Route{
		{
			Path: "/",
			Children: []Route{
				{Path: "", Name: "Home", Meta: Meta{Title: "Home", Public: true}},
				{Path: "products", Name: "Products", Meta: Meta{Title: "All Products", Public: true}},
				{Path: "category/:slug", Name: "Category", Meta: Meta{Title: "Category", Public: true}},
				{Path: "product/:slug", Name: "ProductDetail", Meta: Meta{Title: "Product", Public: true}},
				{Path: "cart", Name: "Cart", Meta: Meta{Title: "Cart", Public: true}},
				{Path: "checkout", Name: "Checkout", Meta: Meta{Title: "Checkout", Public: true}},
				{Path: "order/:orderNo", Name: "OrderDetail", Meta: Meta{Title: "Order", Public: true}},
				{Path: "orders", Name: "Orders", Meta: Meta{Title: "Find Orders", Public: true}},
				{Path: "announcements", Name: "Announcements", Meta: Meta{Title: "Announcements", Public: true}},
				{Path: "announcement/:id", Name: "Announcement", Meta: Meta{Title: "Announcement", Public: true}},
			},
		},
		{Path: "/:pathMatch", Name: "NotFound", Meta: Meta{Title: "404", Public: true}},
	}
	return NewTable(routes, "NotFound")
}

// AdminRoutes is the back-office route table. Only the login page and the
// 404 fallback are public.
func AdminRoutes() *Table {
	routes := []Route{
		{Path: "/login", Name: "Login", Meta: Meta{Title: "Login", Public: true}},
		{
			Path:     "/",
			Redirect: "/dashboard",
			Children: []Route{
				{Path: "dashboard", Name: "Dashboard", Meta: Meta{Title: "Dashboard", Icon: "Odometer"}},
				{
					Path:     "platform",
					Name:     "Platform",
					Redirect: "/platform/config",
					Meta:     Meta{Title: "Platform", Icon: "Setting"},
					Children: []Route{
						{Path: "config", Name: "PlatformConfig", Meta: Meta{Title: "Site Settings"}},
						{Path: "announcement", Name: "AnnouncementAdmin", Meta: Meta{Title: "Announcements"}},
						{Path: "banner", Name: "BannerAdmin", Meta: Meta{Title: "Banners"}},
						{Path: "footer", Name: "FooterAdmin", Meta: Meta{Title: "Footer Links"}},
					},
				},
				{
					Path:     "product",
					Name:     "Product",
					Redirect: "/product/list",
					Meta:     Meta{Title: "Products", Icon: "Goods"},
					Children: []Route{
						{Path: "category", Name: "CategoryAdmin", Meta: Meta{Title: "Categories"}},
						{Path: "list", Name: "ProductList", Meta: Meta{Title: "Product List"}},
						{Path: "create", Name: "ProductCreate", Meta: Meta{Title: "New Product", Hidden: true}},
						{Path: "edit/:id", Name: "ProductEdit", Meta: Meta{Title: "Edit Product", Hidden: true}},
						{Path: "payment", Name: "PaymentMethodAdmin", Meta: Meta{Title: "Payment Methods"}},
					},
				},
				{
					Path:     "order",
					Name:     "Order",
					Redirect: "/order/list",
					Meta:     Meta{Title: "Orders", Icon: "List"},
					Children: []Route{
						{Path: "list", Name: "OrderList", Meta: Meta{Title: "Order List"}},
						{Path: "detail/:id", Name: "OrderAdminDetail", Meta: Meta{Title: "Order Detail", Hidden: true}},
					},
				},
			},
		},
		{Path: "/:pathMatch", Name: "NotFound", Meta: Meta{Title: "404", Public: true}},
	}
	return NewTable(routes, "NotFound")
}
