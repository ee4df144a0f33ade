package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStorefrontTableMatchesParams(t *testing.T) {
	table := StorefrontRoutes()

	m, ok := table.Resolve("/product/gift-card-50")
	require.True(t, ok)
	assert.Equal(t, "ProductDetail", m.Route.Name)
	assert.Equal(t, "gift-card-50", m.Params["slug"])
	assert.True(t, m.Route.Meta.Public)

	m, ok = table.Resolve("/order/ORD-20260109-0001")
	require.True(t, ok)
	assert.Equal(t, "OrderDetail", m.Route.Name)
	assert.Equal(t, "ORD-20260109-0001", m.Params["orderNo"])
}

func TestStorefrontTableRootRoute(t *testing.T) {
	table := StorefrontRoutes()

	m, ok := table.Resolve("/")
	require.True(t, ok)
	assert.Equal(t, "Home", m.Route.Name)
}

func TestAdminTableNestedChildren(t *testing.T) {
	table := AdminRoutes()

	m, ok := table.Resolve("/platform/config")
	require.True(t, ok)
	assert.Equal(t, "PlatformConfig", m.Route.Name)
	assert.False(t, m.Route.Meta.Public)

	m, ok = table.Resolve("/product/edit/42")
	require.True(t, ok)
	assert.Equal(t, "ProductEdit", m.Route.Name)
	assert.Equal(t, "42", m.Params["id"])
	assert.True(t, m.Route.Meta.Hidden)
}

func TestResolveFollowsRedirects(t *testing.T) {
	table := AdminRoutes()

	m, ok := table.Resolve("/")
	require.True(t, ok)
	assert.Equal(t, "Dashboard", m.Route.Name, "admin root redirects to the dashboard")
	assert.Equal(t, "/dashboard", m.FullPath)

	for target, name := range map[string]string{
		"/platform": "PlatformConfig",
		"/product":  "ProductList",
		"/order":    "OrderList",
	} {
		m, ok = table.Resolve(target)
		require.True(t, ok, target)
		assert.Equal(t, name, m.Route.Name)
	}

	m, ok = table.Resolve("/order?page=2")
	require.True(t, ok)
	assert.Equal(t, "OrderList", m.Route.Name)
	assert.Equal(t, "/order/list?page=2", m.FullPath, "query survives the redirect")
}

func TestResolveFallsBackToNotFound(t *testing.T) {
	table := AdminRoutes()

	m, ok := table.Resolve("/no/such/page")
	require.True(t, ok)
	assert.Equal(t, "NotFound", m.Route.Name)
	assert.True(t, m.Route.Meta.Public)
	assert.Equal(t, "/no/such/page", m.FullPath)
}

func TestResolveKeepsQueryInFullPath(t *testing.T) {
	table := AdminRoutes()

	m, ok := table.Resolve("/order/list?page=2")
	require.True(t, ok)
	assert.Equal(t, "OrderList", m.Route.Name)
	assert.Equal(t, "/order/list?page=2", m.FullPath)
}

func TestFindByName(t *testing.T) {
	table := AdminRoutes()

	route, ok := table.Find("Dashboard")
	require.True(t, ok)
	assert.Equal(t, "Dashboard", route.Meta.Title)

	_, ok = table.Find("Nope")
	assert.False(t, ok)
}

func TestPageTitle(t *testing.T) {
	table := StorefrontRoutes()
	m, _ := table.Resolve("/cart")

	assert.Equal(t, "Cart - CardStore", PageTitle(m, "CardStore"))
	assert.Equal(t, "CardStore", PageTitle(nil, "CardStore"))
}

func TestAdminPageTitle(t *testing.T) {
	table := AdminRoutes()
	m, _ := table.Resolve("/platform/config")

	assert.Equal(t, "Site Settings - Admin Console", AdminPageTitle(m))
	assert.Equal(t, "Admin Console", AdminPageTitle(nil))
}
