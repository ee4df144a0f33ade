package container

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"cardstore/client/internal/config"
	"cardstore/client/internal/gateway"
	"cardstore/client/internal/router"
	"cardstore/client/internal/state"
	"cardstore/client/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminUnauthorizedForcesLogoutAndLoginRedirect(t *testing.T) {
	ctx := context.Background()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	// A token persisted by a previous session, now rejected by the backend.
	dir := t.TempDir()
	seed, err := storage.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, seed.Save(ctx, storage.KeyAdminToken, "expired-token"))

	cfg := &config.Config{
		API:     config.APIConfig{BaseURL: srv.URL, Timeout: 5},
		Storage: config.StorageConfig{Backend: "file", Path: dir},
		Logging: config.LoggingConfig{Level: "error"},
	}
	c, err := NewAdmin(cfg)
	require.NoError(t, err)
	defer c.Close()
	require.True(t, c.User.IsLoggedIn(), "persisted token restores the session")

	_, err = c.Admin.Me(ctx)
	var authErr *gateway.AuthError
	require.ErrorAs(t, err, &authErr)

	assert.False(t, c.User.IsLoggedIn(), "401 forces logout")
	found, err := c.Store.Load(ctx, storage.KeyAdminToken, new(string))
	require.NoError(t, err)
	assert.False(t, found, "persisted token is erased")

	notices := c.App.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, state.NoticeError, notices[0].Level)

	match, ok := c.Routes.Resolve("/dashboard")
	require.True(t, ok)
	res := c.Guard.Evaluate(ctx, match)
	assert.Equal(t, router.RedirectToLogin, res.Decision)
	assert.Equal(t, "/login?redirect=%2Fdashboard", res.Location)
}
