package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cardstore/client/internal/config"
	"cardstore/client/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGateway(t *testing.T, handler http.HandlerFunc) *Gateway {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(config.APIConfig{BaseURL: srv.URL, Timeout: 5})
}

func writeEnvelope(w http.ResponseWriter, code int, message string, data any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{"code": code, "message": message, "data": data})
}

func TestGatewayDecodesEnvelopeData(t *testing.T) {
	gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 200, "ok", domain.SiteConfig{SiteName: "CardStore", CurrencySymbol: "€"})
	})

	cfg, err := Get[domain.SiteConfig](context.Background(), gw, "/v1/platform/site-config", nil)
	require.NoError(t, err)
	assert.Equal(t, "CardStore", cfg.SiteName)
	assert.Equal(t, "€", cfg.CurrencySymbol)
}

func TestGatewayBusinessError(t *testing.T) {
	gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		writeEnvelope(w, 4001, "insufficient stock", nil)
	})

	_, err := Post[any](context.Background(), gw, "/v1/orders", map[string]string{})
	require.Error(t, err)

	var business *BusinessError
	require.ErrorAs(t, err, &business)
	assert.Equal(t, 4001, business.Code)
	assert.Equal(t, "insufficient stock", business.Error())
}

func TestGatewayAuthErrorForcesLogout(t *testing.T) {
	gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		writeEnvelope(w, 401, "token expired", nil)
	})

	loggedOut := false
	gw.SetOnUnauthorized(func() { loggedOut = true })

	_, err := Get[any](context.Background(), gw, "/admin/auth/me", nil)
	require.Error(t, err)

	var auth *AuthError
	require.ErrorAs(t, err, &auth)
	assert.Equal(t, "token expired", auth.Error())
	assert.True(t, loggedOut, "401 must force the logout hook")
}

func TestGatewayStatusMessageTable(t *testing.T) {
	cases := []struct {
		status int
		want   string
	}{
		{400, "bad request parameters"},
		{403, "access denied"},
		{404, "resource not found"},
		{500, "internal server error"},
		{502, "bad gateway"},
		{503, "service unavailable"},
		{504, "gateway timeout"},
		{418, "request failed (418)"},
	}
	for _, tc := range cases {
		gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tc.status)
		})

		_, err := Get[any](context.Background(), gw, "/v1/products", nil)
		require.Error(t, err)

		var httpErr *HTTPError
		require.ErrorAs(t, err, &httpErr)
		assert.Equal(t, tc.status, httpErr.Status)
		assert.Equal(t, tc.want, httpErr.Error())
	}
}

func TestGatewayPrefersBodyMessageOverTable(t *testing.T) {
	gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		writeEnvelope(w, 400, "email is malformed", nil)
	})

	_, err := Get[any](context.Background(), gw, "/v1/orders", nil)
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "email is malformed", httpErr.Error())
}

func TestGatewayBearerInjection(t *testing.T) {
	var header string
	gw := testGateway(t, func(w http.ResponseWriter, r *http.Request) {
		header = r.Header.Get("Authorization")
		writeEnvelope(w, 200, "ok", nil)
	})

	_, err := Get[any](context.Background(), gw, "/v1/products", nil)
	require.NoError(t, err)
	assert.Empty(t, header, "no token means no Authorization header at all")

	gw.SetTokenSource(func() string { return "tok-9" })
	_, err = Get[any](context.Background(), gw, "/v1/products", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-9", header)
}

func TestGatewayNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	gw := New(config.APIConfig{BaseURL: srv.URL, Timeout: 2})
	srv.Close()

	_, err := Get[any](context.Background(), gw, "/v1/products", nil)
	require.Error(t, err)

	var network *NetworkError
	require.ErrorAs(t, err, &network)
	assert.Equal(t, "network error, please check the connection", network.Error())
	assert.Error(t, network.Unwrap())
}
