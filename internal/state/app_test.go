package state

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"cardstore/client/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePlatform struct {
	cfg   *domain.SiteConfig
	err   error
	calls int
}

func (f *fakePlatform) SiteConfig(_ context.Context) (*domain.SiteConfig, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.cfg, nil
}

func TestLoadSiteConfigKeepsDefaultsForEmptyFields(t *testing.T) {
	platform := &fakePlatform{cfg: &domain.SiteConfig{
		SiteName:       "",
		CurrencySymbol: "€",
	}}
	app := NewApp(platform)

	app.LoadSiteConfig(context.Background())

	site := app.SiteConfig()
	assert.Equal(t, "CardStore", site.SiteName, "empty field keeps its default")
	assert.Equal(t, "€", site.CurrencySymbol)
	assert.Equal(t, "CNY", site.Currency)
	assert.True(t, app.ConfigLoaded())
}

func TestLoadSiteConfigPartialSuccessIsNotRetried(t *testing.T) {
	platform := &fakePlatform{cfg: &domain.SiteConfig{CurrencySymbol: "€"}}
	app := NewApp(platform)

	app.LoadSiteConfig(context.Background())
	app.LoadSiteConfig(context.Background())

	assert.Equal(t, 1, platform.calls, "a latched load must not refetch")
}

type blockingPlatform struct {
	mu      sync.Mutex
	calls   int
	entered chan struct{}
	release chan struct{}
}

func (p *blockingPlatform) SiteConfig(_ context.Context) (*domain.SiteConfig, error) {
	p.mu.Lock()
	p.calls++
	p.mu.Unlock()
	p.entered <- struct{}{}
	<-p.release
	return &domain.SiteConfig{CurrencySymbol: "€"}, nil
}

func (p *blockingPlatform) callCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

func TestLoadSiteConfigSingleFlight(t *testing.T) {
	platform := &blockingPlatform{entered: make(chan struct{}, 2), release: make(chan struct{})}
	app := NewApp(platform)

	done := make(chan struct{})
	go func() {
		app.LoadSiteConfig(context.Background())
		close(done)
	}()
	<-platform.entered // first load is mid-fetch

	// A call during the in-flight load returns without a second fetch.
	app.LoadSiteConfig(context.Background())
	assert.False(t, app.ConfigLoaded())

	close(platform.release)
	<-done

	assert.Equal(t, 1, platform.callCount())
	assert.True(t, app.ConfigLoaded())
	assert.Equal(t, "€", app.SiteConfig().CurrencySymbol)
}

func TestLoadSiteConfigFailureLeavesLatchUnset(t *testing.T) {
	platform := &fakePlatform{err: errors.New("backend down")}
	app := NewApp(platform)

	app.LoadSiteConfig(context.Background())

	assert.False(t, app.ConfigLoaded())
	assert.Equal(t, "CardStore", app.SiteConfig().SiteName)

	// A later call is eligible to retry and can now succeed.
	platform.err = nil
	platform.cfg = &domain.SiteConfig{SiteName: "MegaStore"}
	app.LoadSiteConfig(context.Background())

	require.True(t, app.ConfigLoaded())
	assert.Equal(t, "MegaStore", app.SiteConfig().SiteName)
	assert.Equal(t, 2, platform.calls)
}

func TestFormatPrice(t *testing.T) {
	platform := &fakePlatform{cfg: &domain.SiteConfig{CurrencySymbol: "¥"}}
	app := NewApp(platform)
	app.LoadSiteConfig(context.Background())

	assert.Equal(t, "¥12.30", app.FormatPrice("12.3"))
	assert.Equal(t, "¥0.00", app.FormatPrice("garbage"))
	assert.Equal(t, "¥5.00", app.FormatAmount(5))
}

func TestNoticeFeedExpiry(t *testing.T) {
	app := NewApp(&fakePlatform{})
	now := time.Unix(1000, 0)
	app.now = func() time.Time { return now }

	app.Error("boom")
	app.Info("hello")

	notices := app.Notices()
	require.Len(t, notices, 2)
	assert.Equal(t, NoticeError, notices[0].Level)

	// Info notices last 3s, error notices 5s.
	now = now.Add(4 * time.Second)
	notices = app.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, "boom", notices[0].Message)

	now = now.Add(2 * time.Second)
	assert.Empty(t, app.Notices())
}
