package state

import (
	"context"
	"sync"
	"time"

	"cardstore/client/internal/domain"

	log "github.com/sirupsen/logrus"
)

// SiteConfigClient fetches the branding configuration from the backend.
type SiteConfigClient interface {
	SiteConfig(ctx context.Context) (*domain.SiteConfig, error)
}

// NoticeLevel classifies entries in the notice feed.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
	NoticeWarning NoticeLevel = "warning"
	NoticeInfo    NoticeLevel = "info"
)

// Notice is one user-facing notification. The UI layer prunes expired
// notices on read; nothing here runs timers.
type Notice struct {
	ID        int64
	Level     NoticeLevel
	Message   string
	ExpiresAt time.Time
}

// App holds process-wide presentation state: the site configuration snapshot
// (loaded at most once per lifetime) and the notice feed.
type App struct {
	notifier

	mu           sync.Mutex
	platform     SiteConfigClient
	site         domain.SiteConfig
	configLoaded bool
	loadInFlight bool

	notices      []Notice
	nextNoticeID int64

	now func() time.Time
}

func NewApp(platform SiteConfigClient) *App {
	return &App{
		platform: platform,
		site: domain.SiteConfig{
			SiteName:        "CardStore",
			SiteDescription: "virtual goods marketplace",
			Currency:        "CNY",
			CurrencySymbol:  "$",
		},
		now: time.Now,
	}
}

// LoadSiteConfig fetches the branding configuration once per process
// lifetime. Each absent or empty field in the response keeps its current
// default instead of being blanked. A failed load keeps all defaults and
// leaves the latch unset, so a later call may try again; a partial success
// latches and is never retried.
func (a *App) LoadSiteConfig(ctx context.Context) {
	a.mu.Lock()
	if a.configLoaded || a.loadInFlight {
		a.mu.Unlock()
		return
	}
	a.loadInFlight = true
	a.mu.Unlock()

	cfg, err := a.platform.SiteConfig(ctx)
	a.mu.Lock()
	a.loadInFlight = false
	if err != nil || cfg == nil {
		a.mu.Unlock()
		log.Debugf("Site config load failed, keeping defaults: %v", err)
		return
	}

	if cfg.SiteName != "" {
		a.site.SiteName = cfg.SiteName
	}
	if cfg.SiteDescription != "" {
		a.site.SiteDescription = cfg.SiteDescription
	}
	if cfg.SiteLogo != "" {
		a.site.SiteLogo = cfg.SiteLogo
	}
	if cfg.SiteFavicon != "" {
		a.site.SiteFavicon = cfg.SiteFavicon
	}
	if cfg.Currency != "" {
		a.site.Currency = cfg.Currency
	}
	if cfg.CurrencySymbol != "" {
		a.site.CurrencySymbol = cfg.CurrencySymbol
	}
	if cfg.ContactInfo != "" {
		a.site.ContactInfo = cfg.ContactInfo
	}
	a.configLoaded = true
	a.mu.Unlock()

	a.publish()
}

// SiteConfig returns the current branding snapshot.
func (a *App) SiteConfig() domain.SiteConfig {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.site
}

func (a *App) ConfigLoaded() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.configLoaded
}

// FormatPrice renders a decimal-string price with the loaded currency symbol.
func (a *App) FormatPrice(price string) string {
	a.mu.Lock()
	symbol := a.site.CurrencySymbol
	a.mu.Unlock()
	return domain.FormatPrice(symbol, price)
}

// FormatAmount renders a numeric amount with the loaded currency symbol.
func (a *App) FormatAmount(amount float64) string {
	a.mu.Lock()
	symbol := a.site.CurrencySymbol
	a.mu.Unlock()
	return domain.FormatAmount(symbol, amount)
}

// Notify appends a notice. Error notices stay visible for five seconds,
// everything else for three.
func (a *App) Notify(level NoticeLevel, message string) {
	ttl := 3 * time.Second
	if level == NoticeError {
		ttl = 5 * time.Second
	}

	a.mu.Lock()
	a.nextNoticeID++
	a.notices = append(a.notices, Notice{
		ID:        a.nextNoticeID,
		Level:     level,
		Message:   message,
		ExpiresAt: a.now().Add(ttl),
	})
	a.mu.Unlock()

	a.publish()
}

func (a *App) Success(message string) { a.Notify(NoticeSuccess, message) }
func (a *App) Error(message string)   { a.Notify(NoticeError, message) }
func (a *App) Warning(message string) { a.Notify(NoticeWarning, message) }
func (a *App) Info(message string)    { a.Notify(NoticeInfo, message) }

// Notices returns the live notices and drops expired ones.
func (a *App) Notices() []Notice {
	a.mu.Lock()
	defer a.mu.Unlock()

	now := a.now()
	live := a.notices[:0]
	for _, n := range a.notices {
		if n.ExpiresAt.After(now) {
			live = append(live, n)
		}
	}
	a.notices = live

	out := make([]Notice, len(live))
	copy(out, live)
	return out
}
