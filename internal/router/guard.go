package router

import (
	"context"
	"net/url"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Decision is the terminal action of one guard evaluation.
type Decision int

const (
	Permit Decision = iota
	RedirectToLogin
	RedirectToDashboard
)

// Resolution is the guard's verdict. Location is the redirect target and is
// empty when the navigation is permitted.
type Resolution struct {
	Decision Decision
	Location string
}

// Session is the slice of the user session the guard consults.
type Session interface {
	IsLoggedIn() bool
	HasProfile() bool
	FetchUserInfo(ctx context.Context) error
	Logout(ctx context.Context)
}

// Guard admits or redirects navigations to protected routes. Evaluations are
// serialized: the profile fetch is the only suspension point, and no second
// evaluation starts while one is in flight.
type Guard struct {
	mu        sync.Mutex
	session   Session
	loginName string
	login     string
	dashboard string
}

func NewGuard(session Session) *Guard {
	return &Guard{
		session:   session,
		loginName: "Login",
		login:     "/login",
		dashboard: "/dashboard",
	}
}

// Evaluate runs the transition rules in order and resolves to exactly one
// terminal action:
//  1. public target: permitted, except the login page for a logged-in
//     session, which bounces to the dashboard;
//  2. not logged in: to login, carrying the intended path as the return
//     target;
//  3. logged in without a cached profile: fetch it, and on failure force
//     logout and go to login;
//  4. otherwise permitted.
func (g *Guard) Evaluate(ctx context.Context, m *Match) Resolution {
	g.mu.Lock()
	defer g.mu.Unlock()

	if m.Route.Meta.Public {
		if m.Route.Name == g.loginName && g.session.IsLoggedIn() {
			return Resolution{Decision: RedirectToDashboard, Location: g.dashboard}
		}
		return Resolution{Decision: Permit}
	}

	if !g.session.IsLoggedIn() {
		return Resolution{Decision: RedirectToLogin, Location: g.loginRedirect(m.FullPath)}
	}

	if !g.session.HasProfile() {
		if err := g.session.FetchUserInfo(ctx); err != nil {
			log.Warnf("Profile fetch during navigation failed, forcing logout: %v", err)
			g.session.Logout(ctx)
			return Resolution{Decision: RedirectToLogin, Location: g.login}
		}
	}

	return Resolution{Decision: Permit}
}

func (g *Guard) loginRedirect(returnTo string) string {
	query := url.Values{}
	query.Set("redirect", returnTo)
	return g.login + "?" + query.Encode()
}

// ResumeTarget extracts the return path from a login location produced by
// the guard, falling back to the dashboard.
func ResumeTarget(location string) string {
	u, err := url.Parse(location)
	if err != nil {
		return "/dashboard"
	}
	if target := u.Query().Get("redirect"); target != "" {
		return target
	}
	return "/dashboard"
}
