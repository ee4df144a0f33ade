package state

import (
	"context"
	"sync"
	"unicode"
	"unicode/utf8"

	"cardstore/client/internal/domain"
	"cardstore/client/internal/storage"

	log "github.com/sirupsen/logrus"
)

// AuthClient is the slice of the backend the user session needs.
type AuthClient interface {
	Login(ctx context.Context, username, password string) (*domain.TokenResponse, error)
	Me(ctx context.Context) (*domain.Admin, error)
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
}

// User holds the auth token and the cached profile. The token is the single
// source of truth for login state: an empty token means logged out no matter
// what profile happens to be cached. User is the sole reader and writer of
// the persisted token record.
type User struct {
	notifier

	mu    sync.Mutex
	store storage.Store
	auth  AuthClient

	token   string
	profile *domain.Admin
}

// NewUser restores any persisted token so a previous session resumes.
func NewUser(ctx context.Context, store storage.Store, auth AuthClient) *User {
	u := &User{store: store, auth: auth}
	var token string
	if _, err := store.Load(ctx, storage.KeyAdminToken, &token); err != nil {
		log.Warnf("Failed to restore auth token: %v", err)
	}
	u.token = token
	return u
}

// Login exchanges credentials for a bearer token, persists it, then eagerly
// fetches the profile. Any failure propagates without retry.
func (u *User) Login(ctx context.Context, username, password string) error {
	res, err := u.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}

	u.mu.Lock()
	u.token = res.AccessToken
	if err := u.store.Save(ctx, storage.KeyAdminToken, res.AccessToken); err != nil {
		log.Warnf("Failed to persist auth token: %v", err)
	}
	u.mu.Unlock()
	u.publish()

	return u.FetchUserInfo(ctx)
}

// FetchUserInfo refreshes the cached profile. Without a token it does
// nothing.
func (u *User) FetchUserInfo(ctx context.Context) error {
	u.mu.Lock()
	token := u.token
	u.mu.Unlock()
	if token == "" {
		return nil
	}

	profile, err := u.auth.Me(ctx)
	if err != nil {
		return err
	}

	u.mu.Lock()
	u.profile = profile
	u.mu.Unlock()
	u.publish()
	return nil
}

// ChangePassword delegates to the backend. Local state is untouched; if the
// backend invalidates the session the caller forces a re-login.
func (u *User) ChangePassword(ctx context.Context, oldPassword, newPassword string) error {
	return u.auth.ChangePassword(ctx, oldPassword, newPassword)
}

// Logout clears token, profile and the persisted token together.
func (u *User) Logout(ctx context.Context) {
	u.mu.Lock()
	u.token = ""
	u.profile = nil
	if err := u.store.Delete(ctx, storage.KeyAdminToken); err != nil {
		log.Warnf("Failed to remove persisted auth token: %v", err)
	}
	u.mu.Unlock()
	u.publish()
}

// Token returns the current bearer token, empty when logged out.
func (u *User) Token() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.token
}

func (u *User) IsLoggedIn() bool {
	return u.Token() != ""
}

// Profile returns the cached profile, nil until fetched.
func (u *User) Profile() *domain.Admin {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.profile
}

func (u *User) HasProfile() bool {
	return u.Profile() != nil
}

func (u *User) Username() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.profile == nil {
		return ""
	}
	return u.profile.Username
}

// Nickname prefers the profile nickname over the username.
func (u *User) Nickname() string {
	u.mu.Lock()
	defer u.mu.Unlock()
	return u.displayNameLocked()
}

func (u *User) displayNameLocked() string {
	if u.profile == nil {
		return ""
	}
	if u.profile.Nickname != "" {
		return u.profile.Nickname
	}
	return u.profile.Username
}

// AvatarLetter is the first character of the display name uppercased, a
// single rune even for multi-byte names, "?" when there is no name.
func (u *User) AvatarLetter() string {
	u.mu.Lock()
	name := u.displayNameLocked()
	u.mu.Unlock()
	if name == "" {
		return "?"
	}
	r, _ := utf8.DecodeRuneInString(name)
	return string(unicode.ToUpper(r))
}
