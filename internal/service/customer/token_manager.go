package customer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/repository/storage"
)

type tokenStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

var errCorruptSession = errors.New("corrupt persisted session")

// tokenManager persists the bearer token and the profile under the visitor's
// storage keys. The token is never verified here; only its exp claim is read.
type tokenManager struct {
	store tokenStore
	now   func() time.Time
}

func newTokenManager(store tokenStore) *tokenManager {
	return &tokenManager{store: store, now: time.Now}
}

func (m *tokenManager) Save(ctx context.Context, token string, user domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := m.store.Set(ctx, storage.KeyToken, token); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	if err := m.store.Set(ctx, storage.KeyUser, string(raw)); err != nil {
		return fmt.Errorf("persist profile: %w", err)
	}
	return nil
}

func (m *tokenManager) SaveUser(ctx context.Context, user domain.User) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	return m.store.Set(ctx, storage.KeyUser, string(raw))
}

// Load returns domain.ErrNotFound when either value is missing and
// errCorruptSession when the profile does not parse or the token expired.
func (m *tokenManager) Load(ctx context.Context) (string, *domain.User, error) {
	token, err := m.store.Get(ctx, storage.KeyToken)
	if err != nil {
		return "", nil, err
	}
	rawUser, err := m.store.Get(ctx, storage.KeyUser)
	if err != nil {
		return "", nil, err
	}
	var user domain.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return "", nil, fmt.Errorf("%w: %v", errCorruptSession, err)
	}
	if user.Key() == "" {
		return "", nil, fmt.Errorf("%w: profile without id", errCorruptSession)
	}
	if m.Expired(token) {
		return "", nil, fmt.Errorf("%w: token expired", errCorruptSession)
	}
	return token, &user, nil
}

func (m *tokenManager) Clear(ctx context.Context) error {
	return errors.Join(
		m.store.Delete(ctx, storage.KeyToken),
		m.store.Delete(ctx, storage.KeyUser),
	)
}

// Expired reports whether token is a JWT whose exp lies in the past. Opaque
// tokens and JWTs without exp never expire here; the backend decides.
func (m *tokenManager) Expired(token string) bool {
	if strings.Count(token, ".") != 2 {
		return false
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !m.now().Before(exp.Time)
}

// tokenFromLogin accepts {"access_token": "..."} or a bare string.
func tokenFromLogin(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var obj struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(raw, &obj); err == nil {
		return strings.TrimSpace(obj.AccessToken)
	}
	return ""
}
