package cart

import (
	"context"
	"encoding/json"
	"sync"

	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/logger"
	"guarashopp-storefront/internal/repository/storage"
)

type mirrorStore interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

type mirrorState struct {
	UserID domain.ID   `json:"userId"`
	Cart   domain.Cart `json:"cart"`
}

// mirror persists the confirmed cart under storage.KeyCart. Writes carry the
// service's state version and a write older than the last one is skipped.
type mirror struct {
	store  mirrorStore
	logger *logger.Logger

	mu      sync.Mutex
	written uint64
}

func newMirror(store mirrorStore, log *logger.Logger) *mirror {
	return &mirror{store: store, logger: log}
}

func (m *mirror) load(ctx context.Context) (mirrorState, error) {
	var state mirrorState
	if m.store == nil {
		return state, domain.ErrNotFound
	}
	raw, err := m.store.Get(ctx, storage.KeyCart)
	if err != nil {
		return state, err
	}
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return state, err
	}
	return state, nil
}

func (m *mirror) save(ctx context.Context, state mirrorState, version uint64) {
	if m.store == nil {
		return
	}
	raw, err := json.Marshal(state)
	if err != nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if version < m.written {
		return
	}
	m.written = version
	if err := m.store.Set(ctx, storage.KeyCart, string(raw)); err != nil {
		m.logger.Warn().Err(err).Msg("save cart mirror")
	}
}

func (m *mirror) clear(ctx context.Context, version uint64) {
	if m.store == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if version < m.written {
		return
	}
	m.written = version
	if err := m.store.Delete(ctx, storage.KeyCart); err != nil {
		m.logger.Warn().Err(err).Msg("delete cart mirror")
	}
}
