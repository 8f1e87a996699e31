package layout

import "sync"

// Service holds the cart drawer's visibility for one visitor.
type Service struct {
	mu       sync.RWMutex
	cartOpen bool
}

func New() *Service {
	return &Service{}
}

func (s *Service) CartVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cartOpen
}

func (s *Service) ShowCart() { s.set(true) }

func (s *Service) HideCart() { s.set(false) }

// ToggleCart flips the drawer and returns the new visibility.
func (s *Service) ToggleCart() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cartOpen = !s.cartOpen
	return s.cartOpen
}

func (s *Service) set(v bool) {
	s.mu.Lock()
	s.cartOpen = v
	s.mu.Unlock()
}
