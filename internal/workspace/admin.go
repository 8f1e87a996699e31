package workspace

import (
	"context"

	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/forms"
	"guarashopp-storefront/internal/repository/storage"
)

// LoginAdmin builds a throwaway workspace for command-line tools and logs in
// with the given credentials. Non-admin accounts are refused.
func LoginAdmin(ctx context.Context, deps Deps, identifier, secret string) (*Workspace, error) {
	if deps.Store == nil {
		deps.Store = storage.NewMemory()
	}
	w := New(ctx, deps, "cli")
	if _, err := w.Session.Login(ctx, forms.Login{Identifier: identifier, Secret: secret}); err != nil {
		w.Close()
		return nil, err
	}
	if !w.Session.IsAdmin() {
		w.Session.Logout(ctx)
		w.Close()
		return nil, domain.ErrForbidden
	}
	return w, nil
}
