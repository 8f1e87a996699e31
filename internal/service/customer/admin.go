package customer

import (
	"context"

	"guarashopp-storefront/internal/apiclient"
	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/forms"
	custrepo "guarashopp-storefront/internal/repository/customer"
)

func (s *Service) requireAdmin() error {
	switch s.Role() {
	case domain.RoleAdmin:
		return nil
	case domain.RoleNone:
		if s.State() != StateAuthenticated {
			return domain.ErrNotAuthenticated
		}
	}
	return domain.ErrForbidden
}

func (s *Service) ListCustomers(ctx context.Context) ([]domain.User, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.Fail(err, apiclient.MessageOr(err, "Erro ao carregar clientes."))
	}
	return users, nil
}

func (s *Service) SaveCustomer(ctx context.Context, id domain.ID, in forms.Profile) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	if err := forms.Validate(in); err != nil {
		return err
	}
	patch := custrepo.Patch{FullName: &in.FullName, Email: &in.Email, Phone: &in.Phone}
	if in.BirthDate != "" {
		patch.BirthDate = &in.BirthDate
	}
	if _, err := s.repo.Update(ctx, id, patch); err != nil {
		return domain.Fail(err, apiclient.MessageOr(err, "Erro ao salvar cliente."))
	}
	return nil
}

// SetRoleActive returns the updated customer when the backend echoes it.
func (s *Service) SetRoleActive(ctx context.Context, id domain.ID, role domain.Role, active bool) (*domain.User, error) {
	if err := s.requireAdmin(); err != nil {
		return nil, err
	}
	if role != domain.RoleAdmin && role != domain.RoleCustomer {
		return nil, domain.Fail(domain.ErrForbidden, "Perfil inválido.")
	}
	user, err := s.repo.Update(ctx, id, custrepo.Patch{Role: &role, Active: &active})
	if err != nil {
		return nil, domain.Fail(err, apiclient.MessageOr(err, "Erro ao atualizar cliente."))
	}
	return user, nil
}

// Deactivate is the admin "delete": customers are never removed, only disabled.
func (s *Service) Deactivate(ctx context.Context, id domain.ID) error {
	if err := s.requireAdmin(); err != nil {
		return err
	}
	inactive := false
	if _, err := s.repo.Update(ctx, id, custrepo.Patch{Active: &inactive}); err != nil {
		return domain.Fail(err, apiclient.MessageOr(err, "Erro ao desativar cliente."))
	}
	return nil
}
