package customer

import (
	"context"
	"strings"

	"guarashopp-storefront/internal/apiclient"
	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/forms"
	custrepo "guarashopp-storefront/internal/repository/customer"
)

// FetchClientData reloads the profile from /cliente/{id} and persists it.
func (s *Service) FetchClientData(ctx context.Context) (*domain.User, error) {
	id, gen, err := s.authenticated()
	if err != nil {
		return nil, err
	}
	user, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, domain.Fail(err, apiclient.MessageOr(err, "Erro ao carregar dados do perfil."))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return nil, domain.ErrNotAuthenticated
	}
	// The endpoint may omit fields the login payload had.
	if user.ID == "" {
		user.ID = id
	}
	if user.Role == "" && s.user != nil {
		user.Role = s.user.Role
	}
	s.user = user
	if err := s.tokens.SaveUser(ctx, *user); err != nil {
		s.logger.Warn().Err(err).Msg("persist profile failed")
	}
	u := *user
	return &u, nil
}

func (s *Service) UpdateClientData(ctx context.Context, in forms.Profile) (*domain.User, error) {
	if err := forms.Validate(in); err != nil {
		return nil, err
	}
	id, _, err := s.authenticated()
	if err != nil {
		return nil, err
	}
	patch := custrepo.Patch{FullName: &in.FullName, Email: &in.Email, Phone: &in.Phone}
	if in.BirthDate != "" {
		patch.BirthDate = &in.BirthDate
	}
	if _, err := s.repo.Update(ctx, id, patch); err != nil {
		return nil, domain.Fail(err, apiclient.MessageOr(err, "Erro ao atualizar dados."))
	}
	return s.FetchClientData(ctx)
}

func (s *Service) AddAddress(ctx context.Context, in forms.Address) (*domain.User, error) {
	if err := forms.Validate(in); err != nil {
		return nil, err
	}
	id, _, err := s.authenticated()
	if err != nil {
		return nil, err
	}
	addr := addressFromForm(in)
	addr.ClientID = id
	if err := s.repo.AddAddress(ctx, addr); err != nil {
		return nil, domain.Fail(err, apiclient.MessageOr(err, "Erro ao salvar novo endereço."))
	}
	return s.FetchClientData(ctx)
}

func (s *Service) UpdateAddress(ctx context.Context, addressID domain.ID, in forms.Address) (*domain.User, error) {
	if err := forms.Validate(in); err != nil {
		return nil, err
	}
	if _, _, err := s.authenticated(); err != nil {
		return nil, err
	}
	if err := s.repo.UpdateAddress(ctx, addressID, addressFromForm(in)); err != nil {
		return nil, domain.Fail(err, apiclient.MessageOr(err, "Erro ao atualizar endereço."))
	}
	return s.FetchClientData(ctx)
}

func (s *Service) DeleteAddress(ctx context.Context, addressID domain.ID) (*domain.User, error) {
	if _, _, err := s.authenticated(); err != nil {
		return nil, err
	}
	if err := s.repo.DeleteAddress(ctx, addressID); err != nil {
		return nil, domain.Fail(err, apiclient.MessageOr(err, "Erro ao remover endereço."))
	}
	return s.FetchClientData(ctx)
}

func (s *Service) authenticated() (domain.ID, uint64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated || s.user == nil || s.user.Key() == "" {
		return "", 0, domain.ErrNotAuthenticated
	}
	return s.user.Key(), s.gen, nil
}

// addressFromForm stores the CEP digits-only.
func addressFromForm(in forms.Address) domain.Address {
	return domain.Address{
		Nickname:   strings.TrimSpace(in.Nickname),
		CEP:        forms.Digits(in.CEP),
		Street:     strings.TrimSpace(in.Street),
		Number:     strings.TrimSpace(in.Number),
		Complement: strings.TrimSpace(in.Complement),
		District:   strings.TrimSpace(in.District),
		City:       strings.TrimSpace(in.City),
		State:      strings.TrimSpace(in.State),
		Default:    in.Default,
	}
}
