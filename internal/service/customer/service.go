package customer

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"guarashopp-storefront/internal/apiclient"
	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/forms"
	"guarashopp-storefront/internal/logger"
	custrepo "guarashopp-storefront/internal/repository/customer"
)

type State string

const (
	StateUnauthenticated State = "unauthenticated"
	StateAuthenticating  State = "authenticating"
	StateAuthenticated   State = "authenticated"
)

type customerRepo interface {
	Login(ctx context.Context, identifier, secret string) (*custrepo.LoginResult, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, email, code, newPassword string) (string, error)
	Register(ctx context.Context, in custrepo.Registration) error
	Get(ctx context.Context, id domain.ID) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id domain.ID, patch custrepo.Patch) (*domain.User, error)
	AddAddress(ctx context.Context, a domain.Address) error
	UpdateAddress(ctx context.Context, id domain.ID, a domain.Address) error
	DeleteAddress(ctx context.Context, id domain.ID) error
}

// Service is the session store of one visitor: authentication state, the
// current profile and the bearer token. It also carries the profile and
// address operations that refresh that profile.
type Service struct {
	repo   customerRepo
	tokens *tokenManager
	logger *logger.Logger

	mu        sync.RWMutex
	state     State
	token     string
	user      *domain.User
	gen       uint64
	listeners []func(context.Context)
}

func New(repo custrepo.Repository, store tokenStore, log *logger.Logger) *Service {
	if log == nil {
		log = logger.Nop()
	}
	return &Service{
		repo:   repo,
		tokens: newTokenManager(store),
		logger: log,
		state:  StateUnauthenticated,
	}
}

// OnLogout registers fn to run after every logout, explicit or forced by a 401.
func (s *Service) OnLogout(fn func(context.Context)) {
	s.mu.Lock()
	s.listeners = append(s.listeners, fn)
	s.mu.Unlock()
}

func (s *Service) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// Token is the bearer token source for the API client.
func (s *Service) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Service) User() *domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// UserID is "" unless the session is authenticated.
func (s *Service) UserID() domain.ID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated || s.user == nil {
		return ""
	}
	return s.user.Key()
}

func (s *Service) Role() domain.Role {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.state != StateAuthenticated || s.user == nil {
		return domain.RoleNone
	}
	return s.user.EffectiveRole()
}

func (s *Service) IsAdmin() bool {
	return s.Role() == domain.RoleAdmin
}

// Restore runs once when the visitor's workspace is created. A persisted
// profile that does not parse, or an expired token, logs the visitor out.
func (s *Service) Restore(ctx context.Context) {
	token, user, err := s.tokens.Load(ctx)
	switch {
	case err == nil:
		s.mu.Lock()
		s.state = StateAuthenticated
		s.token = token
		s.user = user
		s.mu.Unlock()
	case errors.Is(err, domain.ErrNotFound):
	default:
		s.logger.Warn().Err(err).Msg("restore session failed")
		s.Logout(ctx)
	}
}

// Login posts the credentials and, when the account is active, persists the
// token and profile.
func (s *Service) Login(ctx context.Context, in forms.Login) (*domain.User, error) {
	if err := forms.Validate(in); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.state = StateAuthenticating
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	res, err := s.repo.Login(ctx, in.Identifier, in.Secret)
	token, user, err := checkLogin(res, err)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.gen {
		return nil, domain.Fail(ErrLoginUnavailable, msgLoginUnavailable)
	}
	if err != nil {
		s.settleStateLocked()
		s.logger.Info().Err(err).Str("identifier", in.Identifier).Msg("login refused")
		return nil, err
	}
	if err := s.tokens.Save(ctx, token, *user); err != nil {
		s.settleStateLocked()
		s.logger.Error().Err(err).Msg("persist session failed")
		return nil, domain.Fail(err, msgLoginUnavailable)
	}
	s.state = StateAuthenticated
	s.token = token
	s.user = user
	s.logger.Info().Str("userId", user.Key().String()).Str("role", string(user.EffectiveRole())).Msg("logged in")
	u := *user
	return &u, nil
}

// settleStateLocked leaves Authenticating after a failed login, falling back
// to whatever session was already in place.
func (s *Service) settleStateLocked() {
	if s.user != nil && s.token != "" {
		s.state = StateAuthenticated
		return
	}
	s.state = StateUnauthenticated
}

func checkLogin(res *custrepo.LoginResult, err error) (string, *domain.User, error) {
	if err != nil {
		switch apiclient.StatusOf(err) {
		case http.StatusUnauthorized:
			return "", nil, domain.Fail(ErrInvalidCredentials, msgInvalidCredentials)
		case http.StatusBadRequest:
			return "", nil, domain.Fail(ErrLoginRejected, apiclient.MessageOr(err, msgLoginUnavailable))
		}
		return "", nil, domain.Fail(errors.Join(ErrLoginUnavailable, err), msgLoginUnavailable)
	}
	if res == nil || res.User == nil || res.User.ID == "" {
		return "", nil, domain.Fail(ErrInvalidResponse, msgInvalidResponse)
	}
	if !res.User.Active {
		return "", nil, domain.Fail(ErrAccountDisabled, msgAccountDisabled)
	}
	token := tokenFromLogin(res.Token)
	if token == "" {
		return "", nil, domain.Fail(ErrInvalidResponse, msgInvalidResponse)
	}
	return token, res.User, nil
}

// Logout clears the persisted session whatever the current state is.
func (s *Service) Logout(ctx context.Context) {
	s.mu.Lock()
	listeners := s.logoutLocked(ctx)
	s.mu.Unlock()
	notify(ctx, listeners)
}

// HandleUnauthorized is registered with the API client. Only an authenticated
// session is torn down, so a burst of 401s logs out once.
func (s *Service) HandleUnauthorized(ctx context.Context) {
	s.mu.Lock()
	if s.state != StateAuthenticated {
		s.mu.Unlock()
		return
	}
	s.logger.Warn().Str("userId", s.user.Key().String()).Msg("session expired, logging out")
	listeners := s.logoutLocked(ctx)
	s.mu.Unlock()
	notify(ctx, listeners)
}

func (s *Service) logoutLocked(ctx context.Context) []func(context.Context) {
	s.gen++
	s.state = StateUnauthenticated
	s.token = ""
	s.user = nil
	if err := s.tokens.Clear(ctx); err != nil {
		s.logger.Error().Err(err).Msg("clear persisted session failed")
	}
	return append([]func(context.Context)(nil), s.listeners...)
}

func notify(ctx context.Context, listeners []func(context.Context)) {
	for _, fn := range listeners {
		fn(ctx)
	}
}

func (s *Service) Register(ctx context.Context, in forms.Registration) error {
	if err := forms.Validate(in); err != nil {
		return err
	}
	err := s.repo.Register(ctx, custrepo.Registration{
		FullName:  in.FullName,
		Email:     in.Email,
		Password:  in.Password,
		Phone:     in.Phone,
		BirthDate: in.BirthDate,
	})
	if err != nil {
		return domain.Fail(err, apiclient.MessageOr(err, "Não foi possível conectar ao servidor."))
	}
	return nil
}

// ForgotPassword returns the server's confirmation message.
func (s *Service) ForgotPassword(ctx context.Context, in forms.ForgotPassword) (string, error) {
	if err := forms.Validate(in); err != nil {
		return "", err
	}
	msg, err := s.repo.ForgotPassword(ctx, in.Email)
	if err != nil {
		return "", domain.Fail(err, apiclient.MessageOr(err, "Erro ao enviar solicitação de recuperação."))
	}
	if msg == "" {
		msg = "Email enviado com sucesso."
	}
	return msg, nil
}

func (s *Service) ResetPassword(ctx context.Context, in forms.ResetPassword) (string, error) {
	if err := forms.Validate(in); err != nil {
		return "", err
	}
	msg, err := s.repo.ResetPassword(ctx, in.Email, in.Code, in.NewPassword)
	if err != nil {
		return "", domain.Fail(err, apiclient.MessageOr(err, "Erro ao redefinir senha. Verifique o código ou tente novamente."))
	}
	if msg == "" {
		msg = "Senha redefinida com sucesso."
	}
	return msg, nil
}
