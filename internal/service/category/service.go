package category

import (
	"context"
	"strings"

	"guarashopp-storefront/internal/apiclient"
	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/forms"
	"guarashopp-storefront/internal/repository/category"
)

type Service struct {
	repo category.Repository
}

func New(repo category.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.Fail(err, apiclient.MessageOr(err, "Erro ao carregar categorias."))
	}
	return items, nil
}

// Save creates the category when id is empty and patches it otherwise.
func (s *Service) Save(ctx context.Context, id domain.ID, in forms.Category) error {
	if err := forms.Validate(in); err != nil {
		return err
	}
	c := domain.Category{Name: strings.TrimSpace(in.Name), Description: strings.TrimSpace(in.Description)}
	var err error
	if id == "" {
		err = s.repo.Create(ctx, c)
	} else {
		err = s.repo.Update(ctx, id, c)
	}
	if err != nil {
		return domain.Fail(err, apiclient.MessageOr(err, "Erro ao salvar categoria."))
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id domain.ID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return domain.Fail(err, apiclient.MessageOr(err, "Erro ao excluir categoria."))
	}
	return nil
}
