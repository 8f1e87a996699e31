package product

import (
	"context"
	"io"
	"strings"

	"guarashopp-storefront/internal/apiclient"
	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/forms"
	productrepo "guarashopp-storefront/internal/repository/product"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List returns the whole catalog; admin screens use it.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, domain.Fail(err, apiclient.MessageOr(err, "Erro ao carregar produtos."))
	}
	return items, nil
}

// ListActive is the storefront listing.
func (s *Service) ListActive(ctx context.Context) ([]domain.Product, error) {
	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := items[:0]
	for _, p := range items {
		if p.Active {
			out = append(out, p)
		}
	}
	return out, nil
}

func (s *Service) Get(ctx context.Context, id domain.ID) (*domain.Product, error) {
	return s.repo.Get(ctx, id)
}

// Save creates the product when id is empty and patches it otherwise.
func (s *Service) Save(ctx context.Context, id domain.ID, in forms.Product) error {
	p, err := fromForm(in)
	if err != nil {
		return err
	}
	if id == "" {
		err = s.repo.Create(ctx, p)
	} else {
		err = s.repo.Update(ctx, id, p)
	}
	if err != nil {
		return domain.Fail(err, apiclient.MessageOr(err, "Erro ao salvar produto."))
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, id domain.ID) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return domain.Fail(err, apiclient.MessageOr(err, "Erro ao excluir produto."))
	}
	return nil
}

func (s *Service) UploadImage(ctx context.Context, filename string, content io.Reader) (string, error) {
	name, err := s.repo.UploadImage(ctx, filename, content)
	if err != nil {
		return "", domain.Fail(err, apiclient.MessageOr(err, "Erro ao enviar imagem."))
	}
	return name, nil
}

func fromForm(in forms.Product) (domain.Product, error) {
	if err := forms.Validate(in); err != nil {
		return domain.Product{}, err
	}
	price, err := forms.ParsePrice(in.Price)
	if err != nil || price.IsNegative() {
		return domain.Product{}, &forms.ValidationError{Field: "preco", Message: "Preço inválido."}
	}
	active := true
	if in.Active != nil {
		active = *in.Active
	}
	return domain.Product{
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       price,
		Stock:       in.Stock,
		Image:       in.Image,
		Active:      active,
		Category:    &domain.Category{ID: domain.ID(in.CategoryID)},
	}, nil
}
