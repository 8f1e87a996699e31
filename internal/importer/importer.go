package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"guarashopp-storefront/internal/domain"
	"guarashopp-storefront/internal/forms"
	"guarashopp-storefront/internal/logger"
)

type ProductWriter interface {
	Save(ctx context.Context, id domain.ID, in forms.Product) error
}

type CategoryStore interface {
	List(ctx context.Context) ([]domain.Category, error)
	Save(ctx context.Context, id domain.ID, in forms.Category) error
}

// CSVImporter reads a product spreadsheet export and creates or updates the
// products through the admin API. Categories are matched by id or name and
// created when missing.
type CSVImporter struct {
	reader     *csv.Reader
	products   ProductWriter
	categories CategoryStore
	logger     *logger.Logger

	categoryIDs map[string]domain.ID
}

func NewCSVImporter(r io.Reader, products ProductWriter, categories CategoryStore, log *logger.Logger) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	if log == nil {
		log = logger.Nop()
	}
	return &CSVImporter{
		reader:     csvr,
		products:   products,
		categories: categories,
		logger:     log,
	}
}

type csvRow struct {
	Line     int
	ID       string
	Name     string
	Desc     string
	Price    string
	Stock    int
	Category string
	Image    string
	Active   *bool
}

// Run imports every row and stops at the first row the API rejects.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	if _, ok := index["nome"]; !ok {
		return 0, errors.New("read headers: missing column nome")
	}
	if err := i.loadCategories(ctx); err != nil {
		return 0, err
	}

	imported := 0
	line := 1
	for {
		record, err := i.reader.Read()
		line++
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row %d: %w", line, err)
		}

		row, err := parseRow(record, index, line)
		if err != nil {
			return imported, err
		}
		if row == nil {
			continue
		}
		if err := i.save(ctx, row); err != nil {
			return imported, err
		}
		imported++
	}
	return imported, nil
}

func (i *CSVImporter) save(ctx context.Context, row *csvRow) error {
	categoryID, err := i.categoryID(ctx, row.Category)
	if err != nil {
		return fmt.Errorf("row %d: %w", row.Line, err)
	}
	in := forms.Product{
		Name:        row.Name,
		Description: row.Desc,
		Price:       row.Price,
		Stock:       row.Stock,
		CategoryID:  categoryID.String(),
		Active:      row.Active,
		Image:       row.Image,
	}
	if err := i.products.Save(ctx, domain.ID(row.ID), in); err != nil {
		return fmt.Errorf("save product %q (row %d): %w", row.Name, row.Line, err)
	}
	i.logger.Debug().Int("row", row.Line).Str("product", row.Name).Msg("product imported")
	return nil
}

func (i *CSVImporter) loadCategories(ctx context.Context) error {
	list, err := i.categories.List(ctx)
	if err != nil {
		return fmt.Errorf("list categories: %w", err)
	}
	i.categoryIDs = make(map[string]domain.ID, len(list)*2)
	for _, c := range list {
		i.categoryIDs[c.ID.String()] = c.ID
		i.categoryIDs[normalize(c.Name)] = c.ID
	}
	return nil
}

// categoryID resolves a category column value. Creation does not return the
// new id, so the list is reloaded afterwards.
func (i *CSVImporter) categoryID(ctx context.Context, value string) (domain.ID, error) {
	if value == "" {
		return "", errors.New("missing categoria")
	}
	if id, ok := i.categoryIDs[value]; ok {
		return id, nil
	}
	if id, ok := i.categoryIDs[normalize(value)]; ok {
		return id, nil
	}
	if err := i.categories.Save(ctx, "", forms.Category{Name: value}); err != nil {
		return "", fmt.Errorf("create category %q: %w", value, err)
	}
	if err := i.loadCategories(ctx); err != nil {
		return "", err
	}
	if id, ok := i.categoryIDs[normalize(value)]; ok {
		i.logger.Info().Str("category", value).Msg("category created")
		return id, nil
	}
	return "", fmt.Errorf("category %q not found after creation", value)
}

func headerIndex(headers []string) map[string]int {
	idx := make(map[string]int, len(headers))
	for i, h := range headers {
		idx[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return idx
}

func parseRow(record []string, index map[string]int, line int) (*csvRow, error) {
	name := pick(record, index, "nome")
	if name == "" {
		return nil, nil
	}
	row := &csvRow{
		Line:     line,
		ID:       pick(record, index, "id"),
		Name:     name,
		Desc:     pick(record, index, "descricao"),
		Price:    pick(record, index, "preco"),
		Category: pick(record, index, "categoria"),
		Image:    pick(record, index, "imagem"),
	}
	if s := pick(record, index, "estoque"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("row %d: invalid estoque %q", line, s)
		}
		row.Stock = n
	}
	if s := pick(record, index, "ativo"); s != "" {
		active, err := parseBool(s)
		if err != nil {
			return nil, fmt.Errorf("row %d: invalid ativo %q", line, s)
		}
		row.Active = &active
	}
	return row, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(s) {
	case "sim", "s":
		return true, nil
	case "nao", "não", "n":
		return false, nil
	}
	return strconv.ParseBool(s)
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

func pick(record []string, index map[string]int, key string) string {
	pos, ok := index[key]
	if !ok || pos >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[pos])
}
