package product

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"guarashopp-storefront/internal/apiclient"
	"guarashopp-storefront/internal/domain"
)

func TestREST_ListAcceptsEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":[{"id":1,"nome":"Guaraná","preco":"6.90","estoque":12,"ativo":true}]}`))
	}))
	defer srv.Close()

	items, err := NewREST(apiclient.New(srv.URL)).List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Guaraná" || !items[0].Price.Equal(decimal.RequireFromString("6.9")) {
		t.Fatalf("unexpected products %+v", items)
	}
}

func TestREST_CreateSendsCategoryID(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/produto" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	p := domain.Product{
		ID:       "99",
		Name:     "Açaí",
		Price:    decimal.RequireFromString("15"),
		Category: &domain.Category{ID: "3", Name: "Bebidas"},
	}
	if err := NewREST(apiclient.New(srv.URL)).Create(context.Background(), p); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, ok := body["id"]; ok {
		t.Fatalf("create must not send an id: %v", body)
	}
	cat, _ := body["categoria"].(map[string]any)
	if cat["id"] != float64(3) || cat["nome"] != nil {
		t.Fatalf("unexpected categoria %v", body["categoria"])
	}
}

func TestREST_GetMapsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewREST(apiclient.New(srv.URL)).Get(context.Background(), "5")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestREST_UploadImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/produto/upload" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Errorf("form file: %v", err)
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer file.Close()
		_, _ = w.Write([]byte(`{"filename":"171-` + header.Filename + `"}`))
	}))
	defer srv.Close()

	name, err := NewREST(apiclient.New(srv.URL)).UploadImage(context.Background(), "cafe.png", strings.NewReader("png-bytes"))
	if err != nil {
		t.Fatalf("UploadImage: %v", err)
	}
	if name != "171-cafe.png" {
		t.Fatalf("unexpected filename %q", name)
	}
}
