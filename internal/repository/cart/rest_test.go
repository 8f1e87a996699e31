package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"guarashopp-storefront/internal/apiclient"
	"guarashopp-storefront/internal/domain"
)

func TestREST_AddItemPostsProductAndQuantity(t *testing.T) {
	var gotPath string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.Method + " " + r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":91,"quantidade":2,"produtoId":5}`))
	}))
	defer srv.Close()

	repo := NewREST(apiclient.New(srv.URL))
	line, err := repo.AddItem(context.Background(), "7", "5", 2)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if gotPath != "POST /carrinho/7/item" {
		t.Fatalf("unexpected request %q", gotPath)
	}
	if gotBody["produtoId"] != float64(5) || gotBody["quantidade"] != float64(2) {
		t.Fatalf("unexpected body %v", gotBody)
	}
	if line.ID != "91" || line.ProductKey() != "5" {
		t.Fatalf("unexpected line %+v", line)
	}
}

func TestREST_Paths(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			_, _ = w.Write([]byte(`{"id":1,"itens":[],"total":"0"}`))
		case http.MethodPatch:
			_, _ = w.Write([]byte(`{"id":3,"quantidade":4}`))
		default:
			w.WriteHeader(http.StatusNoContent)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	repo := NewREST(apiclient.New(srv.URL))
	if _, err := repo.Get(ctx, "7"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	line, err := repo.UpdateItem(ctx, "7", "3", 4)
	if err != nil || line.Quantity != 4 {
		t.Fatalf("UpdateItem = %+v, %v", line, err)
	}
	if err := repo.RemoveItem(ctx, "7", "3"); err != nil {
		t.Fatalf("RemoveItem: %v", err)
	}
	if err := repo.Clear(ctx, "7"); err != nil {
		t.Fatalf("Clear: %v", err)
	}

	want := []string{
		"GET /carrinho/7",
		"PATCH /carrinho/7/item/3",
		"DELETE /carrinho/7/item/3",
		"DELETE /carrinho/7/limpar",
	}
	if len(seen) != len(want) {
		t.Fatalf("expected %d calls, got %v", len(want), seen)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Fatalf("call %d: expected %q, got %q", i, want[i], seen[i])
		}
	}
}

func TestREST_GetPropagatesAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Carrinho não encontrado"}`))
	}))
	defer srv.Close()

	_, err := NewREST(apiclient.New(srv.URL)).Get(context.Background(), domain.ID("1"))
	if !apiclient.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
