package category

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"guarashopp-storefront/internal/apiclient"
	"guarashopp-storefront/internal/domain"
)

func TestREST_ListAndUpdate(t *testing.T) {
	var patched map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "GET /categoria":
			_, _ = w.Write([]byte(`[{"id":1,"nome":"Bebidas"},{"id":"2","nome":"Doces"}]`))
		case "PATCH /categoria/2":
			_ = json.NewDecoder(r.Body).Decode(&patched)
			w.WriteHeader(http.StatusOK)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	defer srv.Close()

	ctx := context.Background()
	repo := NewREST(apiclient.New(srv.URL))
	cats, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(cats) != 2 || cats[0].ID != "1" || cats[1].ID != "2" {
		t.Fatalf("unexpected categories %+v", cats)
	}
	if err := repo.Update(ctx, "2", domain.Category{ID: "2", Name: "Doces finos"}); err != nil {
		t.Fatalf("Update: %v", err)
	}
	if patched["nome"] != "Doces finos" {
		t.Fatalf("unexpected patch body %v", patched)
	}
	if _, ok := patched["id"]; ok {
		t.Fatalf("patch body must not repeat the id: %v", patched)
	}
}
