package customer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"guarashopp-storefront/internal/apiclient"
	"guarashopp-storefront/internal/domain"
)

func TestREST_LoginSendsIdentifierAndSecret(t *testing.T) {
	var body map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		_, _ = w.Write([]byte(`{"token":{"access_token":"jwt"},"usuario":{"id":4,"email":"a@b.com","ativo":true,"role":"cliente"}}`))
	}))
	defer srv.Close()

	res, err := NewREST(apiclient.New(srv.URL)).Login(context.Background(), "a@b.com", "segredo")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if body["identificador"] != "a@b.com" || body["senha"] != "segredo" {
		t.Fatalf("unexpected body %v", body)
	}
	if res.User == nil || res.User.ID != "4" || res.User.Role != domain.RoleCustomer {
		t.Fatalf("unexpected user %+v", res.User)
	}
	if string(res.Token) != `{"access_token":"jwt"}` {
		t.Fatalf("unexpected raw token %s", res.Token)
	}
}

func TestREST_UpdateOmitsNilFields(t *testing.T) {
	var body map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/cliente/8" {
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
		_ = json.NewDecoder(r.Body).Decode(&body)
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	active := false
	user, err := NewREST(apiclient.New(srv.URL)).Update(context.Background(), "8", Patch{Active: &active})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if user != nil {
		t.Fatalf("empty response should yield nil user, got %+v", user)
	}
	if len(body) != 1 || body["ativo"] != false {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestREST_AddressPaths(t *testing.T) {
	var seen []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, r.Method+" "+r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	ctx := context.Background()
	repo := NewREST(apiclient.New(srv.URL))
	_ = repo.AddAddress(ctx, domain.Address{ClientID: "1", CEP: "01001000"})
	_ = repo.UpdateAddress(ctx, "5", domain.Address{CEP: "01001000"})
	_ = repo.DeleteAddress(ctx, "5")

	want := []string{"POST /cliente/endereco", "PATCH /cliente/endereco/5", "DELETE /cliente/endereco/5"}
	for i := range want {
		if i >= len(seen) || seen[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, seen)
		}
	}
}
