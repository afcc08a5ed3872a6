package httpserver

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"luxe-jewelry-api/internal/db"
	contactrepo "luxe-jewelry-api/internal/repository/contact"
	productrepo "luxe-jewelry-api/internal/repository/product"
	"luxe-jewelry-api/internal/seed"
	contactsvc "luxe-jewelry-api/internal/service/contact"
	productsvc "luxe-jewelry-api/internal/service/product"
)

func newTestRouter(store *db.Store, products productrepo.Repository, contacts contactrepo.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := log.New(io.Discard, "", 0)
	return buildRouter(logger, store, Deps{
		ProductSvc:  productsvc.New(products),
		ContactSvc:  contactsvc.New(contacts),
		Provisioner: seed.New(products, logger),
	})
}

func newMemoryRouter() *gin.Engine {
	return newTestRouter(db.NewUnavailable("luxe_jewelry"), productrepo.NewMemory(), contactrepo.NewMemory())
}

func TestHealthReportsStoreState(t *testing.T) {
	router := newMemoryRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body struct {
		Message      string `json:"message"`
		StoreStatus  string `json:"store_status"`
		DatabaseName string `json:"database_name"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Message != "Premium Jewelry API is running" {
		t.Fatalf("unexpected message %q", body.Message)
	}
	if body.StoreStatus != "unavailable" {
		t.Fatalf("expected unavailable store status, got %q", body.StoreStatus)
	}
	if body.DatabaseName != "luxe_jewelry" {
		t.Fatalf("unexpected database name %q", body.DatabaseName)
	}
}

func TestRoutesReturn503WhenStoreUnavailable(t *testing.T) {
	// Real mongo-backed repositories over a store that never connected:
	// every data route must degrade to 503, not panic.
	store := db.NewUnavailable("luxe_jewelry")
	router := newTestRouter(store, productrepo.NewMongo(store, nil), contactrepo.NewMongo(store, nil))

	cases := []struct {
		method string
		path   string
		body   string
	}{
		{http.MethodGet, "/api/products", ""},
		{http.MethodGet, "/api/products/featured", ""},
		{http.MethodGet, "/api/products/some-id", ""},
		{http.MethodDelete, "/api/products/some-id", ""},
		{http.MethodGet, "/api/contacts", ""},
		{http.MethodPost, "/api/contact", `{"name":"Ada","email":"a@b.c","message":"hi"}`},
		{http.MethodPost, "/api/init-data", ""},
	}

	for _, tc := range cases {
		req := newJSONRequest(tc.method, tc.path, tc.body)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("%s %s: expected 503, got %d (%s)", tc.method, tc.path, rec.Code, rec.Body.String())
		}
	}
}

func TestMetricsEndpoint(t *testing.T) {
	router := newMemoryRouter()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}
