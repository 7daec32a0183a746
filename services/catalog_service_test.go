package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"storefront/lib"
	"storefront/structs"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

func TestListProducts(t *testing.T) {
	srv, hits := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products" {
			t.Errorf("path = %s, want /products", r.URL.Path)
		}
		w.Write([]byte(`[{"productId":"p1","name":"Widget","price":9.99},{"productId":"p2","name":"Gadget","price":10}]`))
	})

	svc := NewCatalogService(newTestLogger(), NewAPIClient(newTestConfig(srv.URL), nil))
	products, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}

	if len(products) != 2 {
		t.Fatalf("got %d products, want 2", len(products))
	}
	if products[0].Name != "Widget" || products[0].Price.String() != "9.99" {
		t.Errorf("products[0] = %s %s, want Widget 9.99", products[0].Name, products[0].Price)
	}
	if products[1].Price.String() != "10" {
		t.Errorf("products[1].Price = %s, want 10", products[1].Price)
	}
	if *hits != 1 {
		t.Errorf("upstream hits = %d, want 1", *hits)
	}
}

func TestListProducts_GeneratedCatalog(t *testing.T) {
	faker := gofakeit.New(7)

	want := make([]structs.Product, 25)
	for i := range want {
		want[i] = structs.Product{
			ProductID: faker.UUID(),
			Name:      faker.ProductName(),
			Price:     decimal.NewFromFloat(faker.Price(1, 500)).Round(2),
		}
	}

	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(want)
	})

	svc := NewCatalogService(newTestLogger(), NewAPIClient(newTestConfig(srv.URL), nil))
	got, err := svc.ListProducts(context.Background())
	if err != nil {
		t.Fatalf("ListProducts: %v", err)
	}

	if len(got) != len(want) {
		t.Fatalf("got %d products, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i].ProductID != want[i].ProductID || got[i].Name != want[i].Name || !got[i].Price.Equal(want[i].Price) {
			t.Errorf("product %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestListProducts_Failures(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"server error", http.StatusInternalServerError, `{"error":"scan failed"}`, lib.ErrTransportFailure},
		{"object instead of array", http.StatusOK, `{"products":[]}`, lib.ErrMalformedResponse},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				w.Write([]byte(tc.body))
			})

			svc := NewCatalogService(newTestLogger(), NewAPIClient(newTestConfig(srv.URL), nil))
			products, err := svc.ListProducts(context.Background())
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("err = %v, want %v", err, tc.wantErr)
			}
			if len(products) != 0 {
				t.Errorf("got %d products on failure, want none", len(products))
			}
		})
	}
}

func TestGetProduct(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/products/p1" {
			w.Write([]byte(`{"productId":"p1","name":"Widget","price":9.99}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"Product not found"}`))
	})

	svc := NewCatalogService(newTestLogger(), NewAPIClient(newTestConfig(srv.URL), nil))

	product, err := svc.GetProduct(context.Background(), "p1")
	if err != nil {
		t.Fatalf("GetProduct: %v", err)
	}
	if product.Name != "Widget" {
		t.Errorf("Name = %q, want Widget", product.Name)
	}

	if _, err := svc.GetProduct(context.Background(), "p404"); !errors.Is(err, lib.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}
