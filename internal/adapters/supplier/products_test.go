package supplier

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"shopify-importer/internal/config"
)

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func jsonResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
		Header:     make(http.Header),
	}
}

func TestFetchCatalogPerCategory(t *testing.T) {
	var requested []string

	client := NewClient(config.SupplierConfig{
		BaseUrl:    "https://feed.example",
		Categories: []string{"TECLADOS", "RATONES INALAMBRICOS"},
	}, &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if r.URL.Path != "/catalogo" {
				t.Fatalf("unexpected path %s", r.URL.Path)
			}
			sub := r.URL.Query().Get("subfamilia")
			requested = append(requested, sub)
			switch sub {
			case "TECLADOS":
				return jsonResponse(http.StatusOK, `[{"EAN":8400000012345,"REF":"A-1","NAME":"Teclado","STOCK":2,"PVD":"10,00"}]`), nil
			case "RATONES INALAMBRICOS":
				return jsonResponse(http.StatusOK, `[{"EAN":"222","REF":"B-2","NAME":"Ratón","STOCK":"5","PVD":"5,50"}]`), nil
			default:
				t.Fatalf("unexpected subfamilia %q", sub)
				return nil, nil
			}
		}),
	})

	products, err := client.FetchCatalog(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 2 {
		t.Fatalf("len=%d", len(products))
	}
	if len(requested) != 2 {
		t.Fatalf("requests=%v", requested)
	}
	// numeric EAN is coerced to string like the string form
	if products[0].EAN.String() != "8400000012345" {
		t.Fatalf("ean=%q", products[0].EAN)
	}
	if products[1].Stock.String() != "5" {
		t.Fatalf("stock=%q", products[1].Stock)
	}
}

func TestFetchCatalogAbortsOnCategoryFailure(t *testing.T) {
	client := NewClient(config.SupplierConfig{
		BaseUrl:    "https://feed.example",
		Categories: []string{"OK", "BROKEN"},
	}, &http.Client{
		Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			if r.URL.Query().Get("subfamilia") == "OK" {
				return jsonResponse(http.StatusOK, `[]`), nil
			}
			return jsonResponse(http.StatusInternalServerError, `{"error":"boom"}`), nil
		}),
	})

	if _, err := client.FetchCatalog(context.Background()); err == nil {
		t.Fatal("expected fetch to abort on failing category")
	}
}
