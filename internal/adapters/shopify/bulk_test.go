package shopify

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"shopify-importer/internal/domain/model"
)

func testProduct(handle, gid string) model.CanonicalProduct {
	return model.CanonicalProduct{
		Handle:      handle,
		Title:       "Producto",
		Status:      "ACTIVE",
		ProductType: "TECLADOS",
		Tags:        []string{"ImportadoAPI"},
		Sku:         "REF-1",
		Barcode:     strings.TrimPrefix(handle, "ean-"),
		Price:       decimal.RequireFromString("12.99"),
		Stock:       3,
		ShopifyGID:  gid,
	}
}

func TestSubmitBatch(t *testing.T) {
	var uploadedJSONL string

	client := testClient(func(r *http.Request) (*http.Response, error) {
		if r.URL.Host == "upload.example" {
			body, err := io.ReadAll(r.Body)
			if err != nil {
				t.Fatal(err)
			}
			if !strings.Contains(r.Header.Get("Content-Type"), "multipart/form-data") {
				t.Fatalf("content type: %s", r.Header.Get("Content-Type"))
			}
			uploadedJSONL = string(body)
			return jsonResponse(http.StatusCreated, ""), nil
		}

		query, vars := decodeGraphQL(t, r)
		switch {
		case strings.Contains(query, "stagedUploadsCreate"):
			return jsonResponse(http.StatusOK, `{"data":{"stagedUploadsCreate":{
				"stagedTargets":[{"url":"https://upload.example/bucket","parameters":[
					{"name":"key","value":"tmp/products.jsonl"},
					{"name":"policy","value":"abc"}
				]}],
				"userErrors":[]}}}`), nil
		case strings.Contains(query, "bulkOperationRunMutation"):
			if vars["stagedPath"] != "tmp/products.jsonl" {
				t.Fatalf("stagedPath=%v", vars["stagedPath"])
			}
			mutation, _ := vars["productMutation"].(string)
			if !strings.Contains(mutation, "productSet") {
				t.Fatalf("mutation template: %s", mutation)
			}
			return jsonResponse(http.StatusOK, `{"data":{"bulkOperationRunMutation":{
				"bulkOperation":{"id":"gid://shopify/BulkOperation/7","status":"CREATED"},
				"userErrors":[]}}}`), nil
		default:
			t.Fatalf("unexpected query: %s", query)
			return nil, errors.New("unreachable")
		}
	})

	gid, err := client.SubmitBatch(context.Background(), []model.CanonicalProduct{
		testProduct("ean-111", "gid://shopify/Product/1"),
		testProduct("ean-222", ""),
	})
	if err != nil {
		t.Fatal(err)
	}
	if gid != "gid://shopify/BulkOperation/7" {
		t.Fatalf("gid=%q", gid)
	}

	lines := strings.Split(strings.TrimSpace(uploadedJSONL), "\n")
	// multipart framing around the two JSONL lines
	var jsonLines []string
	for _, l := range lines {
		if strings.HasPrefix(strings.TrimSpace(l), "{\"input\"") {
			jsonLines = append(jsonLines, strings.TrimSpace(l))
		}
	}
	if len(jsonLines) != 2 {
		t.Fatalf("jsonl lines=%d body=%q", len(jsonLines), uploadedJSONL)
	}
	if !strings.Contains(jsonLines[0], `"id":"gid://shopify/Product/1"`) {
		t.Fatalf("matched product must carry its gid: %s", jsonLines[0])
	}
	if strings.Contains(jsonLines[1], `"id":`) {
		t.Fatalf("new product must not carry a gid: %s", jsonLines[1])
	}
	if !strings.Contains(jsonLines[0], `"price":"12.99"`) {
		t.Fatalf("price not serialized with 2 decimals: %s", jsonLines[0])
	}
}

func TestSubmitBatchFatalOnStagedUploadErrors(t *testing.T) {
	client := testClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"data":{"stagedUploadsCreate":{
			"stagedTargets":[],
			"userErrors":[{"field":["input"],"message":"invalid resource"}]}}}`), nil
	})

	_, err := client.SubmitBatch(context.Background(), []model.CanonicalProduct{testProduct("ean-1", "")})
	if err == nil || !strings.Contains(err.Error(), "invalid resource") {
		t.Fatalf("err=%v", err)
	}
}

func TestAwaitBulkCompleted(t *testing.T) {
	polls := 0
	client := testClient(func(r *http.Request) (*http.Response, error) {
		polls++
		status := "RUNNING"
		if polls >= 3 {
			status = "COMPLETED"
		}
		return jsonResponse(http.StatusOK, `{"data":{"node":{"id":"gid://shopify/BulkOperation/7","status":"`+status+`"}}}`), nil
	})

	if err := client.AwaitBulk(context.Background(), "gid://shopify/BulkOperation/7"); err != nil {
		t.Fatal(err)
	}
	if polls < 3 {
		t.Fatalf("polls=%d", polls)
	}
}

func TestAwaitBulkFailedIsFatal(t *testing.T) {
	client := testClient(func(r *http.Request) (*http.Response, error) {
		return jsonResponse(http.StatusOK, `{"data":{"node":{"status":"FAILED"}}}`), nil
	})

	err := client.AwaitBulk(context.Background(), "gid://shopify/BulkOperation/7")
	if !errors.Is(err, ErrBulkFailed) {
		t.Fatalf("err=%v", err)
	}
}

func TestAwaitBulkWaitBound(t *testing.T) {
	client := NewClient(
		testClientConfig(),
		testSyncConfigShortWait(),
		&http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
			return jsonResponse(http.StatusOK, `{"data":{"node":{"status":"RUNNING"}}}`), nil
		})},
	)

	err := client.AwaitBulk(context.Background(), "gid://shopify/BulkOperation/7")
	if !errors.Is(err, ErrBulkWaitTimeout) {
		t.Fatalf("err=%v", err)
	}
}
