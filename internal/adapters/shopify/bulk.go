package shopify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"shopify-importer/internal/adapters/shopify/dto"
	"shopify-importer/internal/domain/model"
)

var (
	// ErrBulkFailed marks a bulk operation that reached a terminal state
	// other than COMPLETED. The whole batch must be resubmitted next run.
	ErrBulkFailed = errors.New("bulk operation did not complete")
	// ErrBulkWaitTimeout marks a poll wait that exceeded the configured
	// maximum duration without observing a terminal state.
	ErrBulkWaitTimeout = errors.New("bulk operation wait deadline exceeded")
)

const bulkPollMaxDelay = 30 * time.Second

// productSetMutation is the per-line mutation the platform executes for
// every JSONL entry of the staged file.
const productSetMutation = `
mutation productUpsert($input: ProductSetInput!) {
	productSet(input: $input) { product { id } userErrors { field message } }
}`

type bulkLine struct {
	Input dto.ProductSetInput `json:"input"`
}

// SubmitBatch uploads the upsert batch as a staged JSONL file and starts the
// bulk mutation over it. It returns the bulk operation GID to await.
func (c *Client) SubmitBatch(ctx context.Context, products []model.CanonicalProduct) (string, error) {
	jsonl, err := c.buildJSONL(products)
	if err != nil {
		return "", err
	}

	target, stagedPath, err := c.createStagedUpload(ctx)
	if err != nil {
		return "", err
	}

	if err := c.uploadStagedFile(ctx, target, jsonl); err != nil {
		return "", err
	}

	return c.runBulkMutation(ctx, stagedPath)
}

func (c *Client) buildJSONL(products []model.CanonicalProduct) ([]byte, error) {
	var buf bytes.Buffer
	for _, p := range products {
		line, err := json.Marshal(bulkLine{Input: c.productSetInput(p)})
		if err != nil {
			return nil, err
		}
		buf.Write(line)
		buf.WriteByte('\n')
	}
	return buf.Bytes(), nil
}

// productSetInput is the single place where a CanonicalProduct becomes wire
// payload.
func (c *Client) productSetInput(p model.CanonicalProduct) dto.ProductSetInput {
	input := dto.ProductSetInput{
		ID:              p.ShopifyGID,
		Handle:          p.Handle,
		Title:           p.Title,
		DescriptionHTML: p.Description,
		Status:          p.Status,
		ProductType:     p.ProductType,
		Tags:            p.Tags,
		ProductOptions: []dto.ProductOptionInput{
			{Name: "SKU", Values: []dto.OptionValueName{{Name: p.Sku}}},
		},
		Variants: []dto.VariantSetInput{
			{
				Sku:             p.Sku,
				Barcode:         p.Barcode,
				Price:           p.Price.StringFixed(2),
				InventoryPolicy: "DENY",
				InventoryItem:   dto.InventoryItemInput{Tracked: true},
				InventoryQuantities: []dto.InventoryQuantityInput{
					{LocationID: c.config.LocationID, Name: "available", Quantity: p.Stock},
				},
				OptionValues: []dto.VariantOptionValue{
					{Name: p.Sku, OptionName: "SKU"},
				},
			},
		},
	}
	if p.ImageURL != "" {
		input.Files = []dto.FileSetInput{{Alt: p.Title, OriginalSource: p.ImageURL}}
	}
	return input
}

func (c *Client) createStagedUpload(ctx context.Context) (dto.StagedTarget, string, error) {
	mutation := `
mutation($input: [StagedUploadInput!]!) {
	stagedUploadsCreate(input: $input) {
		stagedTargets { url parameters { name value } }
		userErrors { field message }
	}
}`

	filename := fmt.Sprintf("products-%s.jsonl", uuid.NewString())
	variables := map[string]any{"input": []map[string]any{{
		"resource":   "BULK_MUTATION_VARIABLES",
		"filename":   filename,
		"mimeType":   "text/jsonl",
		"httpMethod": "POST",
	}}}

	var data dto.StagedUploadsCreateData
	if err := c.graphqlRequest(ctx, mutation, variables, &data); err != nil {
		return dto.StagedTarget{}, "", err
	}
	if err := userErrorsToError("stagedUploadsCreate", data.StagedUploadsCreate.UserErrors); err != nil {
		return dto.StagedTarget{}, "", err
	}
	if len(data.StagedUploadsCreate.StagedTargets) == 0 {
		return dto.StagedTarget{}, "", errors.New("shopify stagedUploadsCreate returned no targets")
	}

	target := data.StagedUploadsCreate.StagedTargets[0]
	stagedPath := ""
	for _, param := range target.Parameters {
		if param.Name == "key" {
			stagedPath = param.Value
		}
	}
	if stagedPath == "" {
		return dto.StagedTarget{}, "", errors.New("shopify staged target missing key parameter")
	}
	return target, stagedPath, nil
}

func (c *Client) uploadStagedFile(ctx context.Context, target dto.StagedTarget, jsonl []byte) error {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for _, param := range target.Parameters {
		if err := writer.WriteField(param.Name, param.Value); err != nil {
			return err
		}
	}
	part, err := writer.CreateFormFile("file", "products.jsonl")
	if err != nil {
		return err
	}
	if _, err := part.Write(jsonl); err != nil {
		return err
	}
	if err := writer.Close(); err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target.URL, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("staged file upload failed: %s", resp.Status)
	}
	return nil
}

func (c *Client) runBulkMutation(ctx context.Context, stagedPath string) (string, error) {
	mutation := `
mutation($stagedPath: String!, $productMutation: String!) {
	bulkOperationRunMutation(
		mutation: $productMutation,
		stagedUploadPath: $stagedPath
	) {
		bulkOperation { id status }
		userErrors { field message }
	}
}`

	var data dto.BulkOperationRunMutationData
	err := c.graphqlRequest(ctx, mutation, map[string]any{
		"stagedPath":      stagedPath,
		"productMutation": strings.TrimSpace(productSetMutation),
	}, &data)
	if err != nil {
		return "", err
	}
	if err := userErrorsToError("bulkOperationRunMutation", data.BulkOperationRunMutation.UserErrors); err != nil {
		return "", err
	}
	op := data.BulkOperationRunMutation.BulkOperation
	if op == nil || strings.TrimSpace(op.ID) == "" {
		return "", errors.New("shopify bulkOperationRunMutation returned no operation id")
	}
	return op.ID, nil
}

// AwaitBulk polls the bulk operation until a terminal state, with a doubling
// delay capped at 30s and an overall wait bound. FAILED and CANCELED end the
// run; so does exceeding the bound, as its own error kind.
func (c *Client) AwaitBulk(ctx context.Context, bulkGid string) error {
	query := `
query($id: ID!) {
	node(id: $id) {
		... on BulkOperation { id status }
	}
}`

	waitMax := c.sync.BulkWaitMax
	if waitMax <= 0 {
		waitMax = 15 * time.Minute
	}
	delay := c.sync.BulkPollInterval
	if delay <= 0 {
		delay = 5 * time.Second
	}
	deadline := time.Now().Add(waitMax)

	for {
		var data dto.BulkOperationNodeData
		if err := c.graphqlRequest(ctx, query, map[string]any{"id": bulkGid}, &data); err != nil {
			return err
		}
		if data.Node == nil {
			return fmt.Errorf("bulk operation %s not found", bulkGid)
		}

		switch data.Node.Status {
		case "COMPLETED":
			return nil
		case "FAILED", "CANCELED":
			return fmt.Errorf("%w: terminal status %s", ErrBulkFailed, data.Node.Status)
		}

		if time.Now().Add(delay).After(deadline) {
			return fmt.Errorf("%w: waited %s", ErrBulkWaitTimeout, waitMax)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}

		delay *= 2
		if delay > bulkPollMaxDelay {
			delay = bulkPollMaxDelay
		}
	}
}
