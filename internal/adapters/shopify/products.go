package shopify

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"shopify-importer/internal/adapters/shopify/dto"
)

const snapshotPageSize = 100

// SnapshotImported drains the paginated listing of every product carrying
// the pipeline's provenance tag and returns handle -> product GID.
func (c *Client) SnapshotImported(ctx context.Context) (map[string]string, error) {
	query := `
query products($first: Int!, $after: String, $query: String!) {
	products(first: $first, after: $after, query: $query) {
		nodes { id handle }
		pageInfo { hasNextPage endCursor }
	}
}`

	tagQuery := fmt.Sprintf("tag:%s", c.sync.ProvenanceTag)

	existing := make(map[string]string)
	var cursor *string

	for {
		variables := map[string]any{
			"first": snapshotPageSize,
			"query": tagQuery,
		}
		if cursor != nil && *cursor != "" {
			variables["after"] = *cursor
		}

		var data dto.ProductsQueryData
		if err := c.graphqlRequest(ctx, query, variables, &data); err != nil {
			return nil, err
		}

		for _, node := range data.Products.Nodes {
			if node.Handle == "" || node.ID == "" {
				continue
			}
			existing[node.Handle] = node.ID
		}

		if !data.Products.PageInfo.HasNextPage || data.Products.PageInfo.EndCursor == "" {
			break
		}
		next := data.Products.PageInfo.EndCursor
		cursor = &next
	}

	return existing, nil
}

// PublishProduct publishes one product to the configured sales channel.
func (c *Client) PublishProduct(ctx context.Context, productGid string) error {
	productGid = strings.TrimSpace(productGid)
	if productGid == "" {
		return errors.New("shopify product gid is required")
	}

	query := `
mutation publishablePublish($id: ID!, $input: [PublicationInput!]!) {
	publishablePublish(id: $id, input: $input) {
		userErrors { field message }
	}
}`

	var data dto.PublishablePublishData
	err := c.graphqlRequest(ctx, query, map[string]any{
		"id":    productGid,
		"input": []map[string]any{{"publicationId": c.config.PublicationID}},
	}, &data)
	if err != nil {
		return err
	}
	return userErrorsToError("publishablePublish", data.PublishablePublish.UserErrors)
}

// DeleteProduct removes one platform record.
func (c *Client) DeleteProduct(ctx context.Context, productGid string) error {
	productGid = strings.TrimSpace(productGid)
	if productGid == "" {
		return errors.New("shopify product gid is required")
	}

	query := `
mutation productDelete($input: ProductDeleteInput!) {
	productDelete(input: $input) {
		deletedProductId
		userErrors { field message }
	}
}`

	var data dto.ProductDeleteData
	err := c.graphqlRequest(ctx, query, map[string]any{
		"input": map[string]any{"id": productGid},
	}, &data)
	if err != nil {
		return err
	}
	return userErrorsToError("productDelete", data.ProductDelete.UserErrors)
}
