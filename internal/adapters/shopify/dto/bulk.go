package dto

// ProductSetInput is the wire shape of one bulk upsert line. ID is set only
// for update-in-place; the bulk mutation treats its absence as create-new.
type ProductSetInput struct {
	ID              string               `json:"id,omitempty"`
	Handle          string               `json:"handle"`
	Title           string               `json:"title"`
	DescriptionHTML string               `json:"descriptionHtml,omitempty"`
	Status          string               `json:"status"`
	ProductType     string               `json:"productType,omitempty"`
	Tags            []string             `json:"tags,omitempty"`
	ProductOptions  []ProductOptionInput `json:"productOptions"`
	Variants        []VariantSetInput    `json:"variants"`
	Files           []FileSetInput       `json:"files,omitempty"`
}

type ProductOptionInput struct {
	Name   string            `json:"name"`
	Values []OptionValueName `json:"values"`
}

type OptionValueName struct {
	Name string `json:"name"`
}

type VariantSetInput struct {
	Sku                 string                   `json:"sku,omitempty"`
	Barcode             string                   `json:"barcode,omitempty"`
	Price               string                   `json:"price"`
	InventoryPolicy     string                   `json:"inventoryPolicy"`
	InventoryItem       InventoryItemInput       `json:"inventoryItem"`
	InventoryQuantities []InventoryQuantityInput `json:"inventoryQuantities"`
	OptionValues        []VariantOptionValue     `json:"optionValues"`
}

type InventoryItemInput struct {
	Tracked bool `json:"tracked"`
}

type InventoryQuantityInput struct {
	LocationID string `json:"locationId"`
	Name       string `json:"name"`
	Quantity   int    `json:"quantity"`
}

type VariantOptionValue struct {
	Name       string `json:"name"`
	OptionName string `json:"optionName"`
}

type FileSetInput struct {
	Alt            string `json:"alt,omitempty"`
	OriginalSource string `json:"originalSource"`
}

type StagedUploadsCreateData struct {
	StagedUploadsCreate struct {
		StagedTargets []StagedTarget     `json:"stagedTargets,omitempty"`
		UserErrors    []ShopifyUserError `json:"userErrors,omitempty"`
	} `json:"stagedUploadsCreate"`
}

type StagedTarget struct {
	URL        string                  `json:"url"`
	Parameters []StagedUploadParameter `json:"parameters,omitempty"`
}

type StagedUploadParameter struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type BulkOperationRunMutationData struct {
	BulkOperationRunMutation struct {
		BulkOperation *BulkOperation     `json:"bulkOperation,omitempty"`
		UserErrors    []ShopifyUserError `json:"userErrors,omitempty"`
	} `json:"bulkOperationRunMutation"`
}

type BulkOperation struct {
	ID     string `json:"id,omitempty"`
	Status string `json:"status,omitempty"`
}

type BulkOperationNodeData struct {
	Node *BulkOperation `json:"node,omitempty"`
}
