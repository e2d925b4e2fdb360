package dto

import (
	"encoding/json"
	"strings"
)

// FlexString decodes a JSON string or number into a string. The feed is not
// strict about types: EAN and STOCK arrive as either depending on the
// category endpoint.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*f = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = FlexString(n.String())
	return nil
}

func (f FlexString) String() string { return string(f) }

// SupplierProduct is one raw record of the per-category catalog feed.
// PVD, CANON and MARGIN are locale-formatted decimals ("1.234,56").
type SupplierProduct struct {
	EAN         FlexString `json:"EAN"`
	Ref         FlexString `json:"REF"`
	Name        string     `json:"NAME"`
	Subfamilia  string     `json:"SUBFAMILIA"`
	Description string     `json:"DESCRIPTION"`
	ImageURL    string     `json:"URL_IMG"`
	Stock       FlexString `json:"STOCK"`
	PVD         FlexString `json:"PVD"`
	Canon       FlexString `json:"CANON"`
	Margin      FlexString `json:"MARGIN"`
}
