package models

// ResolveCountryRequest carries a raw map-feature property bag. Values
// that are not strings are ignored during resolution.
type ResolveCountryRequest struct {
	Properties map[string]interface{} `json:"properties"`
}
