package persistence

import (
	"strings"
)

// validateSortField checks a client-supplied sort field against a
// whitelist. Anything not whitelisted falls back to defaultField, so
// only known column names ever reach the ORDER BY clause.
func validateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// validateSortOrder normalizes the sort direction, falling back to
// defaultOrder for anything that is not asc or desc.
func validateSortOrder(orderDir, defaultOrder string) string {
	switch strings.ToUpper(strings.TrimSpace(orderDir)) {
	case "ASC":
		return "ASC"
	case "DESC":
		return "DESC"
	}
	return defaultOrder
}

// menuItemSortFields contains the allowed sort fields for menu items
var menuItemSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"title":      true,
	"price":      true,
	"category":   true,
	"featured":   true,
}

// orderSortFields contains the allowed sort fields for orders
var orderSortFields = map[string]bool{
	"id":               true,
	"created_at":       true,
	"updated_at":       true,
	"placed_at":        true,
	"status":           true,
	"total":            true,
	"customer_id":      true,
	"delivery_crew_id": true,
}
