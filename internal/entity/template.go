package entity

import "time"

// TemplateField declares one field an extraction template asks the model for.
// Stored as JSONB in PostgreSQL.
type TemplateField struct {
	Name     string `json:"name"`
	Type     string `json:"type"` // "text", "number", "date", "currency", "boolean"
	Required bool   `json:"required"`
}

// Template mirrors the `templates` PostgreSQL table schema.
type Template struct {
	ID          string
	TenantID    string
	Name        string
	Description string
	Fields      []TemplateField // stored as JSONB
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
