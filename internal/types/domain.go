package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Link is a reference placeholder to another entity. Links are returned as-is;
// resolving them is left to the caller.
type Link struct {
	Sys LinkSys `json:"sys"`
}

// LinkSys identifies the linked entity.
type LinkSys struct {
	Type     string `json:"type"`
	LinkType string `json:"linkType"`
	ID       string `json:"id"`
}

// Sys is the metadata block every delivery entity carries.
type Sys struct {
	ID          string     `json:"id"`
	Type        string     `json:"type"`
	Space       *Link      `json:"space,omitempty"`
	Environment *Link      `json:"environment,omitempty"`
	ContentType *Link      `json:"contentType,omitempty"`
	Revision    int        `json:"revision,omitempty"`
	Locale      string     `json:"locale,omitempty"`
	CreatedAt   *time.Time `json:"createdAt,omitempty"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// Space represents a space
type Space struct {
	Sys     Sys      `json:"sys"`
	Name    string   `json:"name"`
	Locales []Locale `json:"locales,omitempty"`
}

// Locale represents a locale configured in a space environment
type Locale struct {
	Sys          Sys    `json:"sys"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Default      bool   `json:"default"`
	FallbackCode string `json:"fallbackCode,omitempty"`
}

// ContentType represents a content model
type ContentType struct {
	Sys          Sys     `json:"sys"`
	Name         string  `json:"name"`
	Description  string  `json:"description,omitempty"`
	DisplayField string  `json:"displayField,omitempty"`
	Fields       []Field `json:"fields"`
}

// Field describes one field of a content type
type Field struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Type      string         `json:"type"`
	LinkType  string         `json:"linkType,omitempty"`
	Items     map[string]any `json:"items,omitempty"`
	Localized bool           `json:"localized"`
	Required  bool           `json:"required"`
	Disabled  bool           `json:"disabled"`
	Omitted   bool           `json:"omitted"`
}

// Entry represents an entry. Fields follow the entry's content type and are
// decoded generically.
type Entry struct {
	Sys    Sys            `json:"sys"`
	Fields map[string]any `json:"fields"`
}

// Asset represents an asset
type Asset struct {
	Sys    Sys            `json:"sys"`
	Fields map[string]any `json:"fields"`
}
