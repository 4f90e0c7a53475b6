package types

import "errors"

// ------------------------------
// Response Types
// ------------------------------

// Collection wraps list endpoint responses
type Collection[T any] struct {
	Sys      Sys         `json:"sys"`
	Total    int         `json:"total"`
	Skip     int         `json:"skip"`
	Limit    int         `json:"limit"`
	Items    []T         `json:"items"`
	Includes *Includes   `json:"includes,omitempty"`
	Errors   []APIDetail `json:"errors,omitempty"`
}

// Includes carries linked entities returned alongside a collection
type Includes struct {
	Entry []Entry `json:"Entry,omitempty"`
	Asset []Asset `json:"Asset,omitempty"`
}

// APIDetail is an error object embedded in a successful collection response,
// typically reporting unresolvable links.
type APIDetail struct {
	Sys     Sys            `json:"sys"`
	Details map[string]any `json:"details,omitempty"`
}

// ------------------------------
// Shared Errors
// ------------------------------

// ErrNotFound is returned when a single-entity lookup matches nothing
var ErrNotFound = errors.New("entity not found")
