package model

// Question is one trivia card. Immutable once loaded.
// Category is optional; an empty value hides the label.
type Question struct {
	ID       int    `json:"id" yaml:"id"`
	Text     string `json:"question" yaml:"question"`
	Category string `json:"category,omitempty" yaml:"category,omitempty"`
}
