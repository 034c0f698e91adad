package dto

// BoardRequest is the create/update payload for a board. Updates are
// replace-style: every field is written as sent.
type BoardRequest struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	LogoURL     string `json:"logoUrl"`
}
