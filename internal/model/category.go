package model

type Category struct {
	ID        string     `json:"id"`
	ParentID  *string    `json:"parent_id,omitempty"` // Nullable
	Name      string     `json:"name"`
	SortOrder int        `json:"sort_order"`
	Children  []Category `json:"children,omitempty"` // For tree structure
}
