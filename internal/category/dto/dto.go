package dto

type CategoryFilters struct {
	ParentID        *string // Nil means roots
	IncludeChildren bool
}
