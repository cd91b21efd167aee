package dto

// CreateGenreRequest creates a genre; names are unique.
type CreateGenreRequest struct {
	Name string `json:"name" binding:"required"`
}

// UpdateGenreRequest renames a genre.
type UpdateGenreRequest struct {
	Name *string `json:"name" binding:"omitempty,min=1"`
}
