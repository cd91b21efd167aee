package dto

// CreateDirectorRequest creates a director. DOB is a date-only value.
type CreateDirectorRequest struct {
	Name        string `json:"name" binding:"required"`
	DOB         string `json:"dob" binding:"required,datetime=2006-01-02"`
	Nationality string `json:"nationality" binding:"required"`
}

// UpdateDirectorRequest is a partial update.
type UpdateDirectorRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1"`
	DOB         *string `json:"dob" binding:"omitempty,datetime=2006-01-02"`
	Nationality *string `json:"nationality" binding:"omitempty,min=1"`
}
