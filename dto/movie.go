package dto

import "github.com/filmvault-api/models"

// CreateMovieRequest creates a movie together with its owned detail row.
// Director and detail are mandatory; genres may be empty.
type CreateMovieRequest struct {
	Title      string `json:"title" binding:"required"`
	Detail     string `json:"detail" binding:"required"`
	DirectorID uint   `json:"directorId" binding:"required"`
	GenreIDs   []uint `json:"genreIds" binding:"omitempty,dive,min=1"`
}

// UpdateMovieRequest is a partial update. A nil field is left untouched;
// a non-nil GenreIDs fully replaces the genre set (an empty slice clears
// it).
type UpdateMovieRequest struct {
	Title      *string `json:"title" binding:"omitempty,min=1"`
	Detail     *string `json:"detail" binding:"omitempty,min=1"`
	DirectorID *uint   `json:"directorId" binding:"omitempty,min=1"`
	GenreIDs   *[]uint `json:"genreIds" binding:"omitempty,dive,min=1"`
}

// ListMoviesQuery is the cursor-paginated listing query. Cursor is the
// last movie id of the previous page; zero starts from the beginning.
// A title filter must be at least 3 characters to keep substring scans
// selective.
type ListMoviesQuery struct {
	Title  string `form:"title" binding:"omitempty,min=3"`
	Cursor uint   `form:"cursor"`
	Take   int    `form:"take,default=5" binding:"omitempty,min=1,max=100"`
}

// MovieListResponse carries one page of movies. NextCursor is nil on the
// last page.
type MovieListResponse struct {
	Items      []models.Movie `json:"items"`
	Count      int            `json:"count"`
	NextCursor *uint          `json:"nextCursor"`
}
