package services

import (
	"errors"
	"testing"
	"time"

	"github.com/filmvault-api/dto"
	"github.com/filmvault-api/models"
	"github.com/filmvault-api/repositories"
	"github.com/filmvault-api/utils"
	"gorm.io/gorm"
)

func newMovieService(t *testing.T) (*MovieService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	svc := NewMovieService(db,
		repositories.NewMovieRepository(db),
		repositories.NewDirectorRepository(db),
		repositories.NewGenreRepository(db),
	)
	return svc, db
}

func seedDirector(t *testing.T, db *gorm.DB, name string) models.Director {
	t.Helper()
	director := models.Director{
		Name:        name,
		DOB:         time.Date(1970, 7, 30, 0, 0, 0, 0, time.UTC),
		Nationality: "British",
	}
	if err := db.Create(&director).Error; err != nil {
		t.Fatalf("seed director: %v", err)
	}
	return director
}

func seedGenre(t *testing.T, db *gorm.DB, name string) models.Genre {
	t.Helper()
	genre := models.Genre{Name: name}
	if err := db.Create(&genre).Error; err != nil {
		t.Fatalf("seed genre: %v", err)
	}
	return genre
}

func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()
	var n int64
	if err := db.Table(table).Count(&n).Error; err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestCreateMovieWithRelations(t *testing.T) {
	svc, db := newMovieService(t)
	director := seedDirector(t, db, "Christopher Nolan")
	scifi := seedGenre(t, db, "Sci-Fi")
	thriller := seedGenre(t, db, "Thriller")

	movie, err := svc.Create(dto.CreateMovieRequest{
		Title:      "Inception",
		Detail:     "A thief who steals corporate secrets through dream-sharing.",
		DirectorID: director.ID,
		GenreIDs:   []uint{scifi.ID, thriller.ID},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if movie.Director.Name != "Christopher Nolan" {
		t.Errorf("Director.Name = %q, want %q", movie.Director.Name, "Christopher Nolan")
	}
	if movie.Detail.Detail == "" {
		t.Error("Detail not populated")
	}
	if len(movie.Genres) != 2 {
		t.Errorf("len(Genres) = %d, want 2", len(movie.Genres))
	}
}

// A genre id that does not resolve must fail the whole create before
// anything is written.
func TestCreateMovieUnknownGenreWritesNothing(t *testing.T) {
	svc, db := newMovieService(t)
	director := seedDirector(t, db, "Denis Villeneuve")
	drama := seedGenre(t, db, "Drama")

	_, err := svc.Create(dto.CreateMovieRequest{
		Title:      "Arrival",
		Detail:     "A linguist deciphers an alien language.",
		DirectorID: director.ID,
		GenreIDs:   []uint{drama.ID, 999},
	})
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("Create() error = %v, want ErrNotFound", err)
	}

	if n := countRows(t, db, "movies"); n != 0 {
		t.Errorf("movies rows = %d, want 0", n)
	}
	if n := countRows(t, db, "movie_details"); n != 0 {
		t.Errorf("movie_details rows = %d, want 0", n)
	}
	if n := countRows(t, db, "movie_genres"); n != 0 {
		t.Errorf("movie_genres rows = %d, want 0", n)
	}
}

// A duplicate title fails after the detail insert, so the rollback must
// take the orphaned detail row with it.
func TestCreateMovieDuplicateTitleRollsBackDetail(t *testing.T) {
	svc, db := newMovieService(t)
	director := seedDirector(t, db, "Ridley Scott")

	if _, err := svc.Create(dto.CreateMovieRequest{
		Title:      "Alien",
		Detail:     "The crew of the Nostromo answers a distress call.",
		DirectorID: director.ID,
	}); err != nil {
		t.Fatalf("first Create() error = %v", err)
	}

	_, err := svc.Create(dto.CreateMovieRequest{
		Title:      "Alien",
		Detail:     "A different description.",
		DirectorID: director.ID,
	})
	if !errors.Is(err, utils.ErrAlreadyExists) {
		t.Fatalf("second Create() error = %v, want ErrAlreadyExists", err)
	}

	if n := countRows(t, db, "movies"); n != 1 {
		t.Errorf("movies rows = %d, want 1", n)
	}
	if n := countRows(t, db, "movie_details"); n != 1 {
		t.Errorf("movie_details rows = %d, want 1", n)
	}
}

func TestCreateMovieUnknownDirector(t *testing.T) {
	svc, _ := newMovieService(t)

	_, err := svc.Create(dto.CreateMovieRequest{
		Title:      "Ghost Film",
		Detail:     "No one directed this.",
		DirectorID: 404,
	})
	if !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("Create() error = %v, want ErrNotFound", err)
	}
}

// Updating the genre set applies the difference against the current
// associations instead of clearing and reinserting.
func TestUpdateMovieGenreDiff(t *testing.T) {
	svc, db := newMovieService(t)
	director := seedDirector(t, db, "Bong Joon-ho")
	a := seedGenre(t, db, "Drama")
	b := seedGenre(t, db, "Thriller")
	c := seedGenre(t, db, "Comedy")

	movie, err := svc.Create(dto.CreateMovieRequest{
		Title:      "Parasite",
		Detail:     "A poor family infiltrates a wealthy household.",
		DirectorID: director.ID,
		GenreIDs:   []uint{a.ID, b.ID},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	desired := []uint{b.ID, c.ID}
	updated, err := svc.Update(movie.ID, dto.UpdateMovieRequest{GenreIDs: &desired})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	got := map[uint]bool{}
	for _, g := range updated.Genres {
		got[g.ID] = true
	}
	if len(got) != 2 || !got[b.ID] || !got[c.ID] {
		t.Errorf("genres after update = %v, want {%d, %d}", got, b.ID, c.ID)
	}
	if n := countRows(t, db, "movie_genres"); n != 2 {
		t.Errorf("movie_genres rows = %d, want 2", n)
	}
}

// The detail row is updated in place; its identity must survive a text
// change.
func TestUpdateMovieDetailKeepsIdentity(t *testing.T) {
	svc, db := newMovieService(t)
	director := seedDirector(t, db, "Greta Gerwig")

	movie, err := svc.Create(dto.CreateMovieRequest{
		Title:      "Lady Bird",
		Detail:     "Original description.",
		DirectorID: director.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	newDetail := "Revised description."
	newTitle := "Lady Bird (2017)"
	updated, err := svc.Update(movie.ID, dto.UpdateMovieRequest{
		Title:  &newTitle,
		Detail: &newDetail,
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	if updated.DetailID != movie.DetailID {
		t.Errorf("DetailID changed: %d -> %d", movie.DetailID, updated.DetailID)
	}
	if updated.Detail.Detail != newDetail {
		t.Errorf("Detail = %q, want %q", updated.Detail.Detail, newDetail)
	}
	if updated.Title != newTitle {
		t.Errorf("Title = %q, want %q", updated.Title, newTitle)
	}
	if updated.Version != movie.Version+1 {
		t.Errorf("Version = %d, want %d", updated.Version, movie.Version+1)
	}
	if n := countRows(t, db, "movie_details"); n != 1 {
		t.Errorf("movie_details rows = %d, want 1", n)
	}
}

func TestUpdateMovieDuplicateTitle(t *testing.T) {
	svc, db := newMovieService(t)
	director := seedDirector(t, db, "Wes Anderson")

	if _, err := svc.Create(dto.CreateMovieRequest{
		Title: "Rushmore", Detail: "x", DirectorID: director.ID,
	}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	second, err := svc.Create(dto.CreateMovieRequest{
		Title: "Isle of Dogs", Detail: "y", DirectorID: director.ID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	taken := "Rushmore"
	_, err = svc.Update(second.ID, dto.UpdateMovieRequest{Title: &taken})
	if !errors.Is(err, utils.ErrAlreadyExists) {
		t.Errorf("Update() error = %v, want ErrAlreadyExists", err)
	}
}

// Delete removes the movie, its detail row and its association rows in
// one transaction; the genres themselves stay.
func TestDeleteMovieRemovesOwnedRows(t *testing.T) {
	svc, db := newMovieService(t)
	director := seedDirector(t, db, "Jordan Peele")
	horror := seedGenre(t, db, "Horror")

	movie, err := svc.Create(dto.CreateMovieRequest{
		Title:      "Get Out",
		Detail:     "A visit to a girlfriend's family takes a turn.",
		DirectorID: director.ID,
		GenreIDs:   []uint{horror.ID},
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	deletedID, err := svc.Delete(movie.ID)
	if err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if deletedID != movie.ID {
		t.Errorf("Delete() = %d, want %d", deletedID, movie.ID)
	}

	if n := countRows(t, db, "movies"); n != 0 {
		t.Errorf("movies rows = %d, want 0", n)
	}
	if n := countRows(t, db, "movie_details"); n != 0 {
		t.Errorf("movie_details rows = %d, want 0", n)
	}
	if n := countRows(t, db, "movie_genres"); n != 0 {
		t.Errorf("movie_genres rows = %d, want 0", n)
	}
	if n := countRows(t, db, "genres"); n != 1 {
		t.Errorf("genres rows = %d, want 1", n)
	}

	if _, err := svc.Get(movie.ID); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}

func TestListMoviesCursorPagination(t *testing.T) {
	svc, db := newMovieService(t)
	director := seedDirector(t, db, "Agnès Varda")

	titles := []string{"Alpha", "Bravo", "Charlie", "Delta", "Echo", "Foxtrot", "Golf"}
	for _, title := range titles {
		if _, err := svc.Create(dto.CreateMovieRequest{
			Title: title, Detail: "d", DirectorID: director.ID,
		}); err != nil {
			t.Fatalf("Create(%q) error = %v", title, err)
		}
	}

	first, err := svc.List(dto.ListMoviesQuery{Take: 5})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if first.Count != 5 {
		t.Fatalf("first page Count = %d, want 5", first.Count)
	}
	if first.NextCursor == nil {
		t.Fatal("first page NextCursor = nil, want set")
	}

	second, err := svc.List(dto.ListMoviesQuery{Cursor: *first.NextCursor, Take: 5})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if second.Count != 2 {
		t.Errorf("second page Count = %d, want 2", second.Count)
	}
	if second.NextCursor != nil {
		t.Errorf("second page NextCursor = %d, want nil", *second.NextCursor)
	}

	for _, m := range second.Items {
		if m.ID <= *first.NextCursor {
			t.Errorf("second page contains id %d <= cursor %d", m.ID, *first.NextCursor)
		}
	}
}

func TestListMoviesTitleFilter(t *testing.T) {
	svc, db := newMovieService(t)
	director := seedDirector(t, db, "Hayao Miyazaki")

	for _, title := range []string{"Spirited Away", "Princess Mononoke", "My Neighbor Totoro"} {
		if _, err := svc.Create(dto.CreateMovieRequest{
			Title: title, Detail: "d", DirectorID: director.ID,
		}); err != nil {
			t.Fatalf("Create(%q) error = %v", title, err)
		}
	}

	page, err := svc.List(dto.ListMoviesQuery{Title: "Princess", Take: 5})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if page.Count != 1 || page.Items[0].Title != "Princess Mononoke" {
		t.Errorf("filtered page = %+v, want single Princess Mononoke", page.Items)
	}
}

// take=0 reaches the service when the query string carries it
// explicitly; it must fall back to the default page size instead of
// producing an empty-page cursor.
func TestListMoviesZeroTake(t *testing.T) {
	svc, db := newMovieService(t)

	page, err := svc.List(dto.ListMoviesQuery{Take: 0})
	if err != nil {
		t.Fatalf("List() on empty catalog error = %v", err)
	}
	if page.Count != 0 || page.NextCursor != nil {
		t.Errorf("empty page = %+v, want Count 0 and nil cursor", page)
	}

	director := seedDirector(t, db, "Akira Kurosawa")
	for _, title := range []string{"Rashomon", "Ikiru", "Seven Samurai", "Yojimbo", "Ran", "Dreams"} {
		if _, err := svc.Create(dto.CreateMovieRequest{
			Title: title, Detail: "d", DirectorID: director.ID,
		}); err != nil {
			t.Fatalf("Create(%q) error = %v", title, err)
		}
	}

	page, err = svc.List(dto.ListMoviesQuery{Take: 0})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if page.Count != 5 {
		t.Errorf("Count = %d, want default page size 5", page.Count)
	}
	if page.NextCursor == nil {
		t.Error("NextCursor = nil, want set on a full page")
	}
}

func TestListMoviesEmptyResult(t *testing.T) {
	svc, _ := newMovieService(t)

	page, err := svc.List(dto.ListMoviesQuery{Take: 5})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if page.Items == nil {
		t.Error("Items = nil, want empty slice")
	}
	if page.Count != 0 || page.NextCursor != nil {
		t.Errorf("empty page = %+v, want Count 0 and nil cursor", page)
	}
}
