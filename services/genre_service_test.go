package services

import (
	"errors"
	"testing"

	"github.com/filmvault-api/dto"
	"github.com/filmvault-api/repositories"
	"github.com/filmvault-api/utils"
)

func newGenreService(t *testing.T) *GenreService {
	t.Helper()
	return NewGenreService(repositories.NewGenreRepository(newTestDB(t)))
}

func TestGenreCRUD(t *testing.T) {
	svc := newGenreService(t)

	created, err := svc.Create(dto.CreateGenreRequest{Name: "Western"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	renamed := "Spaghetti Western"
	updated, err := svc.Update(created.ID, dto.UpdateGenreRequest{Name: &renamed})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Name != renamed {
		t.Errorf("Name = %q, want %q", updated.Name, renamed)
	}

	if _, err := svc.Delete(created.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, err := svc.Get(created.ID); !errors.Is(err, utils.ErrNotFound) {
		t.Errorf("Get() after delete error = %v, want ErrNotFound", err)
	}
}

func TestGenreDuplicateName(t *testing.T) {
	svc := newGenreService(t)

	if _, err := svc.Create(dto.CreateGenreRequest{Name: "Noir"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := svc.Create(dto.CreateGenreRequest{Name: "Noir"}); !errors.Is(err, utils.ErrAlreadyExists) {
		t.Errorf("duplicate Create() error = %v, want ErrAlreadyExists", err)
	}

	other, err := svc.Create(dto.CreateGenreRequest{Name: "Musical"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	taken := "Noir"
	if _, err := svc.Update(other.ID, dto.UpdateGenreRequest{Name: &taken}); !errors.Is(err, utils.ErrAlreadyExists) {
		t.Errorf("rename to taken name error = %v, want ErrAlreadyExists", err)
	}
}
