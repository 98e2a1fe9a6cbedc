package companies

import (
	"context"
	"errors"
	"testing"
)

func TestCreateRequiresName(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	_, err := svc.Create(context.Background(), CreateInput{Name: "   "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestCreateAndGet(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	created, err := svc.Create(context.Background(), CreateInput{
		Name:     "  Acme GmbH ",
		Industry: "manufacturing",
		SizeBand: "50-249",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated id")
	}
	if created.Name != "Acme GmbH" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected created_at to be stamped")
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Industry != "manufacturing" || got.SizeBand != "50-249" {
		t.Fatalf("unexpected company: %+v", got)
	}
}

func TestUpdatePreservesCreatedAt(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	created, err := svc.Create(context.Background(), CreateInput{Name: "Acme"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.Update(context.Background(), created.ID, CreateInput{
		Name:     "Acme Digital",
		Industry: "software",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Acme Digital" {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("update must not change created_at")
	}
}

func TestUpdateMissingCompany(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	_, err := svc.Update(context.Background(), "missing", CreateInput{Name: "Acme"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRemovesCompany(t *testing.T) {
	svc := NewService(NewMemoryRepo())
	created, err := svc.Create(context.Background(), CreateInput{Name: "Acme"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := svc.Get(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
	if err := svc.Delete(context.Background(), created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestListClampsLimit(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)
	for i := 0; i < 3; i++ {
		if _, err := svc.Create(context.Background(), CreateInput{Name: "Company"}); err != nil {
			t.Fatalf("create: %v", err)
		}
	}
	companies, err := svc.List(context.Background(), -5, -1)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(companies) != 3 {
		t.Fatalf("expected 3 companies, got %d", len(companies))
	}
}
