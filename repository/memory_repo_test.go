package repository

import (
	"context"
	"testing"

	"aerozone/models"
)

func TestMemoryOrderRepoAppends(t *testing.T) {
	ctx := context.Background()
	repo := NewMemoryOrderRepo()

	batch := []models.OrderLine{{UniqueCode: "1P1I1"}, {UniqueCode: "2P1I1"}}
	if err := repo.InsertMany(ctx, batch); err != nil {
		t.Fatalf("InsertMany: %v", err)
	}
	if batch[0].ID == "" || batch[0].ID == batch[1].ID {
		t.Fatalf("expected distinct assigned IDs, got %q and %q", batch[0].ID, batch[1].ID)
	}

	// The same batch again is appended, not merged.
	again := []models.OrderLine{{UniqueCode: "1P1I1"}}
	if err := repo.InsertMany(ctx, again); err != nil {
		t.Fatalf("InsertMany: %v", err)
	}

	got, err := repo.FindAll(ctx)
	if err != nil {
		t.Fatalf("FindAll: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].UniqueCode != "1P1I1" || got[1].UniqueCode != "2P1I1" || got[2].UniqueCode != "1P1I1" {
		t.Fatalf("insertion order not kept: %+v", got)
	}

	got[0].UniqueCode = "mutated"
	again2, _ := repo.FindAll(ctx)
	if again2[0].UniqueCode != "1P1I1" {
		t.Fatal("FindAll must return a copy")
	}
}

func TestMemoryReposHonourCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := NewMemoryOrderRepo().FindAll(ctx); err == nil {
		t.Fatal("expected error from cancelled context")
	}
	if _, err := NewMemoryIndentRepo(models.IndentLine{}).FindAll(ctx); err == nil {
		t.Fatal("expected error from cancelled context")
	}
}
