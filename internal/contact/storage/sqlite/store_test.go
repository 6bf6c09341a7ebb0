package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rjreducation/vsdcentre/internal/contact/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "contact.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	t.Parallel()

	if _, err := Open("   "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestCreateAssignsIDAndTimestamp(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	record, err := store.CreateContactSubmission(context.Background(), storage.NewSubmissionInput{
		Name:    "Jane",
		Email:   "jane@example.com",
		Message: "Interested in the program",
	})
	if err != nil {
		t.Fatalf("CreateContactSubmission() error = %v", err)
	}
	if record.ID == "" {
		t.Fatal("expected assigned id")
	}
	if record.CreatedAt.IsZero() {
		t.Fatal("expected creation timestamp")
	}
	if record.Name != "Jane" || record.Email != "jane@example.com" {
		t.Fatalf("record fields = %+v", record)
	}
}

func TestCreatedRecordVisibleToList(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	created, err := store.CreateContactSubmission(context.Background(), storage.NewSubmissionInput{
		Name:    "Jane",
		Email:   "jane@example.com",
		Phone:   "+91 98765 43210",
		Message: "Interested in the program",
	})
	if err != nil {
		t.Fatalf("CreateContactSubmission() error = %v", err)
	}

	listed, err := store.ListContactSubmissions(context.Background())
	if err != nil {
		t.Fatalf("ListContactSubmissions() error = %v", err)
	}
	if len(listed) != 1 {
		t.Fatalf("listed %d records, want 1", len(listed))
	}
	if listed[0].ID != created.ID {
		t.Fatalf("listed id = %q, want %q", listed[0].ID, created.ID)
	}
	if listed[0].Phone != "+91 98765 43210" {
		t.Fatalf("listed phone = %q", listed[0].Phone)
	}
	if listed[0].Message != "Interested in the program" {
		t.Fatalf("listed message = %q", listed[0].Message)
	}
}

func TestListEmptyStoreReturnsEmptySlice(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	listed, err := store.ListContactSubmissions(context.Background())
	if err != nil {
		t.Fatalf("ListContactSubmissions() error = %v", err)
	}
	if listed == nil {
		t.Fatal("expected non-nil slice")
	}
	if len(listed) != 0 {
		t.Fatalf("listed %d records, want 0", len(listed))
	}
}

func TestListNewestFirst(t *testing.T) {
	t.Parallel()

	store := openTestStore(t)
	ctx := context.Background()
	for _, name := range []string{"first", "second", "third"} {
		if _, err := store.CreateContactSubmission(ctx, storage.NewSubmissionInput{
			Name:    name,
			Email:   name + "@example.com",
			Message: "hello",
		}); err != nil {
			t.Fatalf("CreateContactSubmission(%s) error = %v", name, err)
		}
	}

	listed, err := store.ListContactSubmissions(ctx)
	if err != nil {
		t.Fatalf("ListContactSubmissions() error = %v", err)
	}
	if len(listed) != 3 {
		t.Fatalf("listed %d records, want 3", len(listed))
	}
	for i := 1; i < len(listed); i++ {
		if listed[i].CreatedAt.After(listed[i-1].CreatedAt) {
			t.Fatalf("records not ordered newest first: %v before %v", listed[i-1].CreatedAt, listed[i].CreatedAt)
		}
	}
}
