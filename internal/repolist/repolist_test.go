package repolist

import (
	"context"
	"errors"
	"reflect"
	"testing"

	apperrors "github.com/stahnma/github-explorer/internal/errors"
	"github.com/stahnma/github-explorer/internal/github"
)

// memStore is an in-memory storage.Store.
type memStore struct {
	data   map[string]string
	sets   int
	getErr error
	setErr error
}

func newMemStore() *memStore {
	return &memStore{data: map[string]string{}}
}

func (m *memStore) Get(_ context.Context, key string) (string, bool, error) {
	if m.getErr != nil {
		return "", false, m.getErr
	}
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *memStore) Set(_ context.Context, key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.sets++
	m.data[key] = value
	return nil
}

func (m *memStore) Delete(_ context.Context, key string) error {
	delete(m.data, key)
	return nil
}

func (m *memStore) Close() error { return nil }

func repo(id int64, fullName string) github.RepositorySummary {
	return github.RepositorySummary{
		ID:          id,
		FullName:    fullName,
		Description: "desc " + fullName,
		Owner:       github.Owner{Login: "owner", AvatarURL: "https://example.com/a.png"},
	}
}

func TestLoad_Missing(t *testing.T) {
	svc := NewService(newMemStore())
	list := svc.Load(context.Background())
	if list == nil || len(list) != 0 {
		t.Errorf("expected empty non-nil list, got %#v", list)
	}
}

func TestLoad_Malformed(t *testing.T) {
	store := newMemStore()
	store.data[StorageKey] = "{not json"
	list := NewService(store).Load(context.Background())
	if len(list) != 0 {
		t.Errorf("expected empty list for malformed value, got %v", list)
	}
}

func TestLoad_Null(t *testing.T) {
	store := newMemStore()
	store.data[StorageKey] = "null"
	list := NewService(store).Load(context.Background())
	if list == nil {
		t.Error("expected non-nil list for null value")
	}
}

func TestLoad_StoreError(t *testing.T) {
	store := newMemStore()
	store.getErr = errors.New("disk gone")
	if list := NewService(store).Load(context.Background()); len(list) != 0 {
		t.Errorf("expected empty list on store error, got %v", list)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewService(store)

	want := List{repo(1, "facebook/react"), repo(2, "golang/go"), repo(1, "facebook/react")}
	if err := svc.Save(ctx, want); err != nil {
		t.Fatal(err)
	}
	got := svc.Load(ctx)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, want)
	}
}

func TestSave_StorageKeyAndEncoding(t *testing.T) {
	store := newMemStore()
	if err := NewService(store).Save(context.Background(), nil); err != nil {
		t.Fatal(err)
	}
	if got := store.data["github repositories"]; got != "[]" {
		t.Errorf("stored %q, want []", got)
	}
}

func TestSave_StoreError(t *testing.T) {
	store := newMemStore()
	store.setErr = errors.New("read-only")
	err := NewService(store).Save(context.Background(), List{repo(1, "a/b")})
	if apperrors.KindOf(err) != apperrors.KindStorageFailed {
		t.Errorf("expected storage error, got %v", err)
	}
}

func TestAppend(t *testing.T) {
	base := List{repo(1, "a/b")}
	out := Append(base, repo(2, "c/d"))

	if len(base) != 1 {
		t.Errorf("Append modified its input: %v", base)
	}
	if len(out) != 2 || out[1].FullName != "c/d" {
		t.Errorf("unexpected result: %v", out)
	}

	dup := Append(out, repo(2, "c/d"))
	if len(dup) != 3 {
		t.Errorf("duplicates should be kept, got %d entries", len(dup))
	}
}

func TestClear(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	svc := NewService(store)
	svc.Save(ctx, List{repo(1, "a/b")})

	if err := svc.Clear(ctx); err != nil {
		t.Fatal(err)
	}
	if _, ok := store.data[StorageKey]; ok {
		t.Error("expected key to be removed")
	}
}
