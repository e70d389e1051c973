package credential

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/yndnr/mergington-go/internal/core/domain"
	"github.com/yndnr/mergington-go/internal/infra/confloader"
)

const teachersJSON = `{
  "teachers": [
    {"username": "mrodriguez", "password": "art123", "name": "Ms. Rodriguez"},
    {"username": "mchen", "password": "chess456", "name": "Mr. Chen"}
  ]
}`

func writeTeachers(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "teachers.json")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

func TestNewFileStore(t *testing.T) {
	path := writeTeachers(t, t.TempDir(), teachersJSON)

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if store.Len() != 2 {
		t.Errorf("Len() = %d, want 2", store.Len())
	}
	if store.Path() != path {
		t.Errorf("Path() = %q, want %q", store.Path(), path)
	}

	got, ok := store.Authenticate("mchen", "chess456")
	if !ok || got.Name != "Mr. Chen" {
		t.Errorf("Authenticate(mchen) = %+v, %v", got, ok)
	}
}

func TestNewFileStore_MissingFileIsEmpty(t *testing.T) {
	store, err := NewFileStore(filepath.Join(t.TempDir(), "absent.json"))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	if store.Len() != 0 {
		t.Errorf("Len() = %d, want 0", store.Len())
	}
	if _, ok := store.Authenticate("mrodriguez", "art123"); ok {
		t.Error("empty store authenticated a teacher")
	}
}

func TestNewFileStore_Malformed(t *testing.T) {
	path := writeTeachers(t, t.TempDir(), `{"teachers": [`)

	if _, err := NewFileStore(path); err == nil {
		t.Error("NewFileStore should fail on malformed JSON")
	}
}

func TestFileStore_Authenticate(t *testing.T) {
	store, err := NewFileStore(writeTeachers(t, t.TempDir(), teachersJSON))
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	tests := []struct {
		name     string
		username string
		password string
		wantOK   bool
	}{
		{"valid", "mrodriguez", "art123", true},
		{"wrong password", "mrodriguez", "wrong", false},
		{"unknown user", "nobody", "art123", false},
		{"case sensitive username", "MRodriguez", "art123", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := store.Authenticate(tt.username, tt.password)
			if ok != tt.wantOK {
				t.Fatalf("Authenticate(%q, %q) ok = %v, want %v", tt.username, tt.password, ok, tt.wantOK)
			}
			if ok && got.Name != "Ms. Rodriguez" {
				t.Errorf("Name = %q", got.Name)
			}
			if !ok && got != (domain.Teacher{}) {
				t.Errorf("failed Authenticate returned %+v", got)
			}
		})
	}
}

func TestFileStore_DuplicateUsernameFirstWins(t *testing.T) {
	path := writeTeachers(t, t.TempDir(), `{"teachers":[
		{"username":"dup","password":"one","name":"First"},
		{"username":"dup","password":"two","name":"Second"}
	]}`)

	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}
	got, ok := store.Authenticate("dup", "one")
	if !ok || got.Name != "First" {
		t.Errorf("Authenticate(dup, one) = %+v, %v", got, ok)
	}
	if _, ok := store.Authenticate("dup", "two"); ok {
		t.Error("second duplicate entry should be ignored")
	}
}

func TestFileStore_ReloadKeepsPreviousOnError(t *testing.T) {
	dir := t.TempDir()
	path := writeTeachers(t, dir, teachersJSON)
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	writeTeachers(t, dir, `not json`)
	if err := store.Reload(); err == nil {
		t.Fatal("Reload should fail on malformed JSON")
	}
	if store.Len() != 2 {
		t.Errorf("Len() = %d after failed reload, want 2", store.Len())
	}

	writeTeachers(t, dir, `{"teachers":[{"username":"new","password":"p","name":"New"}]}`)
	if err := store.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}
	if store.Len() != 1 {
		t.Error("reload should replace the previous set")
	}
	if _, ok := store.Authenticate("new", "p"); !ok {
		t.Error("reloaded teacher cannot authenticate")
	}
}

func TestNewStaticStore(t *testing.T) {
	store := NewStaticStore(domain.Teacher{Username: "u", Password: "p", Name: "N"})

	if err := store.Reload(); err != nil {
		t.Errorf("Reload on static store: %v", err)
	}
	if _, ok := store.Authenticate("u", "p"); !ok {
		t.Error("static teacher cannot authenticate")
	}
}

func TestFileStore_WatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := writeTeachers(t, dir, teachersJSON)
	store, err := NewFileStore(path)
	if err != nil {
		t.Fatalf("NewFileStore: %v", err)
	}

	w, err := confloader.NewWatcher()
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	if err := store.Watch(w); err != nil {
		t.Fatalf("Watch: %v", err)
	}
	w.StartAsync()
	defer w.Stop()
	time.Sleep(100 * time.Millisecond)

	writeTeachers(t, dir, `{"teachers":[{"username":"ms","password":"x","name":"Ms. Smith"}]}`)

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if _, ok := store.Authenticate("ms", "x"); ok {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Error("store did not pick up the changed file")
}
