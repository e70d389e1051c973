package benchmark

import (
	"context"
	"fmt"
	"testing"

	"github.com/yndnr/mergington-go/internal/core/domain"
	"github.com/yndnr/mergington-go/internal/storage/memory"
)

// SessionCounts are the registry sizes lookups are measured against.
var SessionCounts = []int{1000, 10000, 100000}

// newTeacher returns the i-th synthetic teacher; usernames repeat every 100.
func newTeacher(i int) domain.Teacher {
	return domain.Teacher{
		Username: fmt.Sprintf("teacher-%d", i%100),
		Password: "secret",
		Name:     fmt.Sprintf("Teacher %d", i%100),
	}
}

// prefillSessions fills a store and returns the plaintext tokens.
func prefillSessions(tb testing.TB, store *memory.SessionStore, count int) []string {
	tb.Helper()
	ctx := context.Background()
	tokens := make([]string, count)
	for i := range count {
		tok, hash, err := domain.GenerateToken()
		if err != nil {
			tb.Fatalf("GenerateToken: %v", err)
		}
		s, err := domain.NewSession(hash, newTeacher(i))
		if err != nil {
			tb.Fatalf("NewSession: %v", err)
		}
		if err := store.Create(ctx, s); err != nil {
			tb.Fatalf("Create: %v", err)
		}
		tokens[i] = tok
	}
	return tokens
}

// bigActivityStore returns a store with n uncapped activities.
func bigActivityStore(n int) (*memory.ActivityStore, []string) {
	names := make([]string, n)
	activities := make([]domain.Activity, n)
	for i := range n {
		names[i] = fmt.Sprintf("Activity %d", i)
		activities[i] = domain.Activity{
			Name:        names[i],
			Description: "benchmark",
			Schedule:    "Daily",
		}
	}
	return memory.NewActivityStore(activities...), names
}
