package service

import (
	"sync"

	"github.com/yndnr/mergington-go/internal/core/domain"
	"github.com/yndnr/mergington-go/internal/storage/credential"
)

var testTeachers = []domain.Teacher{
	{Username: "mrodriguez", Password: "art123", Name: "Ms. Rodriguez"},
	{Username: "mchen", Password: "chess456", Name: "Mr. Chen"},
}

func newTestCredentials() CredentialStore {
	return credential.NewStaticStore(testTeachers...)
}

// countingRecorder records outcomes for assertions.
type countingRecorder struct {
	mu         sync.Mutex
	logins     map[string]int
	signups    map[string]int
	unregister map[string]int
	active     int
}

func newCountingRecorder() *countingRecorder {
	return &countingRecorder{
		logins:     make(map[string]int),
		signups:    make(map[string]int),
		unregister: make(map[string]int),
	}
}

func (r *countingRecorder) RecordLogin(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.logins[result]++
}

func (r *countingRecorder) RecordSignup(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.signups[result]++
}

func (r *countingRecorder) RecordUnregister(result string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unregister[result]++
}

func (r *countingRecorder) SetActiveSessions(n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.active = n
}
