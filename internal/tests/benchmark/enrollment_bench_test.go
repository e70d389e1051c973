package benchmark

import (
	"context"
	"fmt"
	"sync/atomic"
	"testing"

	"github.com/yndnr/mergington-go/internal/core/service"
)

// BenchmarkSignupParallel spreads signups over many activities, so writers
// mostly land on different shards.
func BenchmarkSignupParallel(b *testing.B) {
	store, names := bigActivityStore(1024)
	enroll := service.NewEnrollmentService(store, nil)
	ctx := context.Background()
	var seq atomic.Int64

	b.ReportAllocs()
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			n := seq.Add(1)
			email := fmt.Sprintf("student-%d@mergington.edu", n)
			if err := enroll.Signup(ctx, names[n%int64(len(names))], email); err != nil {
				b.Error(err)
				return
			}
		}
	})
}

func BenchmarkList(b *testing.B) {
	store, _ := bigActivityStore(64)
	enroll := service.NewEnrollmentService(store, nil)
	ctx := context.Background()

	b.ReportAllocs()
	for b.Loop() {
		if _, err := enroll.List(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
