package metric

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/yndnr/mergington-go/internal/core/domain"
)

type staticSource struct {
	activities map[string]*domain.Activity
	err        error
}

func (s staticSource) List(context.Context) (map[string]*domain.Activity, error) {
	return s.activities, s.err
}

func TestActivityCollector(t *testing.T) {
	src := staticSource{activities: map[string]*domain.Activity{
		"Chess Club": {Name: "Chess Club", MaxParticipants: 12, Participants: []string{"a@x", "b@x"}},
		"Math Club":  {Name: "Math Club", MaxParticipants: 10, Participants: []string{}},
	}}
	c := NewActivityCollector(src)

	expected := `
# HELP mergington_activity_participants Students currently enrolled in the activity.
# TYPE mergington_activity_participants gauge
mergington_activity_participants{activity="Chess Club"} 2
mergington_activity_participants{activity="Math Club"} 0
# HELP mergington_activity_capacity Configured max_participants of the activity.
# TYPE mergington_activity_capacity gauge
mergington_activity_capacity{activity="Chess Club"} 12
mergington_activity_capacity{activity="Math Club"} 10
`
	if err := testutil.CollectAndCompare(c, strings.NewReader(expected)); err != nil {
		t.Errorf("unexpected collection: %v", err)
	}
}

func TestActivityCollector_SourceError(t *testing.T) {
	c := NewActivityCollector(staticSource{err: errors.New("boom")})

	if got := testutil.CollectAndCount(c); got != 0 {
		t.Errorf("CollectAndCount = %d, want 0 on source error", got)
	}
}

func TestActivityCollector_Registered(t *testing.T) {
	r := NewRegistry()
	r.MustRegister(NewActivityCollector(staticSource{activities: map[string]*domain.Activity{
		"Art Club": {Name: "Art Club", MaxParticipants: 15, Participants: []string{"x@y"}},
	}}))

	n, err := testutil.GatherAndCount(r.reg, "mergington_activity_participants")
	if err != nil {
		t.Fatalf("GatherAndCount: %v", err)
	}
	if n != 1 {
		t.Errorf("participants series = %d, want 1", n)
	}
}
