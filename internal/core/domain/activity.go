package domain

import "slices"

// Activity is an extracurricular offering.
//
// Participants keep signup order and never hold the same email twice.
type Activity struct {
	Name            string   `json:"-"`
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// Clone returns a deep copy of the activity.
func (a *Activity) Clone() *Activity {
	clone := *a
	clone.Participants = slices.Clone(a.Participants)
	if clone.Participants == nil {
		clone.Participants = []string{}
	}
	return &clone
}

// HasParticipant reports whether email is enrolled. Matching is exact.
func (a *Activity) HasParticipant(email string) bool {
	return slices.Contains(a.Participants, email)
}

// IsFull reports whether the roster reached MaxParticipants.
// A non-positive MaxParticipants means unlimited.
func (a *Activity) IsFull() bool {
	return a.MaxParticipants > 0 && len(a.Participants) >= a.MaxParticipants
}

// SpotsLeft returns the remaining capacity, never negative.
func (a *Activity) SpotsLeft() int {
	if a.MaxParticipants <= 0 {
		return 0
	}
	return max(a.MaxParticipants-len(a.Participants), 0)
}

// AddParticipant appends email to the roster.
func (a *Activity) AddParticipant(email string) error {
	if a.HasParticipant(email) {
		return ErrAlreadyEnrolled
	}
	a.Participants = append(a.Participants, email)
	return nil
}

// RemoveParticipant removes email from the roster, preserving the order of
// the remaining participants.
func (a *Activity) RemoveParticipant(email string) error {
	i := slices.Index(a.Participants, email)
	if i < 0 {
		return ErrNotEnrolled
	}
	a.Participants = slices.Delete(a.Participants, i, i+1)
	return nil
}
