package command

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/yndnr/mergington-go/internal/cli/output"
	"github.com/yndnr/mergington-go/internal/core/domain"
)

type messageResult struct {
	Message string `json:"message" yaml:"message"`
}

func (m messageResult) Table() *output.Table {
	return &output.Table{Rows: [][]string{{m.Message}}}
}

type loginResult struct {
	Message     string `json:"message" yaml:"message"`
	Token       string `json:"token" yaml:"token"`
	TeacherName string `json:"teacher_name" yaml:"teacher_name"`
}

func (l loginResult) Table() *output.Table {
	return &output.Table{Rows: [][]string{
		{l.Message + ", " + l.TeacherName},
		{"export MERGINGTON_TOKEN=" + l.Token},
	}}
}

type whoAmIResult struct {
	Authenticated bool   `json:"authenticated" yaml:"authenticated"`
	TeacherName   string `json:"teacher_name,omitempty" yaml:"teacher_name,omitempty"`
	Username      string `json:"username,omitempty" yaml:"username,omitempty"`
}

func (w whoAmIResult) Table() *output.Table {
	if !w.Authenticated {
		return &output.Table{Rows: [][]string{{"not logged in"}}}
	}
	return &output.Table{
		Headers: []string{"USERNAME", "TEACHER"},
		Rows:    [][]string{{w.Username, w.TeacherName}},
	}
}

type activity struct {
	Description     string   `json:"description" yaml:"description"`
	Schedule        string   `json:"schedule" yaml:"schedule"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants"`
	Participants    []string `json:"participants" yaml:"participants"`
}

func (a activity) enrolled() string {
	if a.MaxParticipants <= 0 {
		return fmt.Sprintf("%d", len(a.Participants))
	}
	return fmt.Sprintf("%d/%d", len(a.Participants), a.MaxParticipants)
}

type activityList map[string]activity

func (l activityList) names() []string {
	names := make([]string, 0, len(l))
	for name := range l {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func (l activityList) Table() *output.Table {
	t := &output.Table{Headers: []string{"ACTIVITY", "SCHEDULE", "ENROLLED"}}
	for _, name := range l.names() {
		a := l[name]
		t.AddRow(name, a.Schedule, a.enrolled())
	}
	return t
}

type activityDetail struct {
	Name            string   `json:"name" yaml:"name"`
	Description     string   `json:"description" yaml:"description"`
	Schedule        string   `json:"schedule" yaml:"schedule"`
	MaxParticipants int      `json:"max_participants" yaml:"max_participants"`
	Participants    []string `json:"participants" yaml:"participants"`
}

func newActivityDetail(name string, a activity) activityDetail {
	return activityDetail{
		Name:            name,
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    a.Participants,
	}
}

func (d activityDetail) Table() *output.Table {
	t := &output.Table{Headers: []string{"FIELD", "VALUE"}}
	t.AddRow("name", d.Name)
	t.AddRow("description", d.Description)
	t.AddRow("schedule", d.Schedule)
	t.AddRow("enrolled", activity{MaxParticipants: d.MaxParticipants, Participants: d.Participants}.enrolled())
	if d.MaxParticipants > 0 {
		roster := domain.Activity{MaxParticipants: d.MaxParticipants, Participants: d.Participants}
		t.AddRow("spots left", strconv.Itoa(roster.SpotsLeft()))
	}
	t.AddRow("participants", strings.Join(d.Participants, ", "))
	return t
}
