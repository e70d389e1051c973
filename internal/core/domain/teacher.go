package domain

import "encoding/json"

// Teacher is a staff identity loaded from the credential store.
//
// Password is compared verbatim. It is decoded from the credential file
// but MarshalJSON leaves it out.
type Teacher struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

type publicTeacher struct {
	Username string `json:"username"`
	Name     string `json:"name"`
}

// MarshalJSON encodes the teacher without the password.
func (t Teacher) MarshalJSON() ([]byte, error) {
	return json.Marshal(publicTeacher{Username: t.Username, Name: t.Name})
}

// Identity is the resolved caller of a request.
type Identity struct {
	Username    string
	TeacherName string
	SessionID   string
}

// Anonymous is the identity of a caller without a valid session.
var Anonymous = Identity{}

// IsTeacher reports whether the identity belongs to an authenticated teacher.
func (i Identity) IsTeacher() bool {
	return i.Username != ""
}
