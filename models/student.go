package models

import (
	"strings"
	"time"
)

// Student is a registered user of the application.
// Email is the identity key and is compared case-insensitively.
type Student struct {
	Email          string     `json:"email" yaml:"email"`
	FirstName      string     `json:"firstName" yaml:"firstName"`
	LastName       string     `json:"lastName" yaml:"lastName"`
	StudentID      string     `json:"studentId" yaml:"studentId"`
	Major          string     `json:"major" yaml:"major"`
	HashedPassword string     `json:"-" yaml:"-"`
	CreatedAt      time.Time  `json:"createdAt" yaml:"createdAt"`
	LastLoginAt    *time.Time `json:"lastLoginAt,omitempty" yaml:"lastLoginAt,omitempty"`
	Active         bool       `json:"active" yaml:"active"`
}

// FullName joins first and last name.
func (s Student) FullName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// SameAs reports whether both records describe the same student.
func (s Student) SameAs(other Student) bool {
	return strings.EqualFold(s.Email, other.Email)
}

// Clone returns a copy that shares no pointers with s.
func (s Student) Clone() Student {
	if s.LastLoginAt != nil {
		t := *s.LastLoginAt
		s.LastLoginAt = &t
	}
	return s
}
