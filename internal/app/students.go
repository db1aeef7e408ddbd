package app

import (
	"errors"

	"github.com/josephgoksu/smarttask/internal/auth"
	"github.com/josephgoksu/smarttask/models"
)

// ErrUnknownStudent is returned when a session names a student the directory does not know.
var ErrUnknownStudent = errors.New("session refers to an unknown student")

// Register validates the form and creates the student.
func (c *Context) Register(in models.RegisterInput) (models.Student, error) {
	if err := models.ValidateRegistration(in); err != nil {
		return models.Student{}, err
	}
	s, err := c.Students.Register(in)
	if err != nil {
		if !errors.Is(err, auth.ErrEmailTaken) {
			c.Log.Errorw("registration failed", "email", in.Email, "error", err)
		}
		return models.Student{}, err
	}
	return s, nil
}

// Login checks credentials; the CLI persists the session on success.
func (c *Context) Login(email, password string) (models.Student, error) {
	s, err := c.Students.Login(email, password)
	if err != nil {
		c.Log.Infow("login rejected", "email", email)
		return models.Student{}, err
	}
	return s, nil
}

// Student resolves the email stored in a session.
func (c *Context) Student(email string) (models.Student, error) {
	s, ok := c.Students.Lookup(email)
	if !ok || !s.Active {
		return models.Student{}, ErrUnknownStudent
	}
	return s, nil
}
