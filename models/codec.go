package models

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	// FieldDelimiter separates the fields of one record line.
	FieldDelimiter = "|"
	// NullToken marks an absent optional timestamp.
	NullToken = "null"

	// TimestampLayout is the canonical on-disk form: local wall clock, no zone,
	// fractional seconds only when non-zero.
	TimestampLayout = "2006-01-02T15:04:05.999999999"

	// StudentFieldCount and TaskFieldCount are the minimum field counts per line.
	StudentFieldCount = 9
	TaskFieldCount    = 9
)

// legacyTimestampLayouts are accepted on read. Seconds are omitted by the
// original writer when they are zero.
var legacyTimestampLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// ErrMalformedRecord is wrapped by every decode failure.
var ErrMalformedRecord = errors.New("malformed record")

var lineBreaks = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// sanitizeField removes the delimiter and line breaks from free text.
func sanitizeField(s string) string {
	return lineBreaks.Replace(strings.ReplaceAll(s, FieldDelimiter, ""))
}

// FormatTimestamp renders t in the canonical on-disk form. The layout carries
// no zone, so t is converted to local time to match ParseTimestamp.
func FormatTimestamp(t time.Time) string {
	return t.In(time.Local).Format(TimestampLayout)
}

// ParseTimestamp parses the canonical form (and the minute-precision form) in
// the local time zone.
func ParseTimestamp(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range legacyTimestampLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func parseBool(s string) bool {
	return strings.EqualFold(s, "true")
}

func splitRecord(line string, want int) ([]string, error) {
	parts := strings.Split(line, FieldDelimiter)
	if len(parts) < want {
		return nil, fmt.Errorf("%w: expected %d fields, got %d", ErrMalformedRecord, want, len(parts))
	}
	return parts, nil
}

// EncodeTask serializes a task as
// id|studentEmail|title|description|category|priority|createdAt|dueDate|isCompleted.
func EncodeTask(t Task) string {
	priority := t.Priority
	if priority == "" {
		priority = PriorityMedium
	}
	return strings.Join([]string{
		strconv.Itoa(t.ID),
		sanitizeField(t.StudentEmail),
		sanitizeField(t.Title),
		sanitizeField(t.Description),
		sanitizeField(t.Category),
		string(priority),
		FormatTimestamp(t.CreatedAt),
		FormatTimestamp(t.DueDate),
		strconv.FormatBool(t.Completed),
	}, FieldDelimiter)
}

// DecodeTask parses a line produced by EncodeTask. Unknown priorities decode
// to medium; every other parse problem is an ErrMalformedRecord.
func DecodeTask(line string) (Task, error) {
	parts, err := splitRecord(line, TaskFieldCount)
	if err != nil {
		return Task{}, err
	}

	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Task{}, fmt.Errorf("%w: bad id %q: %v", ErrMalformedRecord, parts[0], err)
	}
	createdAt, err := ParseTimestamp(parts[6])
	if err != nil {
		return Task{}, fmt.Errorf("%w: bad createdAt %q: %v", ErrMalformedRecord, parts[6], err)
	}
	dueDate, err := ParseTimestamp(parts[7])
	if err != nil {
		return Task{}, fmt.Errorf("%w: bad dueDate %q: %v", ErrMalformedRecord, parts[7], err)
	}

	return Task{
		ID:           id,
		StudentEmail: parts[1],
		Title:        parts[2],
		Description:  parts[3],
		Category:     parts[4],
		Priority:     ParsePriority(parts[5]),
		CreatedAt:    createdAt,
		DueDate:      dueDate,
		Completed:    parseBool(parts[8]),
	}, nil
}

// EncodeStudent serializes a student as
// email|firstName|lastName|studentId|major|hashedPassword|createdAt|lastLoginAt|isActive.
func EncodeStudent(s Student) string {
	lastLogin := NullToken
	if s.LastLoginAt != nil {
		lastLogin = FormatTimestamp(*s.LastLoginAt)
	}
	return strings.Join([]string{
		sanitizeField(s.Email),
		sanitizeField(s.FirstName),
		sanitizeField(s.LastName),
		sanitizeField(s.StudentID),
		sanitizeField(s.Major),
		s.HashedPassword,
		FormatTimestamp(s.CreatedAt),
		lastLogin,
		strconv.FormatBool(s.Active),
	}, FieldDelimiter)
}

// DecodeStudent parses a line produced by EncodeStudent.
func DecodeStudent(line string) (Student, error) {
	parts, err := splitRecord(line, StudentFieldCount)
	if err != nil {
		return Student{}, err
	}

	createdAt, err := ParseTimestamp(parts[6])
	if err != nil {
		return Student{}, fmt.Errorf("%w: bad createdAt %q: %v", ErrMalformedRecord, parts[6], err)
	}

	s := Student{
		Email:          parts[0],
		FirstName:      parts[1],
		LastName:       parts[2],
		StudentID:      parts[3],
		Major:          parts[4],
		HashedPassword: parts[5],
		CreatedAt:      createdAt,
		Active:         parseBool(parts[8]),
	}
	if parts[7] != NullToken {
		lastLogin, err := ParseTimestamp(parts[7])
		if err != nil {
			return Student{}, fmt.Errorf("%w: bad lastLoginAt %q: %v", ErrMalformedRecord, parts[7], err)
		}
		s.LastLoginAt = &lastLogin
	}
	return s, nil
}
