package helpers

import (
	"fmt"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/stagepass/eventdesk/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	// MaxFieldLength bounds every free-text field before persistence.
	MaxFieldLength = 5000
	// MaxFilenameLength bounds stored filenames.
	MaxFilenameLength = 255
)

var (
	emailPattern    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phonePattern    = regexp.MustCompile(`^[0-9+\-() ]{7,}$`)
	unsafeFileChars = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	dateLayouts     = []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02"}
)

// ParseObjectID converts an external string identifier into a MongoDB ObjectID.
// Incoming values are normalized first: clients occasionally pass ids wrapped in
// quotes or with stray whitespace when templating request paths.
func ParseObjectID(id string) (primitive.ObjectID, error) {
	id = strings.TrimSpace(id)
	id = strings.Trim(id, "\"'")

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", models.ErrInvalidID, id)
	}
	return oid, nil
}

// SanitizeString normalizes untrusted text input: null bytes are removed,
// surrounding whitespace is trimmed, overlong values are rejected.
func SanitizeString(value, fieldName string) (string, error) {
	value = strings.ReplaceAll(value, "\x00", "")
	if len(value) > MaxFieldLength {
		return "", fmt.Errorf("%w: %s exceeds maximum length of %d characters", models.ErrFieldTooLong, fieldName, MaxFieldLength)
	}
	return strings.TrimSpace(value), nil
}

// SanitizeFilename reduces a client-supplied filename to a safe bare name.
// Sanitizing an already-sanitized name yields the same name.
func SanitizeFilename(filename string) string {
	// Drop directory components, including Windows-style separators.
	filename = path.Base(strings.ReplaceAll(filename, "\\", "/"))
	filename = unsafeFileChars.ReplaceAllString(filename, "")
	filename = strings.ReplaceAll(filename, "..", "")
	if filename == "" || filename == "." {
		filename = "file"
	}
	if len(filename) > MaxFilenameLength {
		filename = filename[:MaxFilenameLength]
	}
	return filename
}

// ValidateEmail checks for a local@domain.tld shaped address.
func ValidateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("%w: invalid email format", models.ErrInvalidFormat)
	}
	return nil
}

// ValidatePhone accepts digits, +, -, spaces and parentheses, minimum 7 characters.
func ValidatePhone(phone string) error {
	if !phonePattern.MatchString(phone) {
		return fmt.Errorf("%w: invalid phone format", models.ErrInvalidFormat)
	}
	return nil
}

// ValidateDate checks that the value parses as an ISO-8601 date or datetime.
func ValidateDate(value string) error {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, value); err == nil {
			return nil
		}
	}
	return fmt.Errorf("%w: invalid date format", models.ErrInvalidFormat)
}
