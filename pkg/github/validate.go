package github

import (
	"regexp"
	"strings"

	"github.com/konard/Jhon-Crow-github-activity-based-readme-gen/pkg/errors"
)

// GitHub usernames: 1-39 alphanumeric or hyphen, starting and ending
// with an alphanumeric character. Consecutive hyphens are checked
// separately because the pattern cannot express the restriction alone.
var validUsername = regexp.MustCompile(`^[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,37}[a-zA-Z0-9])?$`)

// ValidateUsername validates a GitHub username against the account name
// grammar. It runs before any API call so malformed input never reaches
// the network.
func ValidateUsername(username string) error {
	if username == "" {
		return errors.New(errors.ErrCodeInvalidUsername, "username is required")
	}
	if len(username) > 39 {
		return errors.New(errors.ErrCodeInvalidUsername, "username too long (max 39 characters)")
	}
	if strings.Contains(username, "--") {
		return errors.New(errors.ErrCodeInvalidUsername, "username cannot contain consecutive hyphens")
	}
	if !validUsername.MatchString(username) {
		return errors.New(errors.ErrCodeInvalidUsername,
			"invalid username format: must be 1-39 alphanumeric characters or hyphens, cannot start or end with a hyphen")
	}
	return nil
}
