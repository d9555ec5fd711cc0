package dto

import "regexp"

// Field policies carried over from the account rules: usernames are
// English letters and digits, passwords are printable ASCII without
// whitespace, display names must contain something visible.
var (
	usernameRegex    = regexp.MustCompile(`^[a-zA-Z0-9]+$`)
	passwordRegex    = regexp.MustCompile(`^[!-~]+$`)
	nameControlRegex = regexp.MustCompile(`[\x00-\x1F\x7F]`)
	whitespaceRegex  = regexp.MustCompile(`^\s+$`)
)

func validName(value interface{}) error {
	s, _ := value.(string)
	if whitespaceRegex.MatchString(s) {
		return errNameWhitespace
	}
	if nameControlRegex.MatchString(s) {
		return errNameControlChars
	}

	return nil
}
