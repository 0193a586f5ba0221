package services

import "strings"

const (
	invalidUsernameMsg = "Username must be 5-20 characters long, starting and ending with a letter " +
		"or number. It can include letters, numbers, and the symbols '.', '_', or '-' " +
		"(but not consecutively)."
	invalidPasswordMsg = "Password must be 8-20 characters long and include at least one uppercase letter, " +
		"one lowercase letter, one number, and one special character (@, #, $, %, ^, &, +, =). " +
		"It cannot contain any spaces."
	passwordMismatchMsg = "Passwords do not match."
)

// ValidateRegistration checks a registration request: the two passwords must
// match, then the username and the password must each satisfy their rules.
// Returns the first failing rule's message, or "" when everything passes.
func ValidateRegistration(username, password, confirmedPassword string) string {
	if password != confirmedPassword {
		return passwordMismatchMsg
	}
	if !validUsername(username) {
		return invalidUsernameMsg
	}
	if !validPassword(password) {
		return invalidPasswordMsg
	}
	return ""
}

// ValidatePasswordUpdate checks a password change request: the new password
// and its confirmation must match and the new password must satisfy the
// password rules.
func ValidatePasswordUpdate(newPassword, confirmNewPassword string) string {
	if newPassword != confirmNewPassword {
		return passwordMismatchMsg
	}
	if !validPassword(newPassword) {
		return invalidPasswordMsg
	}
	return ""
}

// validUsername enforces 5-20 characters, alphanumeric first and last, with
// '.', '_' and '-' allowed in between but never two in a row.
func validUsername(s string) bool {
	if len(s) < 5 || len(s) > 20 {
		return false
	}
	if !isAlnum(s[0]) || !isAlnum(s[len(s)-1]) {
		return false
	}
	prevSeparator := false
	for i := 1; i < len(s)-1; i++ {
		c := s[i]
		switch {
		case isAlnum(c):
			prevSeparator = false
		case c == '.' || c == '_' || c == '-':
			if prevSeparator {
				return false
			}
			prevSeparator = true
		default:
			return false
		}
	}
	return true
}

// validPassword enforces 8-20 characters with at least one digit, one
// lowercase letter, one uppercase letter and one of @#$%^&+=, and no
// whitespace.
func validPassword(s string) bool {
	if len(s) < 8 || len(s) > 20 {
		return false
	}
	var hasDigit, hasLower, hasUpper, hasSpecial bool
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			return false
		case c >= '0' && c <= '9':
			hasDigit = true
		case c >= 'a' && c <= 'z':
			hasLower = true
		case c >= 'A' && c <= 'Z':
			hasUpper = true
		case strings.ContainsRune("@#$%^&+=", rune(c)):
			hasSpecial = true
		}
	}
	return hasDigit && hasLower && hasUpper && hasSpecial
}

func isAlnum(c byte) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
