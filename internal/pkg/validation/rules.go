package validation

import "regexp"

// Validation rule patterns
var (
	// EmailPattern is the email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// EnrollmentNoPattern matches student enrollment numbers (e.g. TH-2025-0042)
	EnrollmentNoPattern = `^[A-Z]{2}-\d{4}-\d{4}$`

	// PasswordMinLength is the minimum accepted password length
	PasswordMinLength = 8
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email        *regexp.Regexp
	EnrollmentNo *regexp.Regexp
}{
	Email:        regexp.MustCompile(EmailPattern),
	EnrollmentNo: regexp.MustCompile(EnrollmentNoPattern),
}

// IsValidEmail reports whether the given string is a syntactically valid email.
func IsValidEmail(email string) bool {
	return CompiledPatterns.Email.MatchString(email)
}

// IsValidEnrollmentNo reports whether the given enrollment number has the expected shape.
func IsValidEnrollmentNo(no string) bool {
	return CompiledPatterns.EnrollmentNo.MatchString(no)
}
