package user

import (
	"strings"

	"github.com/asaskevich/govalidator"
)

// Field-level validation runs at the HTTP boundary before the service is
// invoked. Each Validate returns the full list of violations rather than
// stopping at the first one.

// Validate checks the syntactic rules for a modification request.
func (r ModificationRequest) Validate(today Date) []string {
	var violations []string
	if r.Email == "" || !govalidator.IsEmail(r.Email) {
		violations = append(violations, "email must be a valid email address")
	}
	if strings.TrimSpace(r.FirstName) == "" {
		violations = append(violations, "first_name must not be blank")
	}
	if strings.TrimSpace(r.LastName) == "" {
		violations = append(violations, "last_name must not be blank")
	}
	if r.BirthDate.IsZero() || !r.BirthDate.Before(today) {
		violations = append(violations, "birth_date must be a past date")
	}
	return violations
}

// Validate checks that both bounds are present past dates and that fromDate
// precedes toDate.
func (f BirthDateRangeFilter) Validate(today Date) []string {
	var violations []string
	if f.FromDate.IsZero() {
		violations = append(violations, "fromDate is required")
	} else if !f.FromDate.Before(today) {
		violations = append(violations, "fromDate must be a past date")
	}
	if f.ToDate.IsZero() {
		violations = append(violations, "toDate is required")
	} else if !f.ToDate.Before(today) {
		violations = append(violations, "toDate must be a past date")
	}
	if !f.FromDate.IsZero() && !f.ToDate.IsZero() && !f.FromDate.Before(f.ToDate) {
		violations = append(violations, "date range is not valid")
	}
	return violations
}

// ValidateEmail checks a bare email value for the email-only update.
func ValidateEmail(email string) []string {
	if email == "" || !govalidator.IsEmail(email) {
		return []string{"email must be a valid email address"}
	}
	return nil
}
