// Package isbn validates the ISBN-10 display form accepted by this system:
// three digit groups separated by two hyphens (3-6-1), prefix in [100, 900],
// final digit fixed to '0'. Request validation and book construction both
// call Validate so the rules cannot diverge.
package isbn

import (
	"strconv"
	"strings"

	"book-management-backend/internal/shared/apierror"
)

const (
	minPrefix = 100
	maxPrefix = 900
)

// Validate checks candidate against the ISBN-10 format rules in order and
// fails on the first violation with an InvalidInput error.
func Validate(candidate string) error {
	if strings.TrimSpace(candidate) == "" {
		return apierror.New(apierror.InvalidInput, "ISBN-10 must not be blank")
	}

	if strings.Count(candidate, "-") != 2 {
		return apierror.Newf(apierror.InvalidInput, "ISBN-10[%s] must contain two hyphens", candidate)
	}

	clean := strings.ReplaceAll(candidate, "-", "")
	if !isTenDigits(clean) {
		return apierror.Newf(apierror.InvalidInput, "ISBN-10[%s] must be 10 digits", candidate)
	}

	// The group is all digits here, so Atoi cannot fail.
	prefix, _ := strconv.Atoi(clean[:3])
	if prefix < minPrefix || prefix > maxPrefix {
		return apierror.Newf(apierror.InvalidInput, "ISBN-10[%s] prefix out of range (100-900)", candidate)
	}

	if clean[9] != '0' {
		return apierror.Newf(apierror.InvalidInput, "ISBN-10[%s] checksum digit must be 0", candidate)
	}

	return nil
}

func isTenDigits(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, ch := range s {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return true
}
