package shared

import (
	"strings"
	"time"

	"book-management-backend/internal/shared/apierror"
)

// DateFormat is the wire format for calendar dates (publication_date).
const DateFormat = "2006-01-02"

// Date is a calendar date marshaled as "yyyy-mm-dd". A malformed value in a
// request body surfaces as an InvalidInput failure rather than a generic
// JSON error, matching how bad date formats are reported to clients.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

// Today returns the current calendar date, truncated to day precision.
func Today() Date {
	y, m, d := time.Now().Date()
	return Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateFormat) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	if raw == "null" || raw == "" {
		return nil
	}

	parsed, err := time.Parse(DateFormat, raw)
	if err != nil {
		return apierror.Newf(apierror.InvalidInput, "date[%s] must match format yyyy-mm-dd", raw)
	}

	d.Time = parsed
	return nil
}

func (d Date) String() string {
	return d.Format(DateFormat)
}
