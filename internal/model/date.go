package model

import (
	"fmt"
	"time"
)

// dateLayout is the calendar-date wire format for sale and valuation dates.
const dateLayout = "2006-01-02"

// Date is a calendar date carried on the wire as "YYYY-MM-DD". Sale and
// valuation dates have day precision; a timestamp here would imply accuracy
// the transaction data does not have.
type Date struct {
	time.Time
}

// NewDate returns the Date for a calendar day in UTC.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time to its calendar day in UTC.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Format(dateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == `""` || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if len(s) < 2 || s[0] != '"' || s[len(s)-1] != '"' {
		return fmt.Errorf("date must be a %q string", dateLayout)
	}
	t, err := time.Parse(dateLayout, s[1:len(s)-1])
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}
