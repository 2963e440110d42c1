package model

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/pkg/errors"
)

const DateLayout = "2006-01-02"

// Date is a calendar day in the local timezone. The zero value means absent.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.Local)}
}

// Today truncates now to its calendar day.
func Today(now time.Time) Date {
	now = now.In(time.Local)
	return NewDate(now.Year(), now.Month(), now.Day())
}

func ParseDate(s string) (Date, error) {
	if s == "" {
		return Date{}, nil
	}
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		full, errFull := time.Parse(time.RFC3339, s)
		if errFull != nil {
			return Date{}, errors.Wrapf(err, "parse date %q", s)
		}
		return Today(full), nil
	}
	return Date{Time: t}, nil
}

func (d Date) AddDays(n int) Date {
	return NewDate(d.Year(), d.Month(), d.Day()+n)
}

func (d Date) key() int {
	return d.Year()*10000 + int(d.Month())*100 + d.Day()
}

// Before compares calendar days, ignoring the time of day.
func (d Date) Before(o Date) bool {
	return d.key() < o.key()
}

func (d Date) Equal(o Date) bool {
	if d.IsZero() || o.IsZero() {
		return d.IsZero() == o.IsZero()
	}
	return d.key() == o.key()
}

// DaysUntil is the number of calendar days from d to o, negative when o is in the past.
func (d Date) DaysUntil(o Date) int {
	from := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(o.Year(), o.Month(), o.Day(), 0, 0, 0, 0, time.UTC)
	return int(to.Sub(from).Hours() / 24)
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
