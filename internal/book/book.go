package book

import (
	"fmt"
	"strconv"
	"time"
)

// Book is the persisted entity. ID is assigned by the store and ignored on
// client-submitted payloads.
type Book struct {
	ID            int      `json:"id"`
	Title         string   `json:"title"`
	Authors       []string `json:"authors"`
	PublishedDate Date     `json:"published_date"`
}

// New constructs a Book without validation.
func New(id int, title string, authors []string, publishedDate Date) Book {
	return Book{
		ID:            id,
		Title:         title,
		Authors:       authors,
		PublishedDate: publishedDate,
	}
}

const dateLayout = "2006-01-02"

// Date is a calendar date carried as YYYY-MM-DD in JSON.
type Date struct {
	time.Time
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// SentinelDate is the fallback substituted for degenerate upstream dates.
func SentinelDate() Date {
	return NewDate(0, time.January, 1)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.Format(dateLayout))), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	s, err := strconv.Unquote(string(b))
	if err != nil {
		return fmt.Errorf("unquote date: %w", err)
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

// ParseDate parses a strict YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

// NormalizePublishedDate maps an upstream date string onto a calendar date.
// A bare 4-digit year becomes January 1st of that year, a full YYYY-MM-DD
// string is parsed exactly, and any other length degrades to the sentinel
// date. A 4- or 10-character string that fails to parse is an error; the
// caller skips that record instead of aborting its batch.
func NormalizePublishedDate(s string) (Date, error) {
	switch len(s) {
	case 4:
		year, err := strconv.Atoi(s)
		if err != nil {
			return Date{}, fmt.Errorf("parse published year %q: %w", s, err)
		}
		return NewDate(year, time.January, 1), nil
	case 10:
		return ParseDate(s)
	default:
		return SentinelDate(), nil
	}
}
