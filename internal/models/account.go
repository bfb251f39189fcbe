package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/go-playground/validator/v10"
)

var ErrValidation = errors.New("invalid account payload")

var validate = validator.New()

// Account is the single resource this service manages. The ID is assigned
// by the database on insert and ignored on incoming payloads.
type Account struct {
	ID          int64  `json:"id"`
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required"`
	Address     string `json:"address" validate:"required"`
	PhoneNumber string `json:"phone_number"`
	DateJoined  Date   `json:"date_joined"`
}

// DeserializeAccount decodes a JSON body into an Account and checks the
// required fields. Any decode or validation failure comes back wrapped in
// ErrValidation so callers can treat it as a client error.
func DeserializeAccount(r io.Reader) (*Account, error) {
	var account Account
	if err := json.NewDecoder(r).Decode(&account); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	account.ID = 0

	if err := validate.Struct(&account); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if account.DateJoined.IsZero() {
		account.DateJoined = Today()
	}

	return &account, nil
}

const dateLayout = "2006-01-02"

// Date is a calendar date that serializes as an ISO "YYYY-MM-DD" string.
type Date struct {
	time.Time
}

func Today() Date {
	y, m, d := time.Now().UTC().Date()
	return Date{time.Date(y, m, d, 0, 0, 0, 0, time.UTC)}
}

func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		d.Time = time.Time{}
		return nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q: %w", s, err)
	}
	d.Time = t
	return nil
}

// Scan implements sql.Scanner so a Postgres date column can be read
// directly into a Date.
func (d *Date) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		d.Time = time.Time{}
		return nil
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return err
		}
		d.Time = t
		return nil
	default:
		return fmt.Errorf("cannot scan %T into Date", src)
	}
}

// Value implements driver.Valuer for use as a query parameter.
func (d Date) Value() (driver.Value, error) {
	return d.Time, nil
}
