package models

import (
	"database/sql/driver"

	"github.com/lib/pq"
)

// StringArray maps a Postgres text[] column onto a Go string slice
type StringArray []string

// Value implements driver.Valuer
func (a StringArray) Value() (driver.Value, error) {
	return pq.Array([]string(a)).Value()
}

// Scan implements sql.Scanner
func (a *StringArray) Scan(src interface{}) error {
	var out []string
	if err := pq.Array(&out).Scan(src); err != nil {
		return err
	}
	*a = StringArray(out)
	return nil
}
