package graph

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateLayout is the wire format of the NaiveDate scalar.
const DateLayout = "2006-01-02"

// NaiveDate is a calendar date. The time part is always midnight UTC.
type NaiveDate struct {
	time.Time
}

// NewNaiveDate truncates t to its calendar date.
func NewNaiveDate(t time.Time) NaiveDate {
	return NaiveDate{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (NaiveDate) ImplementsGraphQLType(name string) bool {
	return name == "NaiveDate"
}

// UnmarshalGraphQL accepts inline literals and variables, both strings.
func (d *NaiveDate) UnmarshalGraphQL(input interface{}) error {
	s, ok := input.(string)
	if !ok {
		return fmt.Errorf("NaiveDate must be a string in %s format, got %T", DateLayout, input)
	}

	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("NaiveDate %q is not a valid %s date", s, DateLayout)
	}

	d.Time = t
	return nil
}

func (d NaiveDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Format(DateLayout))
}
