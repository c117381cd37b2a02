package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// CurrentSentinel is the wire value of an end date meaning "ongoing".
const CurrentSentinel = "Current"

// legacySentinel is the sentinel spelling used by older clients.
const legacySentinel = "Atual"

// DatePair is a month/year pair as selected in the form ("03", "2021").
type DatePair struct {
	Month string `json:"month"`
	Year  string `json:"year"`
}

// Valid reports whether both month and year are present. A lone month or
// lone year does not count.
func (d DatePair) Valid() bool {
	return d.Month != "" && d.Year != ""
}

func (d DatePair) String() string {
	return d.Month + "/" + d.Year
}

// EndDate is either a DatePair or the "Current" sentinel.
type EndDate struct {
	DatePair
	Current bool
}

// CurrentEnd returns the sentinel end date.
func CurrentEnd() EndDate {
	return EndDate{Current: true}
}

// EndOf returns a non-sentinel end date with the given month and year.
func EndOf(month, year string) EndDate {
	return EndDate{DatePair: DatePair{Month: month, Year: year}}
}

// Valid reports whether the end date can be rendered. The sentinel is
// always valid.
func (e EndDate) Valid() bool {
	return e.Current || e.DatePair.Valid()
}

func (e EndDate) String() string {
	if e.Current {
		return CurrentSentinel
	}
	return e.DatePair.String()
}

func (e EndDate) MarshalJSON() ([]byte, error) {
	if e.Current {
		return json.Marshal(CurrentSentinel)
	}
	return json.Marshal(e.DatePair)
}

func (e *EndDate) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*e = EndDate{}
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		switch s {
		case CurrentSentinel, legacySentinel:
			*e = CurrentEnd()
		case "":
			*e = EndDate{}
		default:
			return fmt.Errorf("endDate: unexpected value %q", s)
		}
		return nil
	}
	var d DatePair
	if err := json.Unmarshal(b, &d); err != nil {
		return fmt.Errorf("endDate: %w", err)
	}
	*e = EndDate{DatePair: d}
	return nil
}
