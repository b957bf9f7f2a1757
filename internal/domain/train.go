package domain

import (
	"fmt"
	"strings"
	"time"
)

// DefaultQuota is the general booking quota.
const DefaultQuota = "GN"

// DateLayout is the DD-MM-YYYY layout the rail API expects.
const DateLayout = "02-01-2006"

// TrainNumber is a validated, digits-only train number.
type TrainNumber string

// ParseTrainNumber trims s and checks that it is a non-empty run of ASCII digits.
func ParseTrainNumber(s string) (TrainNumber, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return "", invalidArgument("domain.train_number", "train number is required")
	}
	for _, r := range in {
		if r < '0' || r > '9' {
			return "", invalidArgument("domain.train_number", fmt.Sprintf("invalid train number %q", s))
		}
	}
	return TrainNumber(in), nil
}

func (n TrainNumber) String() string { return string(n) }

// NormalizeCode upper-cases and trims station, class, coach and quota codes.
func NormalizeCode(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// FormatDate renders t in the API date layout.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate validates a DD-MM-YYYY date and returns it unchanged (trimmed).
func ParseDate(s string) (string, error) {
	in := strings.TrimSpace(s)
	if _, err := time.Parse(DateLayout, in); err != nil {
		return "", invalidArgument("domain.date", fmt.Sprintf("invalid date %q (expected DD-MM-YYYY)", s))
	}
	return in, nil
}

// Stop is one row of a train's route.
type Stop struct {
	SerialNo      string `json:"serial_no"`
	StationCode   string `json:"station_code"`
	StationName   string `json:"station_name"`
	ArrivalTime   string `json:"arrival_time"`
	DepartureTime string `json:"departure_time"`
	Distance      string `json:"distance"`
}

// Schedule is the ordered route of a train.
type Schedule struct {
	TrainNumber TrainNumber `json:"train_number"`
	Route       []Stop      `json:"route"`
}

// LiveStatus is the running position of a train on a given day.
type LiveStatus struct {
	TrainPosition string `json:"train_position"`
	Position      string `json:"position,omitempty"`
	Delay         string `json:"delay,omitempty"`
}

// AvailabilityEntry is the booking status for a single date.
type AvailabilityEntry struct {
	Date   string `json:"date"`
	Status string `json:"status"`
}

type SeatAvailability struct {
	Entries []AvailabilityEntry `json:"entries"`
}

type Fare struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

type CoachLayout struct {
	CoachType string `json:"coach_type"`
	Features  string `json:"features"`
}

type CoachPosition struct {
	Text string `json:"text"`
}

// JourneyQuery carries the parameters for availability and fare lookups.
type JourneyQuery struct {
	Train TrainNumber
	From  string
	To    string
	Date  string
	Class string
	Quota string
}

// Normalize returns a copy with codes upper-cased and the default quota applied.
func (q JourneyQuery) Normalize() JourneyQuery {
	out := q
	out.From = NormalizeCode(q.From)
	out.To = NormalizeCode(q.To)
	out.Class = NormalizeCode(q.Class)
	out.Quota = NormalizeCode(q.Quota)
	out.Date = strings.TrimSpace(q.Date)
	if out.Quota == "" {
		out.Quota = DefaultQuota
	}
	return out
}

// Validate reports the first missing or malformed field.
func (q JourneyQuery) Validate() error {
	if q.Train == "" {
		return invalidArgument("domain.journey", "train number is required")
	}
	if q.From == "" {
		return invalidArgument("domain.journey", "source station code is required")
	}
	if q.To == "" {
		return invalidArgument("domain.journey", "destination station code is required")
	}
	if q.Class == "" {
		return invalidArgument("domain.journey", "class code is required")
	}
	if _, err := ParseDate(q.Date); err != nil {
		return err
	}
	return nil
}

func invalidArgument(op, msg string) error {
	return &OpError{
		Op:   op,
		Kind: KindInvalidArgument,
		Err:  fmt.Errorf("%s: %w", msg, ErrInvalidArgument),
	}
}
