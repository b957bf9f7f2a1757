package domain

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

const (
	timeLayout          = "15:04:05"
	defaultJourneyHours = 24.0
)

// TotalDistance is the distance of the last stop, in km.
func (s Schedule) TotalDistance() (float64, error) {
	if len(s.Route) == 0 {
		return 0, &OpError{Op: "domain.schedule.distance", Kind: KindNoData, Err: ErrNoData}
	}
	last := strings.TrimSpace(s.Route[len(s.Route)-1].Distance)
	if last == "" {
		return 0, invalidArgument("domain.schedule.distance", "distance of the last stop is empty")
	}
	d, err := strconv.ParseFloat(last, 64)
	if err != nil {
		return 0, invalidArgument("domain.schedule.distance", fmt.Sprintf("invalid distance %q", last))
	}
	return d, nil
}

// JourneyHours is the time between the first stop's arrival and the last stop's
// departure, wrapped into a single day. If either time is missing it is 24.
func (s Schedule) JourneyHours() (float64, error) {
	if len(s.Route) == 0 {
		return 0, &OpError{Op: "domain.schedule.hours", Kind: KindNoData, Err: ErrNoData}
	}

	first, err := parseClock(s.Route[0].ArrivalTime)
	if err != nil {
		return 0, err
	}
	last, err := parseClock(s.Route[len(s.Route)-1].DepartureTime)
	if err != nil {
		return 0, err
	}
	if first == nil || last == nil {
		return defaultJourneyHours, nil
	}

	day := int64(24 * time.Hour / time.Second)
	secs := int64(last.Sub(*first) / time.Second)
	secs = ((secs % day) + day) % day
	return float64(secs) / 3600, nil
}

// AverageSpeed returns distance/hours rounded to two decimals; zero hours gives zero.
func AverageSpeed(distanceKm, hours float64) float64 {
	if hours == 0 {
		return 0
	}
	return math.Round(distanceKm/hours*100) / 100
}

// ScheduleAverageSpeed combines TotalDistance and JourneyHours.
func ScheduleAverageSpeed(s Schedule) (float64, error) {
	dist, err := s.TotalDistance()
	if err != nil {
		return 0, err
	}
	hours, err := s.JourneyHours()
	if err != nil {
		return 0, err
	}
	return AverageSpeed(dist, hours), nil
}

func parseClock(s string) (*time.Time, error) {
	in := strings.TrimSpace(s)
	if in == "" {
		return nil, nil
	}
	t, err := time.Parse(timeLayout, in)
	if err != nil {
		return nil, invalidArgument("domain.schedule.hours", fmt.Sprintf("invalid time %q", in))
	}
	return &t, nil
}
