package railapi

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"

	"github.com/aalvaropc/railinfo/internal/domain"
)

// The upstream API is loosely typed: the same field may arrive as a string or a
// number depending on the endpoint. Fields are read with JSONPath and coerced to strings.

func mapSchedule(train domain.TrainNumber, doc any) (domain.Schedule, error) {
	items, err := list(doc, "$.Route")
	if err != nil {
		return domain.Schedule{}, noData("trainschedule", "Route", err)
	}

	s := domain.Schedule{
		TrainNumber: train,
		Route:       make([]domain.Stop, 0, len(items)),
	}
	for _, it := range items {
		s.Route = append(s.Route, domain.Stop{
			SerialNo:      optional(it, "$.SerialNo", ""),
			StationCode:   optional(it, "$.StationCode", ""),
			StationName:   optional(it, "$.StationName", ""),
			ArrivalTime:   optional(it, "$.ArrivalTime", ""),
			DepartureTime: optional(it, "$.DepartureTime", ""),
			Distance:      present(it, "$.Distance", "0"),
		})
	}
	if len(s.Route) == 0 {
		return domain.Schedule{}, noData("trainschedule", "Route", fmt.Errorf("empty route"))
	}
	return s, nil
}

func mapLiveStatus(doc any) (domain.LiveStatus, error) {
	pos, err := required(doc, "$.TrainPosition")
	if err != nil {
		return domain.LiveStatus{}, noData("livetrainstatus", "TrainPosition", err)
	}
	return domain.LiveStatus{
		TrainPosition: pos,
		Position:      optional(doc, "$.Position", ""),
		Delay:         optional(doc, "$.Delay", ""),
	}, nil
}

func mapSeatAvailability(doc any) (domain.SeatAvailability, error) {
	items, err := list(doc, "$.Availability")
	if err != nil {
		return domain.SeatAvailability{}, noData("checkseatavailability", "Availability", err)
	}

	out := domain.SeatAvailability{Entries: make([]domain.AvailabilityEntry, 0, len(items))}
	for _, it := range items {
		out.Entries = append(out.Entries, domain.AvailabilityEntry{
			Date:   optional(it, "$.Date", ""),
			Status: optional(it, "$.Status", ""),
		})
	}
	return out, nil
}

func mapFare(doc any) (domain.Fare, error) {
	amount, err := required(doc, "$.Fare")
	if err != nil {
		return domain.Fare{}, noData("trainfare", "Fare", err)
	}
	return domain.Fare{
		Amount:   amount,
		Currency: optional(doc, "$.Currency", "INR"),
	}, nil
}

func mapCoachLayout(doc any) (domain.CoachLayout, error) {
	ct, err := required(doc, "$.CoachType")
	if err != nil {
		return domain.CoachLayout{}, noData("coachlayout", "CoachType", err)
	}
	return domain.CoachLayout{
		CoachType: ct,
		Features:  optional(doc, "$.Features", "N/A"),
	}, nil
}

func mapCoachPosition(doc any) (domain.CoachPosition, error) {
	text, err := required(doc, "$.CoachPosition")
	if err != nil {
		return domain.CoachPosition{}, noData("coachposition", "CoachPosition", err)
	}
	return domain.CoachPosition{Text: text}, nil
}

func list(doc any, expr string) ([]any, error) {
	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return nil, err
	}
	arr, ok := val.([]any)
	if !ok {
		return nil, fmt.Errorf("%s is not a list", expr)
	}
	return arr, nil
}

func required(doc any, expr string) (string, error) {
	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return "", err
	}
	if isEmptyValue(val) {
		return "", fmt.Errorf("%s: no value found", expr)
	}
	return toString(val)
}

func optional(doc any, expr, def string) string {
	s, err := required(doc, expr)
	if err != nil {
		return def
	}
	return s
}

// present returns def only when expr is absent. A null or blank value yields "".
func present(doc any, expr, def string) string {
	val, err := jsonpath.Get(expr, doc)
	if err != nil {
		return def
	}
	if val == nil {
		return ""
	}
	s, err := toString(val)
	if err != nil {
		return ""
	}
	return s
}

func isEmptyValue(v any) bool {
	if v == nil {
		return true
	}
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t) == ""
	case []any:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	default:
		return false
	}
}

func toString(v any) (string, error) {
	switch t := v.(type) {
	case string:
		return strings.TrimSpace(t), nil
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(t), nil
	case []any, map[string]any:
		b, err := json.Marshal(t)
		if err != nil {
			return "", err
		}
		return string(b), nil
	default:
		return fmt.Sprint(t), nil
	}
}

func noData(api, field string, cause error) error {
	return &domain.OpError{
		Op:   "railapi." + api,
		Kind: domain.KindNoData,
		Err:  fmt.Errorf("field %s: %v: %w", field, cause, domain.ErrNoData),
	}
}
