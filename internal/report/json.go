package report

import (
	"encoding/json"
	"io"

	"github.com/aalvaropc/railinfo/internal/domain"
	"github.com/aalvaropc/railinfo/internal/usecase"
)

type section[T any] struct {
	Value   *T     `json:"value,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

func sectionOf[T any](s usecase.Section[T]) section[T] {
	out := section[T]{Value: s.Value}
	if s.Err != nil {
		out.Error = string(domain.KindOf(s.Err))
		if out.Error == "" {
			out.Error = "unknown"
		}
		out.Message = UserMessage(s.Err)
	}
	return out
}

func ptr[T any](v T) *T { return &v }

type trainDoc struct {
	Train        string                      `json:"train"`
	Route        []domain.Stop               `json:"route"`
	AverageSpeed section[float64]            `json:"average_speed"`
	LiveDate     string                      `json:"live_date,omitempty"`
	Live         *section[domain.LiveStatus] `json:"live,omitempty"`
}

type liveDoc struct {
	Train string                     `json:"train"`
	Date  string                     `json:"date"`
	Live  section[domain.LiveStatus] `json:"live"`
}

type queryDoc struct {
	Train string `json:"train"`
	From  string `json:"from"`
	To    string `json:"to"`
	Date  string `json:"date"`
	Class string `json:"class"`
	Quota string `json:"quota"`
}

type journeyDoc struct {
	Query queryDoc                          `json:"query"`
	Seats *section[domain.SeatAvailability] `json:"seats,omitempty"`
	Fare  *section[domain.Fare]             `json:"fare,omitempty"`
}

type coachDoc struct {
	Train    string                        `json:"train"`
	Coach    string                        `json:"coach"`
	Date     string                        `json:"date"`
	Layout   section[domain.CoachLayout]   `json:"layout"`
	Position section[domain.CoachPosition] `json:"position"`
}

type stationDoc struct {
	Code   string `json:"code"`
	MapURL string `json:"map_url"`
}

type infoDoc struct {
	Train    trainDoc     `json:"train"`
	Journey  *journeyDoc  `json:"journey,omitempty"`
	Coach    *coachDoc    `json:"coach,omitempty"`
	Stations []stationDoc `json:"stations,omitempty"`
}

func trainJSON(res usecase.TrainResult) trainDoc {
	route := res.Schedule.Route
	if route == nil {
		route = []domain.Stop{}
	}
	d := trainDoc{
		Train:        res.Train.String(),
		Route:        route,
		AverageSpeed: sectionOf(res.AverageSpeed),
	}
	if res.LiveDate != "" {
		d.LiveDate = res.LiveDate
		d.Live = ptr(sectionOf(res.Live))
	}
	return d
}

func queryOf(q domain.JourneyQuery) queryDoc {
	return queryDoc{
		Train: q.Train.String(),
		From:  q.From,
		To:    q.To,
		Date:  q.Date,
		Class: q.Class,
		Quota: q.Quota,
	}
}

func journeyJSON(res usecase.JourneyResult) journeyDoc {
	return journeyDoc{
		Query: queryOf(res.Query),
		Seats: ptr(sectionOf(res.Seats)),
		Fare:  ptr(sectionOf(res.Fare)),
	}
}

func coachJSON(res usecase.CoachResult) coachDoc {
	return coachDoc{
		Train:    res.Train.String(),
		Coach:    res.Coach,
		Date:     res.Date,
		Layout:   sectionOf(res.Layout),
		Position: sectionOf(res.Position),
	}
}

func stationOf(code string) stationDoc {
	c := domain.NormalizeCode(code)
	return stationDoc{Code: c, MapURL: domain.StationMapURL(c)}
}

func infoJSON(res usecase.InfoResult) infoDoc {
	d := infoDoc{Train: trainJSON(res.Train)}
	if res.Journey != nil {
		d.Journey = ptr(journeyJSON(*res.Journey))
	}
	if res.Coach != nil {
		d.Coach = ptr(coachJSON(*res.Coach))
	}
	for _, code := range res.Stations {
		d.Stations = append(d.Stations, stationOf(code))
	}
	return d
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
