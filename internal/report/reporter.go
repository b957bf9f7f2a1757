package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/aalvaropc/railinfo/internal/domain"
	"github.com/aalvaropc/railinfo/internal/usecase"
)

const (
	FormatPretty = "pretty"
	FormatJSON   = "json"
)

// Reporter renders lookup results either as tables or as a JSON document.
type Reporter struct {
	w      io.Writer
	format string
	theme  Theme
}

type Option func(*Reporter)

func WithTheme(t Theme) Option {
	return func(r *Reporter) { r.theme = t }
}

// New returns a Reporter writing to w. An empty format means pretty.
func New(w io.Writer, format string, opts ...Option) (*Reporter, error) {
	f := strings.ToLower(strings.TrimSpace(format))
	switch f {
	case "":
		f = FormatPretty
	case FormatPretty, FormatJSON:
	default:
		return nil, &domain.OpError{
			Op:   "report.new",
			Kind: domain.KindInvalidArgument,
			Err:  fmt.Errorf("unsupported format %q (expected pretty|json): %w", format, domain.ErrInvalidArgument),
		}
	}

	r := &Reporter{w: w, format: f, theme: DefaultTheme()}
	for _, opt := range opts {
		opt(r)
	}
	return r, nil
}

func (r *Reporter) Format() string { return r.format }

// Info renders the complete report: train, journey, coach and station links.
func (r *Reporter) Info(res usecase.InfoResult) error {
	if r.format == FormatJSON {
		return writeJSON(r.w, infoJSON(res))
	}

	var b strings.Builder
	r.writeTrain(&b, res.Train)
	if res.Journey != nil {
		r.writeJourney(&b, *res.Journey)
	}
	if res.Coach != nil {
		r.writeCoach(&b, *res.Coach)
	}
	for _, code := range res.Stations {
		r.writeStationMap(&b, code)
	}
	return r.flush(&b)
}

// Train renders the schedule, average speed and, when it was looked up, the live status.
func (r *Reporter) Train(res usecase.TrainResult) error {
	if r.format == FormatJSON {
		return writeJSON(r.w, trainJSON(res))
	}
	var b strings.Builder
	r.writeTrain(&b, res)
	return r.flush(&b)
}

func (r *Reporter) Live(train domain.TrainNumber, date string, s usecase.Section[domain.LiveStatus]) error {
	if r.format == FormatJSON {
		return writeJSON(r.w, liveDoc{Train: train.String(), Date: date, Live: sectionOf(s)})
	}
	var b strings.Builder
	r.writeLive(&b, s)
	return r.flush(&b)
}

func (r *Reporter) Journey(res usecase.JourneyResult) error {
	if r.format == FormatJSON {
		return writeJSON(r.w, journeyJSON(res))
	}
	var b strings.Builder
	r.writeJourney(&b, res)
	return r.flush(&b)
}

func (r *Reporter) Seats(q domain.JourneyQuery, s usecase.Section[domain.SeatAvailability]) error {
	if r.format == FormatJSON {
		return writeJSON(r.w, journeyDoc{Query: queryOf(q), Seats: ptr(sectionOf(s))})
	}
	var b strings.Builder
	r.writeSeats(&b, s)
	return r.flush(&b)
}

func (r *Reporter) Fare(q domain.JourneyQuery, s usecase.Section[domain.Fare]) error {
	if r.format == FormatJSON {
		return writeJSON(r.w, journeyDoc{Query: queryOf(q), Fare: ptr(sectionOf(s))})
	}
	var b strings.Builder
	r.writeFare(&b, s)
	return r.flush(&b)
}

func (r *Reporter) Coach(res usecase.CoachResult) error {
	if r.format == FormatJSON {
		return writeJSON(r.w, coachJSON(res))
	}
	var b strings.Builder
	r.writeCoach(&b, res)
	return r.flush(&b)
}

func (r *Reporter) StationMap(code string) error {
	if r.format == FormatJSON {
		return writeJSON(r.w, stationOf(code))
	}
	var b strings.Builder
	r.writeStationMap(&b, code)
	return r.flush(&b)
}

func (r *Reporter) flush(b *strings.Builder) error {
	out := strings.TrimLeft(b.String(), "\n")
	_, err := io.WriteString(r.w, out)
	return err
}
