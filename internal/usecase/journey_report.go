package usecase

import (
	"context"

	"github.com/aalvaropc/railinfo/internal/domain"
	"github.com/aalvaropc/railinfo/internal/ports"
)

type JourneyResult struct {
	Query domain.JourneyQuery
	Seats Section[domain.SeatAvailability]
	Fare  Section[domain.Fare]
}

type JourneyReport struct {
	rail ports.RailInfo
	opts options
}

func NewJourneyReport(rail ports.RailInfo, opts ...Option) *JourneyReport {
	return &JourneyReport{rail: rail, opts: newOptions(opts)}
}

// Execute looks up seat availability and fare. Only an invalid query is an error;
// lookup failures are kept in their sections.
func (uc *JourneyReport) Execute(ctx context.Context, q domain.JourneyQuery) (JourneyResult, error) {
	q = q.Normalize()
	res := JourneyResult{Query: q}

	if err := q.Validate(); err != nil {
		return res, err
	}

	res.Seats = uc.Seats(ctx, q)
	res.Fare = uc.Fare(ctx, q)
	return res, nil
}

// Seats looks up availability for an already validated query.
func (uc *JourneyReport) Seats(ctx context.Context, q domain.JourneyQuery) Section[domain.SeatAvailability] {
	s := sectionOf(uc.rail.SeatAvailability(ctx, q))
	logFailure(uc.opts.log, "seat_availability", s.Err)
	return s
}

func (uc *JourneyReport) Fare(ctx context.Context, q domain.JourneyQuery) Section[domain.Fare] {
	s := sectionOf(uc.rail.Fare(ctx, q))
	logFailure(uc.opts.log, "fare", s.Err)
	return s
}
