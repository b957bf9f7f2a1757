package usecase

import (
	"context"

	"github.com/aalvaropc/railinfo/internal/domain"
	"github.com/aalvaropc/railinfo/internal/ports"
)

// InfoRequest describes a full lookup: the train, an optional journey and an optional coach.
type InfoRequest struct {
	Train   domain.TrainNumber
	Journey *domain.JourneyQuery
	Coach   string
	// CoachDate defaults to the journey date, then to today.
	CoachDate string
}

type InfoResult struct {
	Train   TrainResult
	Journey *JourneyResult
	Coach   *CoachResult
	// Stations lists the source and destination codes for map links.
	Stations []string
}

// InfoReport runs the train, journey and coach reports in sequence.
type InfoReport struct {
	train   *TrainReport
	journey *JourneyReport
	coach   *CoachReport
}

func NewInfoReport(rail ports.RailInfo, opts ...Option) *InfoReport {
	return &InfoReport{
		train:   NewTrainReport(rail, opts...),
		journey: NewJourneyReport(rail, opts...),
		coach:   NewCoachReport(rail, opts...),
	}
}

func (uc *InfoReport) Execute(ctx context.Context, req InfoRequest) (InfoResult, error) {
	var out InfoResult

	tr, err := uc.train.Execute(ctx, req.Train)
	out.Train = tr
	if err != nil {
		return out, err
	}

	if req.Journey != nil {
		q := *req.Journey
		q.Train = req.Train
		jr, err := uc.journey.Execute(ctx, q)
		if err != nil {
			return out, err
		}
		out.Journey = &jr
		out.Stations = []string{jr.Query.From, jr.Query.To}
	}

	if domain.NormalizeCode(req.Coach) != "" {
		date := req.CoachDate
		if date == "" && out.Journey != nil {
			date = out.Journey.Query.Date
		}
		cr, err := uc.coach.Execute(ctx, req.Train, req.Coach, date)
		if err != nil {
			return out, err
		}
		out.Coach = &cr
	}

	return out, nil
}
