package usecase

import (
	"context"

	"github.com/aalvaropc/railinfo/internal/domain"
	"github.com/aalvaropc/railinfo/internal/ports"
)

// TrainResult holds the schedule of a train plus the lookups derived from it.
type TrainResult struct {
	Train        domain.TrainNumber
	Schedule     domain.Schedule
	AverageSpeed Section[float64]
	LiveDate     string
	Live         Section[domain.LiveStatus]
}

type TrainReport struct {
	rail ports.RailInfo
	opts options
}

func NewTrainReport(rail ports.RailInfo, opts ...Option) *TrainReport {
	return &TrainReport{rail: rail, opts: newOptions(opts)}
}

// Execute fetches the schedule, which is mandatory, then the average speed and
// today's live status, which are not.
func (uc *TrainReport) Execute(ctx context.Context, train domain.TrainNumber) (TrainResult, error) {
	res, err := uc.Schedule(ctx, train)
	if err != nil {
		return res, err
	}

	res.LiveDate = uc.Today()
	res.Live = uc.Live(ctx, train, res.LiveDate)

	return res, nil
}

// Schedule fetches the route and derives the average speed. LiveDate stays empty.
func (uc *TrainReport) Schedule(ctx context.Context, train domain.TrainNumber) (TrainResult, error) {
	res := TrainResult{Train: train}

	sched, err := uc.rail.Schedule(ctx, train)
	if err != nil {
		logFailure(uc.opts.log, "schedule", err)
		return res, err
	}
	res.Schedule = sched

	res.AverageSpeed = sectionOf(domain.ScheduleAverageSpeed(sched))
	logFailure(uc.opts.log, "average_speed", res.AverageSpeed.Err)

	return res, nil
}

// Today is the current date in the API layout.
func (uc *TrainReport) Today() string {
	return domain.FormatDate(uc.opts.now())
}

// Live looks up the running status of train on date.
func (uc *TrainReport) Live(ctx context.Context, train domain.TrainNumber, date string) Section[domain.LiveStatus] {
	s := sectionOf(uc.rail.LiveStatus(ctx, train, date))
	logFailure(uc.opts.log, "live_status", s.Err)
	return s
}
