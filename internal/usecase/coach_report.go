package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/aalvaropc/railinfo/internal/domain"
	"github.com/aalvaropc/railinfo/internal/ports"
)

type CoachResult struct {
	Train    domain.TrainNumber
	Coach    string
	Date     string
	Layout   Section[domain.CoachLayout]
	Position Section[domain.CoachPosition]
}

type CoachReport struct {
	rail ports.RailInfo
	opts options
}

func NewCoachReport(rail ports.RailInfo, opts ...Option) *CoachReport {
	return &CoachReport{rail: rail, opts: newOptions(opts)}
}

// Execute looks up the coach layout and its position on date (today when empty).
func (uc *CoachReport) Execute(ctx context.Context, train domain.TrainNumber, coach, date string) (CoachResult, error) {
	res := CoachResult{Train: train, Coach: domain.NormalizeCode(coach)}

	if res.Coach == "" {
		return res, &domain.OpError{
			Op:   "usecase.coach",
			Kind: domain.KindInvalidArgument,
			Err:  fmt.Errorf("coach number is required: %w", domain.ErrInvalidArgument),
		}
	}

	if strings.TrimSpace(date) == "" {
		res.Date = domain.FormatDate(uc.opts.now())
	} else {
		d, err := domain.ParseDate(date)
		if err != nil {
			return res, err
		}
		res.Date = d
	}

	res.Layout = sectionOf(uc.rail.CoachLayout(ctx, train, res.Coach))
	logFailure(uc.opts.log, "coach_layout", res.Layout.Err)

	res.Position = sectionOf(uc.rail.CoachPosition(ctx, train, res.Coach, res.Date))
	logFailure(uc.opts.log, "coach_position", res.Position.Err)

	return res, nil
}
