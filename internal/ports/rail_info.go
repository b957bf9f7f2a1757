package ports

import (
	"context"

	"github.com/aalvaropc/railinfo/internal/domain"
)

// RailInfo queries train data from a railway-information source.
type RailInfo interface {
	Schedule(ctx context.Context, train domain.TrainNumber) (domain.Schedule, error)
	LiveStatus(ctx context.Context, train domain.TrainNumber, date string) (domain.LiveStatus, error)
	SeatAvailability(ctx context.Context, q domain.JourneyQuery) (domain.SeatAvailability, error)
	Fare(ctx context.Context, q domain.JourneyQuery) (domain.Fare, error)
	CoachLayout(ctx context.Context, train domain.TrainNumber, coach string) (domain.CoachLayout, error)
	CoachPosition(ctx context.Context, train domain.TrainNumber, coach, date string) (domain.CoachPosition, error)
}
