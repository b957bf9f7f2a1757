package usecase

import (
	"context"
	"sync"

	"github.com/aalvaropc/railinfo/internal/domain"
	"github.com/aalvaropc/railinfo/internal/ports"
)

type fakeRail struct {
	mu    sync.Mutex
	calls []string

	schedule    domain.Schedule
	scheduleErr error

	live     domain.LiveStatus
	liveErr  error
	liveDate string

	seats    domain.SeatAvailability
	seatsErr error
	seatsQ   domain.JourneyQuery

	fare    domain.Fare
	fareErr error

	layout    domain.CoachLayout
	layoutErr error

	position    domain.CoachPosition
	positionErr error
	positionAt  string
}

var _ ports.RailInfo = (*fakeRail)(nil)

func (f *fakeRail) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakeRail) Schedule(_ context.Context, train domain.TrainNumber) (domain.Schedule, error) {
	f.record("schedule")
	s := f.schedule
	s.TrainNumber = train
	return s, f.scheduleErr
}

func (f *fakeRail) LiveStatus(_ context.Context, _ domain.TrainNumber, date string) (domain.LiveStatus, error) {
	f.record("live")
	f.liveDate = date
	return f.live, f.liveErr
}

func (f *fakeRail) SeatAvailability(_ context.Context, q domain.JourneyQuery) (domain.SeatAvailability, error) {
	f.record("seats")
	f.seatsQ = q
	return f.seats, f.seatsErr
}

func (f *fakeRail) Fare(_ context.Context, _ domain.JourneyQuery) (domain.Fare, error) {
	f.record("fare")
	return f.fare, f.fareErr
}

func (f *fakeRail) CoachLayout(_ context.Context, _ domain.TrainNumber, _ string) (domain.CoachLayout, error) {
	f.record("layout")
	return f.layout, f.layoutErr
}

func (f *fakeRail) CoachPosition(_ context.Context, _ domain.TrainNumber, _ string, date string) (domain.CoachPosition, error) {
	f.record("position")
	f.positionAt = date
	return f.position, f.positionErr
}

func apiErr(op string) error {
	return &domain.OpError{Op: op, Kind: domain.KindAPI, Err: domain.ErrAPI}
}

func sampleSchedule() domain.Schedule {
	return domain.Schedule{
		Route: []domain.Stop{
			{SerialNo: "1", StationCode: "NDLS", ArrivalTime: "10:00:00", DepartureTime: "10:10:00", Distance: "0"},
			{SerialNo: "2", StationCode: "BCT", ArrivalTime: "15:50:00", DepartureTime: "16:00:00", Distance: "600"},
		},
	}
}
