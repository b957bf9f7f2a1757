package report

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/aalvaropc/railinfo/internal/domain"
	"github.com/aalvaropc/railinfo/internal/usecase"
)

var scheduleHeaders = []string{"S.No", "Station Code", "Station Name", "Arrival", "Departure", "Distance (km)"}

func (r *Reporter) writeTrain(b *strings.Builder, res usecase.TrainResult) {
	r.writeSchedule(b, res.Train, res.Schedule)
	r.writeAverageSpeed(b, res.AverageSpeed)
	if res.LiveDate != "" {
		r.writeLive(b, res.Live)
	}
}

func (r *Reporter) writeSchedule(b *strings.Builder, train domain.TrainNumber, s domain.Schedule) {
	r.title(b, "Train Schedule for Train No: "+train.String())

	rows := make([][]string, 0, len(s.Route))
	for _, st := range s.Route {
		rows = append(rows, []string{st.SerialNo, st.StationCode, st.StationName, st.ArrivalTime, st.DepartureTime, st.Distance})
	}
	b.WriteString(r.table(scheduleHeaders, rows))
	b.WriteByte('\n')
}

func (r *Reporter) writeAverageSpeed(b *strings.Builder, s usecase.Section[float64]) {
	b.WriteByte('\n')
	if !s.OK() {
		b.WriteString("Failed to calculate average speed: " + UserMessage(s.Err) + "\n")
		return
	}
	b.WriteString(r.theme.Label.Render("Average Speed (approx):") + " " + formatSpeed(*s.Value) + " km/h\n")
}

func (r *Reporter) writeLive(b *strings.Builder, s usecase.Section[domain.LiveStatus]) {
	r.title(b, "Live Train Status:")
	if !s.OK() {
		r.missing(b, "No live status available.", s.Err)
		return
	}
	ls := s.Value
	r.field(b, "Current Position:", ls.TrainPosition)
	if ls.Position != "" {
		r.field(b, "Position:", ls.Position)
	}
	if ls.Delay != "" {
		r.field(b, "Delay:", ls.Delay+" minutes")
	}
}

func (r *Reporter) writeJourney(b *strings.Builder, res usecase.JourneyResult) {
	r.writeSeats(b, res.Seats)
	r.writeFare(b, res.Fare)
}

func (r *Reporter) writeSeats(b *strings.Builder, s usecase.Section[domain.SeatAvailability]) {
	r.title(b, "Seat Availability:")
	if !s.OK() {
		r.missing(b, "No seat availability data found.", s.Err)
		return
	}
	rows := make([][]string, 0, len(s.Value.Entries))
	for _, e := range s.Value.Entries {
		rows = append(rows, []string{e.Date, e.Status})
	}
	b.WriteString(r.table([]string{"Date", "Status"}, rows))
	b.WriteByte('\n')
}

func (r *Reporter) writeFare(b *strings.Builder, s usecase.Section[domain.Fare]) {
	r.title(b, "Fare Details:")
	if !s.OK() {
		r.missing(b, "No fare data found.", s.Err)
		return
	}
	r.field(b, "Fare:", "₹"+s.Value.Amount)
	r.field(b, "Currency:", s.Value.Currency)
}

func (r *Reporter) writeCoach(b *strings.Builder, res usecase.CoachResult) {
	r.title(b, "Coach Layout:")
	if !res.Layout.OK() {
		r.missing(b, "No coach layout data found.", res.Layout.Err)
	} else {
		r.field(b, "Coach Type:", res.Layout.Value.CoachType)
		r.field(b, "Features:", res.Layout.Value.Features)
	}

	r.title(b, "Coach Position Info:")
	if !res.Position.OK() || strings.TrimSpace(res.Position.Value.Text) == "" {
		r.missing(b, "No position data available.", res.Position.Err)
		return
	}
	b.WriteString(res.Position.Value.Text + "\n")
}

func (r *Reporter) writeStationMap(b *strings.Builder, code string) {
	b.WriteByte('\n')
	b.WriteString(r.theme.Label.Render("Station Location on Map:") + " " + domain.StationMapURL(code) + "\n")
}

func (r *Reporter) title(b *strings.Builder, s string) {
	b.WriteByte('\n')
	b.WriteString(r.theme.Title.Render(s))
	b.WriteByte('\n')
}

func (r *Reporter) field(b *strings.Builder, label, value string) {
	b.WriteString(r.theme.Label.Render(label) + " " + value + "\n")
}

// missing writes the placeholder line and, when known, why the data is absent.
func (r *Reporter) missing(b *strings.Builder, placeholder string, err error) {
	b.WriteString(placeholder + "\n")
	if err != nil {
		b.WriteString(r.theme.Muted.Render("  "+UserMessage(err)) + "\n")
	}
}

func (r *Reporter) table(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.theme.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == 0 {
				return r.theme.Header
			}
			return r.theme.Cell
		})
	return t.String()
}

func formatSpeed(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
