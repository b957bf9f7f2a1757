package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/railinfo/internal/domain"
	"github.com/aalvaropc/railinfo/internal/usecase"
)

func scheduleCmd(st *state) *cobra.Command {
	return &cobra.Command{
		Use:   "schedule <train>",
		Short: "Show a train's route and approximate average speed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			train, err := domain.ParseTrainNumber(args[0])
			if err != nil {
				return err
			}
			rep, err := st.reporter(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			client, err := st.railClient()
			if err != nil {
				return err
			}

			res, err := usecase.NewTrainReport(client, st.usecaseOptions()...).Schedule(cmd.Context(), train)
			if err != nil {
				return err
			}
			return rep.Train(res)
		},
	}
}

func liveCmd(st *state) *cobra.Command {
	var date string

	c := &cobra.Command{
		Use:   "live <train>",
		Short: "Show where a train is running",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			train, err := domain.ParseTrainNumber(args[0])
			if err != nil {
				return err
			}
			rep, err := st.reporter(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			client, err := st.railClient()
			if err != nil {
				return err
			}

			uc := usecase.NewTrainReport(client, st.usecaseOptions()...)
			d := uc.Today()
			if strings.TrimSpace(date) != "" {
				if d, err = domain.ParseDate(date); err != nil {
					return err
				}
			}
			return rep.Live(train, d, uc.Live(cmd.Context(), train, d))
		},
	}

	c.Flags().StringVar(&date, "date", "", "Running date DD-MM-YYYY (default: today)")
	return c
}

func infoCmd(st *state) *cobra.Command {
	var (
		from, to, date, class, quota string
		coach, coachDate             string
	)

	c := &cobra.Command{
		Use:   "info <train>",
		Short: "Run every lookup for a train: schedule, live status, seats, fare and coach",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			train, err := domain.ParseTrainNumber(args[0])
			if err != nil {
				return err
			}
			rep, err := st.reporter(cmd.OutOrStdout())
			if err != nil {
				return err
			}

			req := usecase.InfoRequest{Train: train, Coach: coach, CoachDate: coachDate}
			if strings.TrimSpace(from+to+class) != "" {
				d := date
				if strings.TrimSpace(d) == "" {
					d = domain.FormatDate(st.now())
				}
				req.Journey = &domain.JourneyQuery{
					Train: train,
					From:  from,
					To:    to,
					Date:  d,
					Class: class,
					Quota: st.quota(quota),
				}
				// Reject bad input before any request goes out.
				if err := req.Journey.Normalize().Validate(); err != nil {
					return err
				}
			} else if strings.TrimSpace(date) != "" {
				// Without a journey the date only applies to the coach position.
				if domain.NormalizeCode(coach) == "" {
					return &domain.OpError{
						Op:   "cli.info",
						Kind: domain.KindInvalidArgument,
						Err:  fmt.Errorf("--date needs --from, --to and --class, or --coach: %w", domain.ErrInvalidArgument),
					}
				}
				if strings.TrimSpace(req.CoachDate) == "" {
					if req.CoachDate, err = domain.ParseDate(date); err != nil {
						return err
					}
				}
			}

			client, err := st.railClient()
			if err != nil {
				return err
			}

			res, err := usecase.NewInfoReport(client, st.usecaseOptions()...).Execute(cmd.Context(), req)
			if err != nil {
				return err
			}
			return rep.Info(res)
		},
	}

	f := c.Flags()
	f.StringVar(&from, "from", "", "Source station code (e.g. NDLS)")
	f.StringVar(&to, "to", "", "Destination station code (e.g. BCT)")
	f.StringVar(&date, "date", "", "Journey date DD-MM-YYYY (default: today)")
	f.StringVar(&class, "class", "", "Class code (e.g. SL, 3A, 2A, CC)")
	f.StringVar(&quota, "quota", "", "Booking quota (default from config, GN)")
	f.StringVar(&coach, "coach", "", "Coach number for layout and position (e.g. B1)")
	f.StringVar(&coachDate, "coach-date", "", "Date for the coach position (default: journey date, then today)")
	return c
}
