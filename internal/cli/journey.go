package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/railinfo/internal/domain"
	"github.com/aalvaropc/railinfo/internal/usecase"
)

type journeyFlags struct {
	from, to, date, class, quota string
}

func (f *journeyFlags) bind(c *cobra.Command, withQuota bool) {
	c.Flags().StringVar(&f.from, "from", "", "Source station code (e.g. NDLS)")
	c.Flags().StringVar(&f.to, "to", "", "Destination station code (e.g. BCT)")
	c.Flags().StringVar(&f.date, "date", "", "Journey date DD-MM-YYYY (default: today)")
	c.Flags().StringVar(&f.class, "class", "", "Class code (e.g. SL, 3A, 2A, CC)")
	if withQuota {
		c.Flags().StringVar(&f.quota, "quota", "", "Booking quota (default from config, GN)")
	}
	_ = c.MarkFlagRequired("from")
	_ = c.MarkFlagRequired("to")
	_ = c.MarkFlagRequired("class")
}

// query builds a normalized, validated journey query for train.
func (f *journeyFlags) query(st *state, arg string) (domain.JourneyQuery, error) {
	train, err := domain.ParseTrainNumber(arg)
	if err != nil {
		return domain.JourneyQuery{}, err
	}
	date := f.date
	if strings.TrimSpace(date) == "" {
		date = domain.FormatDate(st.now())
	}
	q := domain.JourneyQuery{
		Train: train,
		From:  f.from,
		To:    f.to,
		Date:  date,
		Class: f.class,
		Quota: st.quota(f.quota),
	}.Normalize()
	return q, q.Validate()
}

func seatsCmd(st *state) *cobra.Command {
	var jf journeyFlags

	c := &cobra.Command{
		Use:   "seats <train>",
		Short: "Check seat availability between two stations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := jf.query(st, args[0])
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

			uc := usecase.NewJourneyReport(client, st.usecaseOptions()...)
			return rep.Seats(q, uc.Seats(cmd.Context(), q))
		},
	}

	jf.bind(c, false)
	return c
}

func fareCmd(st *state) *cobra.Command {
	var jf journeyFlags

	c := &cobra.Command{
		Use:   "fare <train>",
		Short: "Show the fare between two stations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			q, err := jf.query(st, args[0])
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

			uc := usecase.NewJourneyReport(client, st.usecaseOptions()...)
			return rep.Fare(q, uc.Fare(cmd.Context(), q))
		},
	}

	jf.bind(c, true)
	return c
}
