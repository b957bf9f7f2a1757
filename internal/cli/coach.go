package cli

import (
	"github.com/spf13/cobra"

	"github.com/aalvaropc/railinfo/internal/domain"
	"github.com/aalvaropc/railinfo/internal/usecase"
)

func coachCmd(st *state) *cobra.Command {
	var coach, date string

	c := &cobra.Command{
		Use:   "coach <train>",
		Short: "Show a coach's layout and its position in the train",
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

			res, err := usecase.NewCoachReport(client, st.usecaseOptions()...).Execute(cmd.Context(), train, coach, date)
			if err != nil {
				return err
			}
			return rep.Coach(res)
		},
	}

	c.Flags().StringVar(&coach, "coach", "", "Coach number (e.g. B1, S2)")
	c.Flags().StringVar(&date, "date", "", "Train date DD-MM-YYYY (default: today)")
	_ = c.MarkFlagRequired("coach")
	return c
}
