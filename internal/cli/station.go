package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/railinfo/internal/domain"
	"github.com/aalvaropc/railinfo/internal/infra/logger"
)

func mapCmd(st *state) *cobra.Command {
	var open bool

	c := &cobra.Command{
		Use:   "map <station>",
		Short: "Print a map link for a railway station",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := domain.NormalizeCode(args[0])
			if code == "" {
				return &domain.OpError{
					Op:   "cli.map",
					Kind: domain.KindInvalidArgument,
					Err:  fmt.Errorf("station code is required: %w", domain.ErrInvalidArgument),
				}
			}

			rep, err := st.reporter(cmd.OutOrStdout())
			if err != nil {
				return err
			}
			if err := rep.StationMap(code); err != nil {
				return err
			}

			if open {
				u := domain.StationMapURL(code)
				if err := st.browser.Open(u); err != nil {
					logger.L().Warn("browser.open.failed", "url", u, "err", err)
					fmt.Fprintln(cmd.ErrOrStderr(), "Could not open a browser: "+err.Error())
				}
			}
			return nil
		},
	}

	c.Flags().BoolVar(&open, "open", false, "Open the location in the default browser")
	return c
}
