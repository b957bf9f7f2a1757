package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/railinfo/internal/buildinfo"
	"github.com/aalvaropc/railinfo/internal/domain"
	"github.com/aalvaropc/railinfo/internal/infra/logger"
	"github.com/aalvaropc/railinfo/internal/report"
	"github.com/aalvaropc/railinfo/internal/ui/tui"
	"github.com/aalvaropc/railinfo/internal/usecase"
)

func Execute() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	return execute(newState(), args, stdout, stderr)
}

func execute(st *state, args []string, stdout, stderr io.Writer) error {
	cmd := newRootCmd(st)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	st.close()
	if err != nil {
		fmt.Fprintln(stderr, "Error: "+errorText(err))
	}
	return err
}

func newRootCmd(st *state) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "railinfo",
		Short:         "Indian Railways train information from the terminal",
		Long:          "railinfo looks up train schedules, live status, seat availability, fares and coach details.\nRun without arguments for the interactive wizard.",
		Version:       buildinfo.String("railinfo"),
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return st.setup(cmd)
		},
		RunE: func(_ *cobra.Command, _ []string) error {
			client, err := st.railClient()
			if err != nil {
				return err
			}

			deps := tui.Deps{
				Info:    usecase.NewInfoReport(client, st.usecaseOptions()...),
				Browser: st.browser,
				Timeout: 4 * st.timeout(),
				Now:     st.now,
				Logger:  logger.L(),
				LogPath: logger.Path(),
				Debug:   st.flags.debug,
			}
			return tui.Run(deps)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&st.flags.configPath, "config", "", "Path to railinfo.yaml (default: searched upward from the working directory)")
	pf.StringVar(&st.flags.apiKeyFile, "api-key-file", "", "Read the API key from this file")
	pf.BoolVar(&st.flags.debug, "debug", false, "Enable verbose logging to .railinfo/logs/railinfo.log")
	pf.StringVar(&st.flags.format, "format", "", "Output format: pretty|json (default from config)")
	pf.DurationVar(&st.flags.timeout, "timeout", 0, "Per-request timeout (default from config)")

	cmd.AddCommand(
		scheduleCmd(st),
		liveCmd(st),
		seatsCmd(st),
		fareCmd(st),
		coachCmd(st),
		infoCmd(st),
		mapCmd(st),
		initCmd(st),
		versionCmd(),
	)
	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		// Skips config loading and logging.
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), buildinfo.String("railinfo"))
		},
	}
}

// errorText prefers the user-facing message for classified errors.
func errorText(err error) string {
	var oe *domain.OpError
	if errors.As(err, &oe) {
		msg := report.UserMessage(err)
		if msg != report.MsgUnexpected {
			return msg
		}
	}
	return err.Error()
}

func defaultTimeout() time.Duration {
	return domain.DefaultConfig().API.Timeout
}
