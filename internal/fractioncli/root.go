package fractioncli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/railinfo/internal/buildinfo"
	"github.com/aalvaropc/railinfo/internal/rational"
)

const (
	defaultX = "5/2"
	defaultY = "3/4"
)

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:          "fraction [x] [y]",
		Short:        "Add, subtract, multiply and divide two fractions",
		Args:         cobra.MaximumNArgs(2),
		Version:      buildinfo.String("fraction"),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, ys := defaultX, defaultY
			if len(args) > 0 {
				xs = args[0]
			}
			if len(args) > 1 {
				ys = args[1]
			}

			x, err := rational.Parse(xs)
			if err != nil {
				return err
			}
			y, err := rational.Parse(ys)
			if err != nil {
				return err
			}

			res, err := compute(x, y)
			if err != nil {
				return err
			}
			return printResults(cmd.OutOrStdout(), res, format)
		},
	}

	cmd.Flags().StringVar(&format, "format", "pretty", "Output format: pretty|json")
	return cmd
}

type results struct {
	X          rational.Rational `json:"x"`
	Y          rational.Rational `json:"y"`
	Sum        rational.Rational `json:"sum"`
	Difference rational.Rational `json:"difference"`
	Product    rational.Rational `json:"product"`
	Quotient   rational.Rational `json:"quotient"`
}

func compute(x, y rational.Rational) (results, error) {
	quo, err := x.Div(y)
	if err != nil {
		return results{}, fmt.Errorf("%s / %s: %w", x, y, err)
	}
	return results{
		X:          x,
		Y:          y,
		Sum:        x.Add(y),
		Difference: x.Sub(y),
		Product:    x.Mul(y),
		Quotient:   quo,
	}, nil
}

func printResults(w io.Writer, res results, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	case "pretty", "":
		fmt.Fprintln(w, res.Sum)
		fmt.Fprintln(w, res.Difference)
		fmt.Fprintln(w, res.Product)
		fmt.Fprintln(w, res.Quotient)
		return nil
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json)", format)
	}
}
