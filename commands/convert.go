package commands

import (
	"context"
	"errors"
	"strings"

	cli "github.com/urfave/cli/v3"

	"sassval/css"
	"sassval/state"
	"sassval/value"
)

// Convert coerces a number to units given on command line. Units prefixed
// with "/" go to denominator.
func Convert(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	p, err := newPrinter(cmd.Root().Writer, outputFromFlags(cmd, env.Cfg.Output))
	if err != nil {
		return err
	}

	args := cmd.Args().Slice()
	if len(args) == 0 {
		return errors.New("nothing to convert")
	}
	n, err := convert(env.Reader(), args[0], args[1:])
	if err != nil {
		return err
	}
	return p.print(strings.Join(args, " "), n)
}

func convert(r *css.Reader, literal string, units []string) (*value.Number, error) {
	v, err := r.Read(literal)
	if err != nil {
		return nil, err
	}
	n, err := value.AssertNumber(v, "")
	if err != nil {
		return nil, err
	}

	var numerators, denominators []string
	for _, u := range units {
		if d, ok := strings.CutPrefix(u, "/"); ok {
			denominators = append(denominators, d)
			continue
		}
		numerators = append(numerators, u)
	}
	return n.Coerce(numerators, denominators, "")
}
