package commands

import (
	"context"
	"errors"
	"fmt"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"sassval/config"
	"sassval/css"
	"sassval/state"
)

// outputFromFlags applies command line overrides to configured output.
func outputFromFlags(cmd *cli.Command, out config.OutputConfig) config.OutputConfig {
	if cmd.Bool("css") {
		out.Mode = "css"
	}
	if cmd.IsSet("tree") {
		out.Tree = cmd.Bool("tree")
	}
	return out
}

// Inspect reads every literal from command line and prints it.
func Inspect(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	if cmd.Args().Len() == 0 {
		return errors.New("no literals to inspect")
	}

	p, err := newPrinter(cmd.Root().Writer, outputFromFlags(cmd, env.Cfg.Output))
	if err != nil {
		return err
	}
	return inspect(env.Reader(), p, env.Log, cmd.Args().Slice())
}

// inspect keeps going after a bad literal, all failures are returned together.
func inspect(r *css.Reader, p *printer, log *zap.Logger, literals []string) (err error) {
	for i, text := range literals {
		v, er := r.Read(text)
		if er == nil {
			er = p.print(text, v)
		}
		if er != nil {
			log.Debug("Unable to inspect literal", zap.Int("index", i+1), zap.String("literal", text), zap.Error(er))
			err = multierr.Append(err, fmt.Errorf("literal %d (%q): %w", i+1, text, er))
		}
	}
	return err
}
