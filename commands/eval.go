package commands

import (
	"context"
	"fmt"
	"strings"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"sassval/css"
	"sassval/state"
	"sassval/value"
)

// Eval applies single SassScript operator to literals from command line:
// either LEFT OP RIGHT or OP OPERAND.
func Eval(ctx context.Context, cmd *cli.Command) error {
	env := state.EnvFromContext(ctx)

	p, err := newPrinter(cmd.Root().Writer, outputFromFlags(cmd, env.Cfg.Output))
	if err != nil {
		return err
	}

	args := cmd.Args().Slice()
	v, err := evaluate(env.Reader(), args)
	if err != nil {
		return err
	}
	env.Log.Debug("Evaluated", zap.Strings("args", args), zap.Stringer("result", v))
	return p.print(strings.Join(args, " "), v)
}

func evaluate(r *css.Reader, args []string) (value.Value, error) {
	switch len(args) {
	case 2:
		op, ok := value.ParseUnaryOperator(args[0])
		if !ok {
			return nil, fmt.Errorf("unknown unary operator %q", args[0])
		}
		operand, err := r.Read(args[1])
		if err != nil {
			return nil, fmt.Errorf("operand: %w", err)
		}
		return value.ApplyUnary(op, operand)
	case 3:
		op, ok := value.ParseBinaryOperator(args[1])
		if !ok {
			return nil, fmt.Errorf("unknown operator %q", args[1])
		}
		left, err := r.Read(args[0])
		if err != nil {
			return nil, fmt.Errorf("left operand: %w", err)
		}
		right, err := r.Read(args[2])
		if err != nil {
			return nil, fmt.Errorf("right operand: %w", err)
		}
		return value.Apply(op, left, right)
	default:
		return nil, fmt.Errorf("expected LEFT OP RIGHT or OP OPERAND, got %d argument(s)", len(args))
	}
}
