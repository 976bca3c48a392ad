package main

import (
	"context"
	"fmt"
)

// run dispatches the top-level command.
func run(ctx context.Context, args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stderr)
		return ErrNoInput
	}

	switch args[0] {
	case "render":
		flags, positional, err := parseRenderFlags(args[1:])
		if err != nil {
			return err
		}
		env.applyVerbosity(flags.common)
		return runRender(ctx, positional, flags, env)
	case "version":
		fmt.Fprintln(env.Stdout, Version)
		return nil
	case "help":
		runHelp(args[1:], env)
		return nil
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
}
