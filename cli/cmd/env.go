package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/ardnew/debugme/debugme"
	"github.com/ardnew/debugme/pkg"
)

// Env prints the reporting switch and its current state.
type Env struct{}

// Run executes the env command.
func (Env) Run(ctx context.Context) error {
	value, set := os.LookupEnv(pkg.EnvEnable)
	if !set {
		value = "(unset)"
	}

	_, err := fmt.Fprintf(outputFrom(ctx), "%s=%s\nenabled=%t\n",
		pkg.EnvEnable, value, debugme.Enabled())

	return err
}
