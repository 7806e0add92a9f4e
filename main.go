package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/lukehollenback/ionomy/cmd"
)

func main() {
	//
	// Register a kill signal handler with the operating system so that an in-flight request is
	// abandoned (rather than the process being killed mid-write) if we are interrupted.
	//
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	//
	// Run the requested command. Errors have already been printed by the time they get here.
	//
	err := cmd.Execute(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}
