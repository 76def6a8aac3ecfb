package main

import (
	"os"
	"os/signal"
	"syscall"

	"code.cloudfoundry.org/cli/cf/terminal"
	"code.cloudfoundry.org/cli/cf/trace"
	"code.cloudfoundry.org/imagefetch/cmd"
	"code.cloudfoundry.org/imagefetch/config"
	"code.cloudfoundry.org/imagefetch/errors"
)

func main() {
	exitChan := make(chan struct{})
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT)
	signal.Notify(sigChan, syscall.SIGTERM)

	go func() {
		<-sigChan
		close(exitChan)
	}()

	ui := terminal.NewUI(
		os.Stdin,
		os.Stdout,
		terminal.NewTeePrinter(os.Stdout),
		trace.NewLogger(os.Stdout, false, "", ""),
	)

	conf, err := config.NewConfig()
	if err != nil {
		ui.Failed(err.Error())
		os.Exit(1)
	}

	root := cmd.NewRoot(exitChan, ui, conf)
	root.SetArgs(os.Args[1:])
	if err := root.Execute(); err != nil {
		if err != errors.ErrUsage {
			ui.Failed(err.Error())
		}
		os.Exit(1)
	}
}
