package download

import (
	"os"

	"code.cloudfoundry.org/imagefetch/config"
	"code.cloudfoundry.org/imagefetch/errors"
	"code.cloudfoundry.org/imagefetch/resource"
	"github.com/spf13/cobra"
)

//go:generate mockgen -package mocks -destination mocks/ui.go code.cloudfoundry.org/imagefetch/cmd/download UI
type UI interface {
	Say(message string, args ...interface{})
}

//go:generate mockgen -package mocks -destination mocks/fetcher.go code.cloudfoundry.org/imagefetch/cmd/download Fetcher
type Fetcher interface {
	Sync(host string, clog resource.Catalog) error
}

type Download struct {
	Exit    chan struct{}
	UI      UI
	Config  config.Config
	Fetcher Fetcher
}

func (d *Download) Cmd() *cobra.Command {
	return &cobra.Command{
		Use:                "download-images [HOST]",
		Short:              "Downloads saved docker images",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               d.RunE,
	}
}

func (d *Download) RunE(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		d.UI.Say("Downloads saved docker images.")
		d.UI.Say("Usage: download-images [HOST]")
		return errors.ErrUsage
	}

	go func() {
		<-d.Exit
		os.Exit(128)
	}()

	return errors.SafeWrap(d.Fetcher.Sync(args[0], d.Config.Dependencies), "download images")
}
