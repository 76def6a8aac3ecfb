package cmd

import (
	"io"
	"net/http"

	"code.cloudfoundry.org/imagefetch/cmd/download"
	"code.cloudfoundry.org/imagefetch/config"
	"code.cloudfoundry.org/imagefetch/resource"
	"github.com/spf13/cobra"
)

type UI interface {
	Say(message string, args ...interface{})
	Writer() io.Writer
}

func NewRoot(exit chan struct{}, ui UI, config config.Config) *cobra.Command {
	fetcher := &resource.Fetcher{
		Dir:    config.Dir,
		HttpDo: http.DefaultClient.Do,
		Writer: ui.Writer(),
	}

	dl := &download.Download{
		Exit:    exit,
		UI:      ui,
		Config:  config,
		Fetcher: fetcher,
	}

	return dl.Cmd()
}
