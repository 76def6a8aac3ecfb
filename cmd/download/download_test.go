package download_test

import (
	"fmt"

	"code.cloudfoundry.org/imagefetch/cmd/download"
	"code.cloudfoundry.org/imagefetch/cmd/download/mocks"
	"code.cloudfoundry.org/imagefetch/config"
	"code.cloudfoundry.org/imagefetch/errors"
	"code.cloudfoundry.org/imagefetch/resource"
	"github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

var _ = Describe("Download", func() {
	var (
		mockController *gomock.Controller
		mockUI         *mocks.MockUI
		mockFetcher    *mocks.MockFetcher
		catalog        resource.Catalog
		dl             *download.Download
	)

	BeforeEach(func() {
		mockController = gomock.NewController(GinkgoT())
		mockUI = mocks.NewMockUI(mockController)
		mockFetcher = mocks.NewMockFetcher(mockController)
		catalog = resource.Catalog{Items: []resource.Item{{Name: "redis+4.0.11-alpine.docker"}}}

		dl = &download.Download{
			Exit:    make(chan struct{}),
			UI:      mockUI,
			Config:  config.Config{Dir: "some-dir", Dependencies: catalog},
			Fetcher: mockFetcher,
		}
	})

	AfterEach(func() {
		mockController.Finish()
	})

	Context("when no host is given", func() {
		It("prints two usage lines and fetches nothing", func() {
			gomock.InOrder(
				mockUI.EXPECT().Say("Downloads saved docker images."),
				mockUI.EXPECT().Say("Usage: download-images [HOST]"),
			)

			Expect(dl.RunE(nil, []string{})).To(Equal(errors.ErrUsage))
		})
	})

	Context("when a host is given", func() {
		It("syncs the configured catalog from that host", func() {
			mockFetcher.EXPECT().Sync("example.com", catalog).Return(nil)

			Expect(dl.RunE(nil, []string{"example.com"})).To(Succeed())
		})

		It("ignores additional arguments", func() {
			mockFetcher.EXPECT().Sync("example.com:8080", catalog).Return(nil)

			Expect(dl.RunE(nil, []string{"example.com:8080", "extra", "--flag"})).To(Succeed())
		})

		It("returns the fetch error", func() {
			mockFetcher.EXPECT().Sync("example.com", catalog).Return(fmt.Errorf("connection refused"))

			Expect(dl.RunE(nil, []string{"example.com"})).To(MatchError("download images: connection refused"))
		})
	})

	Describe("Cmd", func() {
		It("treats every argument as positional", func() {
			mockFetcher.EXPECT().Sync("--help", catalog).Return(nil)

			cmd := dl.Cmd()
			cmd.SetArgs([]string{"--help"})
			Expect(cmd.Execute()).To(Succeed())
		})

		It("returns the usage error without arguments", func() {
			mockUI.EXPECT().Say(gomock.Any()).Times(2)

			cmd := dl.Cmd()
			cmd.SetArgs([]string{})
			Expect(cmd.Execute()).To(Equal(errors.ErrUsage))
		})
	})
})
