package resource

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/imagefetch/errors"
)

type Fetcher struct {
	Dir    string
	HttpDo func(req *http.Request) (*http.Response, error)
	Writer io.Writer
}

// Sync fetches every item in catalog order. The first failure aborts the
// remaining items.
func (f *Fetcher) Sync(host string, clog Catalog) error {
	for _, item := range clog.Items {
		if err := f.download(host, item); err != nil {
			return err
		}
	}
	return nil
}

func (f *Fetcher) download(host string, item Item) error {
	url := item.URL(host)

	fmt.Fprintf(f.Writer, "Downloading %s\n", url)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return errors.SafeWrap(err, "download "+url)
	}

	resp, err := f.HttpDo(req)
	if err != nil {
		return errors.SafeWrap(err, "download "+url)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.SafeWrap(fmt.Errorf("%s returned %s", url, resp.Status), "http status")
	}

	path := filepath.Join(f.Dir, item.Name)
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return errors.SafeWrap(err, "create "+item.Name)
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		return errors.SafeWrap(err, "write "+item.Name)
	}

	return out.Close()
}
