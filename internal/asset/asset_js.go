//go:build js
// +build js

package asset

import (
	"io/ioutil"
	"net/http"
	"net/url"
	"syscall/js"

	"github.com/pkg/errors"
)

// readFile fetches path relative to the page, browsers have no local
// filesystem so assets are served next to index.html.
func readFile(path string) ([]byte, error) {
	base, err := url.Parse(js.Global().Get("location").Get("href").String())
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse page location")
	}
	ref, err := url.Parse(path)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid asset path %s", path)
	}
	resp, err := http.Get(base.ResolveReference(ref).String())
	if err != nil {
		return nil, errors.Wrapf(err, "unable to fetch %s", path)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("unable to fetch %s: %s", path, resp.Status)
	}
	data, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read %s", path)
	}
	return data, nil
}
