package download

import (
	"context"
	"net/http"

	"github.com/go-faster/errors"
)

const defaultContentType = "image/jpeg"

// HTTPFetcher streams image bodies without buffering them in memory.
type HTTPFetcher struct {
	HC *http.Client
}

func (f HTTPFetcher) Fetch(ctx context.Context, url string) (*Blob, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create image request")
	}

	resp, err := f.HC.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "download image from %s", url)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		return nil, errors.Errorf("download image from %s: status %d", url, resp.StatusCode)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = defaultContentType
	}

	return &Blob{Body: resp.Body, ContentType: contentType, Size: resp.ContentLength}, nil
}
