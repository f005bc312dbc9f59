// Package unsplash is a minimal client for the parts of the Unsplash REST API
// the gallery uses: search, random photos, single photos and download tracking.
package unsplash

import (
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
	"resty.dev/v3"
)

const (
	DefaultBaseURL = "https://api.unsplash.com"

	orientationLandscape = "landscape"
	orderByRelevant      = "relevant"
)

// ErrMissingAccessKey is returned by every call when no access key is configured.
var ErrMissingAccessKey = errors.New("unsplash access key not configured")

// APIError is a non-2xx answer from the API.
type APIError struct {
	StatusCode int
	Messages   []string
}

func (e *APIError) Error() string {
	if len(e.Messages) == 0 {
		return "unsplash: status " + strconv.Itoa(e.StatusCode)
	}
	return "unsplash: status " + strconv.Itoa(e.StatusCode) + ": " + strings.Join(e.Messages, "; ")
}

type Client struct {
	accessKey string
	hc        *resty.Client
}

func NewClient(baseURL, accessKey string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	hc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("Accept-Version", "v1").
		SetHeader("Accept", "application/json")

	if accessKey != "" {
		hc.SetHeader("Authorization", "Client-ID "+accessKey)
	}

	return &Client{accessKey: accessKey, hc: hc}
}

func (c *Client) HasAccessKey() bool {
	return c.accessKey != ""
}

func (c *Client) Close() error {
	return c.hc.Close()
}

func (c *Client) SearchPhotos(ctx context.Context, query string, page, perPage int) (SearchResult, error) {
	body, err := c.get(ctx, "/search/photos", map[string]string{
		"query":       query,
		"page":        strconv.Itoa(page),
		"per_page":    strconv.Itoa(perPage),
		"orientation": orientationLandscape,
		"order_by":    orderByRelevant,
	})
	if err != nil {
		return SearchResult{}, err
	}

	var res SearchResult
	if err := res.Decode(jx.DecodeBytes(body)); err != nil {
		return SearchResult{}, errors.Wrap(err, "decode search result")
	}
	return res, nil
}

// RandomPhotos returns up to count random landscape photos matching query.
// A count of zero asks for a single photo.
func (c *Client) RandomPhotos(ctx context.Context, query string, count int) ([]Photo, error) {
	params := map[string]string{
		"query":       query,
		"orientation": orientationLandscape,
	}
	if count > 0 {
		params["count"] = strconv.Itoa(count)
	}

	body, err := c.get(ctx, "/photos/random", params)
	if err != nil {
		return nil, err
	}

	photos, err := decodePhotos(jx.DecodeBytes(body))
	if err != nil {
		return nil, errors.Wrap(err, "decode random photos")
	}
	return photos, nil
}

func (c *Client) GetPhoto(ctx context.Context, id string) (Photo, error) {
	body, err := c.get(ctx, "/photos/"+id, nil)
	if err != nil {
		return Photo{}, err
	}

	var p Photo
	if err := p.Decode(jx.DecodeBytes(body)); err != nil {
		return Photo{}, errors.Wrap(err, "decode photo")
	}
	return p, nil
}

// TrackDownload hits the photo's download_location, as the API guidelines
// require whenever a photo is downloaded.
func (c *Client) TrackDownload(ctx context.Context, downloadLocation string) error {
	if downloadLocation == "" {
		return nil
	}
	_, err := c.get(ctx, downloadLocation, nil)
	return err
}

func (c *Client) get(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	if c.accessKey == "" {
		return nil, ErrMissingAccessKey
	}

	req := c.hc.R().SetContext(ctx)
	if len(params) > 0 {
		req.SetQueryParams(params)
	}

	res, err := req.Get(path)
	if err != nil {
		return nil, errors.Wrapf(err, "get %s", path)
	}

	body := []byte(res.String())
	if res.IsError() {
		return nil, decodeAPIError(res.StatusCode(), body)
	}

	return body, nil
}

func decodeAPIError(status int, body []byte) error {
	apiErr := &APIError{StatusCode: status}
	if len(body) == 0 {
		return apiErr
	}

	d := jx.DecodeBytes(body)
	if d.Next() != jx.Object {
		return apiErr
	}

	_ = d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		if string(key) != "errors" || d.Next() != jx.Array {
			return d.Skip()
		}
		return d.Arr(func(d *jx.Decoder) error {
			if d.Next() != jx.String {
				return d.Skip()
			}
			msg, err := d.Str()
			if err != nil {
				return err
			}
			apiErr.Messages = append(apiErr.Messages, msg)
			return nil
		})
	})

	return apiErr
}
