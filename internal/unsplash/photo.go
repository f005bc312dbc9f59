package unsplash

import (
	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

type Photo struct {
	ID             string
	CreatedAt      string
	Color          string
	Description    string
	AltDescription string
	URLs           URLs
	User           User
	Tags           []Tag
	Downloads      int
	Likes          int
	Links          Links
}

type URLs struct {
	Full    string
	Regular string
}

type User struct {
	Name string
}

type Tag struct {
	Title string
}

type Links struct {
	DownloadLocation string
}

// SearchResult is the body of GET /search/photos.
type SearchResult struct {
	Total      int
	TotalPages int
	Results    []Photo
}

// Empty is what every failed or unconfigured search degrades to.
func (r SearchResult) Empty() bool {
	return len(r.Results) == 0
}

func (p *Photo) Decode(d *jx.Decoder) error {
	return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "id":
			p.ID, err = optStr(d)
		case "created_at":
			p.CreatedAt, err = optStr(d)
		case "color":
			p.Color, err = optStr(d)
		case "description":
			p.Description, err = optStr(d)
		case "alt_description":
			p.AltDescription, err = optStr(d)
		case "downloads":
			p.Downloads, err = optInt(d)
		case "likes":
			p.Likes, err = optInt(d)
		case "urls":
			err = optObj(d, func(d *jx.Decoder, key []byte) error {
				var err error
				switch string(key) {
				case "full":
					p.URLs.Full, err = optStr(d)
				case "regular":
					p.URLs.Regular, err = optStr(d)
				default:
					err = d.Skip()
				}
				return err
			})
		case "user":
			err = optObj(d, func(d *jx.Decoder, key []byte) error {
				if string(key) == "name" {
					var err error
					p.User.Name, err = optStr(d)
					return err
				}
				return d.Skip()
			})
		case "links":
			err = optObj(d, func(d *jx.Decoder, key []byte) error {
				if string(key) == "download_location" {
					var err error
					p.Links.DownloadLocation, err = optStr(d)
					return err
				}
				return d.Skip()
			})
		case "tags":
			if d.Next() == jx.Null {
				return d.Null()
			}
			err = d.Arr(func(d *jx.Decoder) error {
				var t Tag
				if err := optObj(d, func(d *jx.Decoder, key []byte) error {
					if string(key) == "title" {
						var err error
						t.Title, err = optStr(d)
						return err
					}
					return d.Skip()
				}); err != nil {
					return err
				}
				if t.Title != "" {
					p.Tags = append(p.Tags, t)
				}
				return nil
			})
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode %q", key)
		}
		return nil
	})
}

func (r *SearchResult) Decode(d *jx.Decoder) error {
	return d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		var err error
		switch string(key) {
		case "total":
			r.Total, err = optInt(d)
		case "total_pages":
			r.TotalPages, err = optInt(d)
		case "results":
			r.Results, err = decodePhotoArr(d)
		default:
			err = d.Skip()
		}
		if err != nil {
			return errors.Wrapf(err, "decode %q", key)
		}
		return nil
	})
}

// decodePhotos accepts either a single photo object or an array of them;
// /photos/random answers with an object unless count is set.
func decodePhotos(d *jx.Decoder) ([]Photo, error) {
	switch d.Next() {
	case jx.Array:
		return decodePhotoArr(d)
	case jx.Object:
		var p Photo
		if err := p.Decode(d); err != nil {
			return nil, err
		}
		return []Photo{p}, nil
	case jx.Null:
		return nil, d.Null()
	default:
		return nil, errors.Errorf("unexpected %s", d.Next())
	}
}

func decodePhotoArr(d *jx.Decoder) ([]Photo, error) {
	if d.Next() == jx.Null {
		return nil, d.Null()
	}

	var photos []Photo
	err := d.Arr(func(d *jx.Decoder) error {
		var p Photo
		if err := p.Decode(d); err != nil {
			return err
		}
		photos = append(photos, p)
		return nil
	})
	return photos, err
}

func optStr(d *jx.Decoder) (string, error) {
	if d.Next() == jx.Null {
		return "", d.Null()
	}
	return d.Str()
}

func optInt(d *jx.Decoder) (int, error) {
	if d.Next() == jx.Null {
		return 0, d.Null()
	}
	return d.Int()
}

func optObj(d *jx.Decoder, f func(d *jx.Decoder, key []byte) error) error {
	if d.Next() == jx.Null {
		return d.Null()
	}
	return d.ObjBytes(f)
}
