package internal

import (
	"encoding/base64"

	"github.com/go-faster/errors"
	"google.golang.org/api/option"
)

// GoogleClientOptions turns a base64 encoded service account into client
// options. Empty means application default credentials.
func GoogleClientOptions(encodedSA string) ([]option.ClientOption, error) {
	if encodedSA == "" {
		return nil, nil
	}

	saJSON, err := base64.StdEncoding.DecodeString(encodedSA)
	if err != nil {
		return nil, errors.Wrap(err, "decode service account")
	}

	return []option.ClientOption{option.WithCredentialsJSON(saJSON)}, nil
}
