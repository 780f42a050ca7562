package shared

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// MaxBodyBytes caps request bodies read by DecodeJSON.
const MaxBodyBytes = 1 << 20

// ErrMalformedBody is returned by DecodeJSON when the body is not a JSON
// object of the expected shape.
var ErrMalformedBody = errors.New("malformed request body")

// DecodeJSON decodes the request body into v. An empty body leaves v
// untouched, so missing fields are reported by validation rather than as a
// decode failure.
func DecodeJSON(r *http.Request, v interface{}) error {
	if r.Body == nil {
		return nil
	}

	body := http.MaxBytesReader(nil, r.Body, MaxBodyBytes)
	if err := json.NewDecoder(body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}
	return nil
}
