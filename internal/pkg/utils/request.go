package utils

import (
	"errors"
	"freeslot-service/internal/pkg/constvars"
	"freeslot-service/internal/pkg/exceptions"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"
)

// DecodeJSONBody decodes the request body into dst. An empty body leaves dst
// untouched so that validation reports the missing fields.
func DecodeJSONBody(r *http.Request, dst interface{}) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil || errors.Is(err, io.EOF) {
		return nil
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return exceptions.ErrRequestBodyTooLarge(err)
	}
	return err
}

// IsJSONRequest reports whether the request declares a JSON body.
func IsJSONRequest(r *http.Request) bool {
	return strings.HasPrefix(strings.ToLower(r.Header.Get(constvars.HeaderContentType)), constvars.MIMEApplicationJSON)
}
