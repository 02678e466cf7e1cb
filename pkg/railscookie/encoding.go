package railscookie

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"
)

const separator = "--"

// unescape decodes the cookie the way CGI.unescape does: "+" is a space and %XX is a byte.
func unescape(token string) (string, error) {
	s, err := url.QueryUnescape(token)
	if err != nil {
		return "", errors.Join(ErrMalformedToken, err)
	}
	return s, nil
}

func escape(s string) string {
	return url.QueryEscape(s)
}

func split(s string, n int) ([]string, error) {
	parts := strings.Split(s, separator)
	if len(parts) != n {
		return nil, fmt.Errorf("%w: want %d segments, got %d", ErrMalformedToken, n, len(parts))
	}
	return parts, nil
}

func decodeBase64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}
	return b, nil
}

func encodeBase64(b []byte) string {
	return base64.StdEncoding.EncodeToString(b)
}

// decodeSession parses a single JSON object, keeping numbers as json.Number.
func decodeSession(data []byte) (Session, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var s Session
	if err := dec.Decode(&s); err != nil {
		return nil, errors.Join(ErrMalformedToken, err)
	}
	if s == nil {
		return nil, fmt.Errorf("%w: session is not a JSON object", ErrMalformedToken)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: trailing data after session", ErrMalformedToken)
	}

	return s, nil
}
