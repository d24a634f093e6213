package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
)

// Media types handled by the body decoders.
const (
	MediaTypeJSON           = "application/json"
	MediaTypeFormURLEncoded = "application/x-www-form-urlencoded"
)

const bodyKey contextKey = "body"

// Body is a decoded request body. Values are whatever the wire format
// produced: JSON types for JSON bodies, strings for form bodies.
type Body map[string]any

// String returns the value under key when it is a string.
func (b Body) String(key string) (string, bool) {
	s, ok := b[key].(string)
	return s, ok
}

// BodyFrom returns the body decoded by JSONBody or URLEncodedBody.
// Requests with other content types yield an empty Body.
func BodyFrom(ctx context.Context) Body {
	if b, ok := ctx.Value(bodyKey).(Body); ok {
		return b
	}
	return Body{}
}

// JSONBody decodes application/json request bodies of at most maxBytes into
// the request context. Requests with any other content type pass through
// untouched. Decoding failures go to onError and stop the chain.
//
// An empty body decodes to an empty Body, as does a top-level array.
// Any other non-object top-level value is malformed.
func JSONBody(maxBytes int64, onError ErrorHandler) func(http.Handler) http.Handler {
	return decodeBody(MediaTypeJSON, maxBytes, onError, decodeJSON)
}

// URLEncodedBody decodes application/x-www-form-urlencoded request bodies of
// at most maxBytes into the request context, keeping the first value per key.
func URLEncodedBody(maxBytes int64, onError ErrorHandler) func(http.Handler) http.Handler {
	return decodeBody(MediaTypeFormURLEncoded, maxBytes, onError, decodeForm)
}

func decodeBody(mediaType string, maxBytes int64, onError ErrorHandler, decode func([]byte) (Body, error)) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !hasMediaType(r, mediaType) {
				next.ServeHTTP(w, r)
				return
			}
			// An earlier decoder already consumed the body.
			if _, done := r.Context().Value(bodyKey).(Body); done {
				next.ServeHTTP(w, r)
				return
			}

			raw, err := readBody(w, r, maxBytes)
			if err != nil {
				onError(w, r, err)
				return
			}

			body, err := decode(raw)
			if err != nil {
				onError(w, r, err)
				return
			}

			ctx := context.WithValue(r.Context(), bodyKey, body)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func hasMediaType(r *http.Request, want string) bool {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return false
	}
	mt, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mt == want
}

func readBody(w http.ResponseWriter, r *http.Request, maxBytes int64) ([]byte, error) {
	if r.Body == nil {
		return nil, nil
	}
	if r.ContentLength > maxBytes {
		return nil, fmt.Errorf("%w: %d bytes exceeds limit of %d", ErrBodyTooLarge, r.ContentLength, maxBytes)
	}

	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, fmt.Errorf("%w: exceeds limit of %d bytes", ErrBodyTooLarge, tooLarge.Limit)
		}
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	return raw, nil
}

func decodeJSON(raw []byte) (Body, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return Body{}, nil
	}

	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedBody, err)
	}

	switch t := v.(type) {
	case map[string]any:
		return Body(t), nil
	case []any:
		return Body{}, nil
	default:
		return nil, fmt.Errorf("%w: top-level JSON value must be an object or array", ErrMalformedBody)
	}
}

// decodeForm splits on '&' only and never fails: a ';' stays part of the
// value and a pair whose escapes do not decode keeps its text as sent, with
// '+' still read as a space. The first value per key wins.
func decodeForm(raw []byte) (Body, error) {
	body := make(Body)
	for _, pair := range strings.Split(string(raw), "&") {
		if pair == "" {
			continue
		}

		key, value, _ := strings.Cut(pair, "=")
		key = unescapeFormValue(key)
		if key == "" {
			continue
		}
		if _, seen := body[key]; seen {
			continue
		}
		body[key] = unescapeFormValue(value)
	}
	return body, nil
}

func unescapeFormValue(s string) string {
	if v, err := url.QueryUnescape(s); err == nil {
		return v
	}
	return strings.ReplaceAll(s, "+", " ")
}
