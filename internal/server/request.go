package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"mime"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// maxBodyBytes caps the size of JSON request bodies.
const maxBodyBytes = 2 << 20

// requestError is a malformed-request failure with the status to answer.
type requestError struct {
	status int
	msg    string
}

func (e *requestError) Error() string {
	return e.msg
}

// writeRequestError answers with the status carried by err, or 400.
func writeRequestError(w http.ResponseWriter, err error) {
	var reqErr *requestError
	if errors.As(err, &reqErr) {
		http.Error(w, reqErr.msg, reqErr.status)
		return
	}
	http.Error(w, err.Error(), http.StatusBadRequest)
}

// decodeJSON reads a JSON request body into v.
//
// Failures map to statuses as follows:
//   - missing or non-JSON Content-Type: 415
//   - body larger than maxBodyBytes: 413
//   - syntactically invalid JSON: 400
//   - valid JSON that does not fit v: 422
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	if !hasJSONContentType(r.Header) {
		return &requestError{
			status: http.StatusUnsupportedMediaType,
			msg:    "expected request with `Content-Type: application/json`",
		}
	}

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return &requestError{status: http.StatusRequestEntityTooLarge, msg: "request body too large"}
		}
		return &requestError{status: http.StatusBadRequest, msg: fmt.Sprintf("failed to read request body: %v", err)}
	}

	if err := json.Unmarshal(body, v); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return &requestError{
				status: http.StatusUnprocessableEntity,
				msg:    fmt.Sprintf("failed to deserialize the JSON body into the target type: %v", err),
			}
		}
		return &requestError{
			status: http.StatusBadRequest,
			msg:    fmt.Sprintf("failed to parse the request body as JSON: %v", err),
		}
	}
	return nil
}

// hasJSONContentType accepts application/json and application/*+json.
func hasJSONContentType(h http.Header) bool {
	ct := h.Get("Content-Type")
	if ct == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(ct)
	if err != nil {
		return false
	}
	return mediaType == "application/json" ||
		(strings.HasPrefix(mediaType, "application/") && strings.HasSuffix(mediaType, "+json"))
}

// missingField reports a required JSON field that was absent or null.
func missingField(name string) error {
	return &requestError{
		status: http.StatusUnprocessableEntity,
		msg:    fmt.Sprintf("failed to deserialize the JSON body into the target type: missing field `%s`", name),
	}
}

// parseID reads the {id} path value as a UUID.
func parseID(r *http.Request) (uuid.UUID, error) {
	raw := r.PathValue("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, &requestError{
			status: http.StatusBadRequest,
			msg:    fmt.Sprintf("invalid id %q: %v", raw, err),
		}
	}
	return id, nil
}

// unbounded marks a pagination limit that was not supplied.
const unbounded = -1

// pagination holds the list window. limit is unbounded when not supplied.
type pagination struct {
	offset int
	limit  int
}

// parsePagination reads offset and limit from the query string.
//
// The parameters are treated as one optional unit: if either is present
// but is not a non-negative 64-bit integer (or is repeated), both fall
// back to their defaults. Values too large for an int saturate.
func parsePagination(q url.Values) pagination {
	def := pagination{offset: 0, limit: unbounded}

	offset, ok := parseUintParam(q, "offset")
	if !ok {
		return def
	}
	limit, ok := parseUintParam(q, "limit")
	if !ok {
		return def
	}

	p := def
	if offset >= 0 {
		p.offset = offset
	}
	if limit >= 0 {
		p.limit = limit
	}
	return p
}

// parseUintParam returns -1 when the key is absent and false when it is
// present but invalid.
func parseUintParam(q url.Values, key string) (int, bool) {
	values, present := q[key]
	if !present {
		return -1, true
	}
	if len(values) != 1 {
		return 0, false
	}
	n, err := strconv.ParseUint(values[0], 10, 64)
	if err != nil {
		return 0, false
	}
	if n > math.MaxInt {
		return math.MaxInt, true
	}
	return int(n), true
}

// window returns the bounds of the page selected by p within n items.
func (p pagination) window(n int) (start, end int) {
	start = min(p.offset, n)
	end = n
	if p.limit != unbounded && p.limit < end-start {
		end = start + p.limit
	}
	return start, end
}
