package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"

	commonhttp "github.com/AlibekovAA/exercise-tracker/backend/internal/common/http"
)

const multipartMaxMemory = 1 << 20

var (
	errInvalidJSON = errors.New("invalid json body")
	errInvalidForm = errors.New("invalid form body")
)

// formValue is a scalar body field. JSON numbers keep their literal text so
// they go through the same coercion as form input.
type formValue string

func (v *formValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*v = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = formValue(s)
		return nil
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("expected string or number, got %s", data)
		}
		*v = formValue(n.String())
		return nil
	}
}

func (v formValue) String() string {
	return string(v)
}

type formBinder interface {
	bindForm(values url.Values)
}

// decodeBody fills dst from a JSON, multipart or urlencoded body depending on
// Content-Type. An empty body leaves dst untouched.
func decodeBody(r *http.Request, dst formBinder) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	switch mediaType {
	case "application/json":
		defer r.Body.Close()
		err := json.NewDecoder(r.Body).Decode(dst)
		if err == nil || errors.Is(err, io.EOF) {
			return nil
		}
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			return err
		}
		return fmt.Errorf("%w: %v", errInvalidJSON, err)
	case "multipart/form-data":
		if err := r.ParseMultipartForm(multipartMaxMemory); err != nil {
			return wrapFormError(err)
		}
	default:
		if err := r.ParseForm(); err != nil {
			return wrapFormError(err)
		}
	}

	dst.bindForm(r.Form)
	return nil
}

func wrapFormError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return err
	}
	return fmt.Errorf("%w: %v", errInvalidForm, err)
}

func (h *Handler) writeDecodeError(w http.ResponseWriter, r *http.Request, err error) {
	traceID := commonhttp.TraceIDFromContext(r.Context())

	var maxBytesErr *http.MaxBytesError
	switch {
	case errors.As(err, &maxBytesErr):
		commonhttp.WriteErrorEnvelope(w, http.StatusRequestEntityTooLarge, commonhttp.CodeBodyTooLarge, "request body too large", nil, traceID)
	case errors.Is(err, errInvalidJSON):
		h.log.Warnf("decode body failed: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidJSON, "invalid json", nil, traceID)
	default:
		h.log.Warnf("decode body failed: %v", err)
		commonhttp.WriteErrorEnvelope(w, http.StatusBadRequest, commonhttp.CodeInvalidForm, "invalid form body", nil, traceID)
	}
}
