package handler

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"net/http"
	"strconv"

	"rulebook/internal/model"
	"rulebook/internal/rules"

	"github.com/buger/jsonparser"
	"github.com/samber/mo"
)

const maxBodyBytes = 1 << 20

// readObject reads the request body and checks that it is a single JSON object.
func readObject(w http.ResponseWriter, r *http.Request) ([]byte, error) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		return nil, model.NewDomainError(model.ErrCodeInvalidJSON, "Invalid request body")
	}

	_, dataType, end, err := jsonparser.Get(body)
	if err != nil || dataType != jsonparser.Object {
		return nil, model.NewDomainError(model.ErrCodeInvalidJSON, "Request body must be a JSON object")
	}

	if len(bytes.TrimSpace(body[end:])) > 0 {
		return nil, model.NewDomainError(model.ErrCodeInvalidJSON, "Unexpected data after JSON object")
	}

	return body, nil
}

// field extracts a top-level field from a JSON object as an untyped value.
func field(body []byte, key string) (rules.Value, error) {
	v, err := rules.ParseJSONField(body, key)
	if err != nil {
		return rules.Value{}, model.NewDomainError(model.ErrCodeInvalidJSON, fmt.Sprintf("Invalid field %q", key))
	}
	return v, nil
}

// optionalLength extracts an optional non-negative integer field.
func optionalLength(body []byte, key string) (mo.Option[int], error) {
	v, err := field(body, key)
	if err != nil {
		return mo.None[int](), err
	}

	if v.Kind() == rules.KindMissing || v.Kind() == rules.KindNull {
		return mo.None[int](), nil
	}

	n, ok := v.Num().Get()
	if !ok || n < 0 || n != float64(int(n)) {
		return mo.None[int](), model.NewDomainError(model.ErrCodeInvalidJSON,
			fmt.Sprintf("Invalid field %q: must be a non-negative integer", key))
	}

	return mo.Some(int(n)), nil
}

// queryFloat parses a required numeric query parameter.
func queryFloat(r *http.Request, key string) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, model.NewDomainError(model.ErrCodeInvalidQuery, fmt.Sprintf("Invalid query: %s is required", key))
	}

	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, model.NewDomainError(model.ErrCodeInvalidQuery, fmt.Sprintf("Invalid query: %s must be a number", key))
	}

	return f, nil
}
