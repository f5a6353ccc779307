package utils

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/itchan-dev/authd/internal/errors"
	"github.com/itchan-dev/authd/internal/logger"
)

func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	if e, ok := err.(*errors.ErrorWithStatusCode); ok {
		http.Error(w, err.Error(), e.StatusCode)
		return
	}
	// default error is 500
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

// DecodeValidate decodes the JSON body and checks required fields.
// Both failures are reported as 422: the request never reached domain
// validation, so this is not the "invalid credentials" case.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := json.NewDecoder(r).Decode(body); err != nil {
		logger.Log.Debug("failed to decode request body", "error", err)
		return errors.New("Body is invalid json", http.StatusUnprocessableEntity)
	}
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("request body failed validation", "error", err)
		return errors.New("Required fields missing", http.StatusUnprocessableEntity)
	}
	return nil
}
