package utils

import (
	"encoding/json"
	stderrors "errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/itchan-dev/forum-api/internal/api"
	"github.com/itchan-dev/forum-api/internal/errors"
	"github.com/itchan-dev/forum-api/internal/logger"
)

const internalErrorMessage = "terjadi kegagalan pada server kami"

var validate = validator.New(validator.WithRequiredStructEnabled())

// WriteErrorAndStatusCode writes err as a fail envelope with its status code.
// Errors without a status code are logged and reported as 500.
func WriteErrorAndStatusCode(w http.ResponseWriter, err error) {
	var e *errors.ErrorWithStatusCode
	if stderrors.As(err, &e) {
		WriteJSON(w, e.StatusCode, api.Response{Status: api.StatusFail, Message: e.Message})
		return
	}
	logger.Log.Error("unhandled error", "error", err)
	WriteJSON(w, http.StatusInternalServerError, api.Response{Status: api.StatusError, Message: internalErrorMessage})
}

func WriteJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		logger.Log.Error("failed to encode response", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"status":"error","message":"` + internalErrorMessage + `"}`))
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(body)
}

// DecodeValidate decodes a JSON body into body and checks its `validate` tags.
// Every failure is a validation error.
func DecodeValidate(r io.ReadCloser, body any) error {
	if err := Decode(r, body); err != nil {
		return err
	}
	if err := validate.Struct(body); err != nil {
		logger.Log.Debug("request validation failed", "error", err)
		return errors.Validation("tidak dapat memproses permintaan karena properti yang dibutuhkan tidak ada")
	}
	return nil
}

func Decode(r io.ReadCloser, body any) error {
	defer r.Close()
	err := json.NewDecoder(r).Decode(body)
	if err == nil {
		return nil
	}
	logger.Log.Debug("request decoding failed", "error", err)

	var typeErr *json.UnmarshalTypeError
	var maxBytesErr *http.MaxBytesError
	switch {
	case stderrors.Is(err, io.EOF):
		return errors.Validation("tidak dapat memproses permintaan karena properti yang dibutuhkan tidak ada")
	case stderrors.As(err, &typeErr):
		return errors.Validation("tidak dapat memproses permintaan karena tipe data tidak sesuai")
	case stderrors.As(err, &maxBytesErr):
		return &errors.ErrorWithStatusCode{Message: "payload terlalu besar", StatusCode: http.StatusRequestEntityTooLarge}
	default:
		return errors.Validation("payload harus berupa JSON yang valid")
	}
}
