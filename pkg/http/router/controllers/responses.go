package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/gridnav/gridrouter/pkg/util"
	"go.uber.org/zap"
)

type envelope map[string]interface{}

func (api *navigationAPI) writeJSON(w http.ResponseWriter, status int, data envelope,
	headers http.Header) error {
	js, err := json.Marshal(data)
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)

	return nil
}

func (api *navigationAPI) errorResponse(w http.ResponseWriter, r *http.Request,
	status int, code string, message string) {
	var resp errorResponse
	resp.Error.Code = code
	resp.Error.Message = message

	js, err := json.Marshal(resp)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	js = append(js, '\n')

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(js)
}

func (api *navigationAPI) BadRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusBadRequest, "bad_request", err.Error())
}

func (api *navigationAPI) NotFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.errorResponse(w, r, http.StatusNotFound, "not_found", err.Error())
}

func (api *navigationAPI) ServerErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	api.log.Error("internal server error", zap.Error(err),
		zap.String("method", r.Method), zap.String("url", r.URL.String()))
	api.errorResponse(w, r, http.StatusInternalServerError, "internal_error",
		util.MessageInternalServerError)
}

// getStatusCode map a wrapped service error onto an http status via its code.
func (api *navigationAPI) getStatusCode(w http.ResponseWriter, r *http.Request, err error) {
	var wrapped *util.Error
	if errors.As(err, &wrapped) {
		switch wrapped.Code() {
		case util.ErrBadParamInput:
			api.BadRequestResponse(w, r, err)
			return
		case util.ErrNotFound:
			api.NotFoundResponse(w, r, err)
			return
		}
	}
	api.ServerErrorResponse(w, r, err)
}

func translateError(err error, trans ut.Translator) []error {
	if err == nil {
		return nil
	}

	validatorErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []error{err}
	}

	errs := make([]error, 0, len(validatorErrs))
	for _, e := range validatorErrs {
		errs = append(errs, errors.New(e.Translate(trans)))
	}
	return errs
}
