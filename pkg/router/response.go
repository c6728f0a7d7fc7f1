package router

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/plume-lab/backend/pkg/errorx"
	"github.com/plume-lab/backend/pkg/xcontext"
)

// ErrResponded is returned by a middleware that has already answered the
// client itself, e.g. with a login redirect. It stops the chain without
// writing another response.
var ErrResponded = errors.New("response already written")

type response struct {
	Code  int64  `json:"code"`
	Error string `json:"error,omitempty"`
	Data  any    `json:"data,omitempty"`
}

func newResponse(data any) response {
	return response{
		Code: 0,
		Data: data,
	}
}

func newErrorResponse(err error) response {
	errx := errorx.Error{}
	if errors.As(err, &errx) {
		return response{
			Code:  int64(errx.Code),
			Error: errx.Message,
		}
	}

	return response{
		Code:  int64(errorx.Unknown.Code),
		Error: errorx.Unknown.Message,
	}
}

func httpStatus(err error) int {
	errx := errorx.Error{}
	if !errors.As(err, &errx) {
		return http.StatusInternalServerError
	}

	switch errx.Code {
	case errorx.BadRequest:
		return http.StatusBadRequest
	case errorx.Unauthenticated:
		return http.StatusUnauthorized
	case errorx.PermissionDenied:
		return http.StatusForbidden
	case errorx.NotFound:
		return http.StatusNotFound
	case errorx.AlreadyExists:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeResponse(ctx context.Context) {
	w := xcontext.HTTPWriter(ctx)

	if err := xcontext.Error(ctx); err != nil {
		if errors.Is(err, ErrResponded) {
			return
		}

		w.WriteHeader(httpStatus(err))
		if werr := WriteJson(w, newErrorResponse(err)); werr != nil {
			xcontext.Logger(ctx).Errorf("cannot write the error response: %v", werr)
		}

		return
	}

	// A nil response here means a middleware already answered the client,
	// e.g. with a redirect.
	if resp := xcontext.Response(ctx); resp != nil {
		if err := WriteJson(w, newResponse(resp)); err != nil {
			xcontext.Logger(ctx).Errorf("cannot write the response: %v", err)
		}
	}
}

func WriteJson(w http.ResponseWriter, resp any) error {
	b, err := json.Marshal(resp)
	if err != nil {
		return err
	}

	if _, err := w.Write(b); err != nil {
		return err
	}

	return nil
}
