package httpapi

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	gerr "github.com/jekabolt/currency-exchange/internal/errors"
)

// ErrResponse is the error payload of every failed request.
type ErrResponse struct {
	Err            error `json:"-"` // low-level runtime error
	HTTPStatusCode int   `json:"-"` // http response status code

	ErrorText string `json:"error"` // user-level error message
}

func (e *ErrResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.HTTPStatusCode)
	return nil
}

var (
	ErrNotFound = &ErrResponse{
		HTTPStatusCode: http.StatusNotFound,
		ErrorText:      http.StatusText(http.StatusNotFound),
	}
	ErrMethodNotAllowed = &ErrResponse{
		HTTPStatusCode: http.StatusMethodNotAllowed,
		ErrorText:      http.StatusText(http.StatusMethodNotAllowed),
	}
)

// ErrInvalidRequest renders a client error with its message.
func ErrInvalidRequest(msg string) render.Renderer {
	return &ErrResponse{
		HTTPStatusCode: http.StatusBadRequest,
		ErrorText:      msg,
	}
}

// errResponse maps err onto a response, server side details are only
// shown in development.
func (s *Server) errResponse(err error) render.Renderer {
	status := gerr.HTTPStatus(err)
	text := http.StatusText(status)
	if status < http.StatusInternalServerError || s.c.Development {
		text = gerr.Message(err)
	}
	return &ErrResponse{
		Err:            err,
		HTTPStatusCode: status,
		ErrorText:      text,
	}
}

func (s *Server) respondError(w http.ResponseWriter, r *http.Request, err error) {
	resp := s.errResponse(err).(*ErrResponse)
	if !gerr.IsClientError(err) {
		slog.Default().ErrorContext(r.Context(), "request failed",
			slog.String("path", r.URL.Path),
			slog.String("err", err.Error()),
		)
	}
	render.Render(w, r, resp)
}
