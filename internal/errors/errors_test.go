package gerr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"invalid argument", InvalidArgument("please pass in a country name"), http.StatusBadRequest},
		{"not found", NotFound("currency code %s not found", "XXX"), http.StatusNotFound},
		{"upstream", Upstream(errors.New("boom"), "rates request failed"), http.StatusServiceUnavailable},
		{"upstream timeout", UpstreamTimeout(context.DeadlineExceeded, "rates request timed out"), http.StatusGatewayTimeout},
		{"wrapped", fmt.Errorf("handler: %w", NotFound("x")), http.StatusNotFound},
		{"foreign", errors.New("plain"), http.StatusInternalServerError},
		{"canceled", fmt.Errorf("load: %w", context.Canceled), 499},
		{"deadline", fmt.Errorf("load: %w", context.DeadlineExceeded), http.StatusGatewayTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.err))
		})
	}
}

func TestKinds(t *testing.T) {
	cause := errors.New("connection refused")
	err := Upstream(cause, "rates request failed")

	assert.ErrorIs(t, err, ErrUpstream)
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotFound)
	assert.Equal(t, codes.Unavailable, status.Code(err))
	assert.Equal(t, "rates request failed", Message(err))
	assert.Equal(t, "rates request failed: connection refused", err.Error())

	nf := NotFound("no country found for country name %s", "Westeros")
	assert.ErrorIs(t, nf, ErrNotFound)
	assert.Equal(t, "no country found for country name Westeros", nf.Error())
	assert.True(t, IsClientError(nf))
	assert.False(t, IsClientError(err))
}
