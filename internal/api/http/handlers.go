package httpapi

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	"github.com/jekabolt/currency-exchange/internal/currency"
	"github.com/jekabolt/currency-exchange/internal/dto"
	gerr "github.com/jekabolt/currency-exchange/internal/errors"
)

func (s *Server) getRates(w http.ResponseWriter, r *http.Request) {
	snap, err := s.rates.GetRates(r.Context(), currency.Latest)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	render.JSON(w, r, snap)
}

func (s *Server) search(w http.ResponseWriter, r *http.Request) {
	var req dto.SearchRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil && !errors.Is(err, io.EOF) {
		render.Render(w, r, ErrInvalidRequest("request body must be a JSON object"))
		return
	}

	switch {
	case req.Country != "":
		rec, err := s.ref.LookupByCountry(r.Context(), req.Country)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		render.JSON(w, r, rec)
	case req.CurrencyCode != "":
		u, err := s.ref.LookupByCurrencyCode(r.Context(), req.CurrencyCode)
		if err != nil {
			s.respondError(w, r, err)
			return
		}
		render.JSON(w, r, u)
	default:
		render.Render(w, r, ErrInvalidRequest("please pass in either Country or CurrencyCode"))
	}
}

func (s *Server) convert(w http.ResponseWriter, r *http.Request) {
	amount, ok := currency.ParseAmount(pathParam(r, "amount"))
	if !ok {
		s.respondError(w, r, gerr.InvalidArgument("amount must be a number"))
		return
	}
	from := pathParam(r, "fromCode")
	to := pathParam(r, "toCode")

	res, err := s.rates.Convert(r.Context(), amount, from, to, currency.Latest)
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	render.JSON(w, r, dto.ConversionResult{Result: res})
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	n, err := s.ref.CountEntries(r.Context())
	if err != nil {
		s.respondError(w, r, err)
		return
	}
	render.JSON(w, r, dto.Health{Status: "ok", Entries: n})
}

// pathParam returns the unescaped, trimmed url parameter.
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if u, err := url.PathUnescape(v); err == nil {
		v = u
	}
	return strings.TrimSpace(v)
}
