package app

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/jekabolt/currency-exchange/config"
	httpapi "github.com/jekabolt/currency-exchange/internal/api/http"
	"github.com/jekabolt/currency-exchange/internal/rates"
	"github.com/jekabolt/currency-exchange/internal/reference"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApp(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("base") == "XYZ" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":"Base 'XYZ' is not supported."}`))
			return
		}
		w.Write([]byte(`{"rates":{"USD":1.1058,"GBP":0.85868},"base":"EUR","date":"2019-11-22"}`))
	}))
	defer upstream.Close()

	a := New(&config.Config{
		HTTP: httpapi.Config{
			Address:         "127.0.0.1",
			Port:            "0",
			AllowedOrigins:  []string{"*"},
			ShutdownTimeout: time.Second,
		},
		Rates:     rates.Config{BaseURL: upstream.URL, Timeout: time.Second},
		Reference: reference.Config{},
	}, "test")

	ctx := context.Background()
	require.NoError(t, a.Start(ctx))
	base := "http://" + a.Addr() + "/api/v1/currency"

	t.Run("convert", func(t *testing.T) {
		resp, err := http.Get(base + "/10/eur/usd")
		require.NoError(t, err)
		defer resp.Body.Close()

		var res struct {
			Result float64 `json:"result"`
		}
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 11.058, res.Result)
	})

	t.Run("convert from unknown base", func(t *testing.T) {
		resp, err := http.Get(base + "/10/xyz/usd")
		require.NoError(t, err)
		defer resp.Body.Close()

		var res map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, "The country code XYZ is invalid for the currency you want to convert FROM.", res["error"])
	})

	t.Run("search", func(t *testing.T) {
		resp, err := http.Post(base+"/search", "application/json", strings.NewReader(`{"Country":"south africa"}`))
		require.NoError(t, err)
		defer resp.Body.Close()

		var res map[string]string
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "ZAR", res["currencyCode"])
	})

	a.Stop(ctx)
	select {
	case <-a.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("app did not exit")
	}
}

func TestAppBadDataset(t *testing.T) {
	a := New(&config.Config{
		Reference: reference.Config{DatasetPath: "missing.csv"},
	}, "test")
	assert.Error(t, a.Start(context.Background()))
}
