package reference

import (
	"bytes"
	"context"
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync/atomic"

	"github.com/jekabolt/currency-exchange/internal/currency"
	"github.com/jekabolt/currency-exchange/internal/dto"
	gerr "github.com/jekabolt/currency-exchange/internal/errors"
	"golang.org/x/sync/singleflight"
	"golang.org/x/text/cases"
)

var (
	//go:embed data
	fs embed.FS

	datasetFile = "data/countryCurrencyMetadata.csv"

	header = []string{"country", "currencyName", "currencyCode"}
)

// Config is the configuration for the reference table.
type Config struct {
	// DatasetPath overrides the embedded dataset when set.
	DatasetPath string `mapstructure:"dataset_path"`
}

// Source opens the raw csv dataset.
type Source func() (io.ReadCloser, error)

// Resolver answers country and currency code queries against the reference table.
// The table is loaded once on first use and is read only afterwards.
type Resolver struct {
	src   Source
	sf    singleflight.Group
	table atomic.Pointer[table]
}

type table struct {
	rows      []dto.CurrencyRecord
	byCountry map[string]int
	byCode    map[string][]int
}

// New creates a resolver reading the dataset configured in c.
func New(c *Config) *Resolver {
	if c != nil && c.DatasetPath != "" {
		path := c.DatasetPath
		return NewWithSource(func() (io.ReadCloser, error) {
			return os.Open(path)
		})
	}
	return NewWithSource(Embedded)
}

// NewWithSource creates a resolver reading the dataset from src.
func NewWithSource(src Source) *Resolver {
	return &Resolver{src: src}
}

// Embedded opens the dataset bundled with the binary.
func Embedded() (io.ReadCloser, error) {
	return fs.Open(datasetFile)
}

// Load makes sure the table is loaded, concurrent callers share one load.
func (r *Resolver) Load(ctx context.Context) error {
	_, err := r.load(ctx)
	return err
}

func (r *Resolver) load(ctx context.Context) (*table, error) {
	if t := r.table.Load(); t != nil {
		return t, nil
	}
	ch := r.sf.DoChan("load", func() (any, error) {
		if t := r.table.Load(); t != nil {
			return t, nil
		}
		t, err := r.read()
		if err != nil {
			return nil, err
		}
		r.table.Store(t)
		return t, nil
	})
	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("could not load currency reference dataset: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("could not load currency reference dataset: %w", res.Err)
		}
		return res.Val.(*table), nil
	}
}

func (r *Resolver) read() (*table, error) {
	rc, err := r.src()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return parse(rc)
}

func parse(rd io.Reader) (*table, error) {
	b, err := io.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	cr := csv.NewReader(bytes.NewReader(bytes.TrimPrefix(b, []byte("\ufeff"))))
	cr.TrimLeadingSpace = true

	h, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("could not read header: %w", err)
	}
	if !equalHeader(h) {
		return nil, fmt.Errorf("unexpected header %v, want %v", h, header)
	}

	t := &table{
		byCountry: make(map[string]int),
		byCode:    make(map[string][]int),
	}
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		row := dto.CurrencyRecord{
			Country:      strings.TrimSpace(rec[0]),
			CurrencyName: strings.TrimSpace(rec[1]),
			CurrencyCode: currency.Normalize(rec[2]),
		}
		line, _ := cr.FieldPos(0)
		if row.Country == "" || row.CurrencyCode == "" {
			return nil, fmt.Errorf("line %d: country and currency code are required", line)
		}
		key := fold(row.Country)
		if _, ok := t.byCountry[key]; ok {
			return nil, fmt.Errorf("line %d: duplicate country %q", line, row.Country)
		}
		t.byCountry[key] = len(t.rows)
		t.byCode[row.CurrencyCode] = append(t.byCode[row.CurrencyCode], len(t.rows))
		t.rows = append(t.rows, row)
	}
	return t, nil
}

func equalHeader(h []string) bool {
	if len(h) != len(header) {
		return false
	}
	for i := range header {
		if strings.TrimSpace(h[i]) != header[i] {
			return false
		}
	}
	return true
}

// fold uses a fresh caser each time, casers are not safe for concurrent use.
func fold(s string) string {
	return cases.Fold().String(strings.TrimSpace(s))
}

// LookupByCountry returns the record of the country matching countryName case-insensitively.
func (r *Resolver) LookupByCountry(ctx context.Context, countryName string) (*dto.CurrencyRecord, error) {
	if strings.TrimSpace(countryName) == "" {
		return nil, gerr.InvalidArgument("please pass in a country name")
	}
	t, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	i, ok := t.byCountry[fold(countryName)]
	if !ok {
		return nil, gerr.NotFound("no country found for country name %s", countryName)
	}
	rec := t.rows[i]
	return &rec, nil
}

// LookupByCurrencyCode returns the currency and every country using it, in dataset order.
func (r *Resolver) LookupByCurrencyCode(ctx context.Context, currencyCode string) (*dto.CurrencyUnion, error) {
	code := currency.Normalize(currencyCode)
	if code == "" {
		return nil, gerr.InvalidArgument("please pass in a 3 character currency code")
	}
	t, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	idx := t.byCode[code]
	if len(idx) == 0 {
		return nil, gerr.NotFound("currency code %s not found", currencyCode)
	}
	first := t.rows[idx[0]]
	u := &dto.CurrencyUnion{
		CurrencyCode: first.CurrencyCode,
		CurrencyName: first.CurrencyName,
		Country:      make([]string, 0, len(idx)),
	}
	for _, i := range idx {
		u.Country = append(u.Country, t.rows[i].Country)
	}
	return u, nil
}

// CountEntries returns the number of rows in the table.
func (r *Resolver) CountEntries(ctx context.Context) (int, error) {
	t, err := r.load(ctx)
	if err != nil {
		return 0, err
	}
	return len(t.rows), nil
}
