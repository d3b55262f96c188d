package loader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"math"
	"os"
	"strings"
	"time"

	"PriceReport/internal/model"

	"github.com/shopspring/decimal"
)

// Header names accepted for each required column. The legacy collector wrote "time,price".
var (
	dateColumns  = []string{"date", "time"}
	closeColumns = []string{"close", "price"}
)

// dateLayouts are tried in order. Fractional seconds are accepted after the
// seconds field even when a layout does not mention them.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05Z07:00",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

const opLoad = "load prices"

// LoadCSV reads a header-prefixed delimited file of (date, close) rows into a PriceSeries.
// Any bad row aborts the whole load.
func LoadCSV(path string) (model.PriceSeries, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.PriceSeries{}, &model.DataError{Op: opLoad, Path: path, Err: errors.New("input file not found")}
		}
		return model.PriceSeries{}, &model.IOError{Op: "open input", Path: path, Err: err}
	}
	defer f.Close()

	series, err := Parse(f, path)
	if err != nil {
		return model.PriceSeries{}, err
	}
	log.Printf("[INFO] loaded %d observations from %s", series.Len(), path)
	return series, nil
}

// Parse decodes the CSV stream r. name is only used in error messages.
func Parse(r io.Reader, name string) (model.PriceSeries, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true
	cr.ReuseRecord = true
	// ragged rows are reported by parseRow
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return model.PriceSeries{}, &model.DataError{Op: opLoad, Path: name, Err: errors.New("empty input file")}
		}
		return model.PriceSeries{}, readError(name, err)
	}
	dateIdx, closeIdx, err := columnIndexes(header)
	if err != nil {
		return model.PriceSeries{}, &model.DataError{Op: opLoad, Path: name, Line: 1, Err: err}
	}

	var obs []model.Observation
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return model.PriceSeries{}, readError(name, err)
		}
		line, _ := cr.FieldPos(0)

		o, err := parseRow(rec, dateIdx, closeIdx)
		if err != nil {
			return model.PriceSeries{}, &model.DataError{Op: opLoad, Path: name, Line: line, Err: err}
		}
		if n := len(obs); n > 0 && o.Date.Before(obs[n-1].Date) {
			log.Printf("[WARN] %s:%d: date %s precedes previous row, keeping file order",
				name, line, o.Date.Format("2006-01-02"))
		}
		obs = append(obs, o)
	}

	if len(obs) == 0 {
		return model.PriceSeries{}, &model.DataError{Op: opLoad, Path: name, Err: errors.New("no observations after header")}
	}
	return model.PriceSeries{Observations: obs}, nil
}

func columnIndexes(header []string) (dateIdx, closeIdx int, err error) {
	dateIdx, closeIdx = -1, -1
	for i, h := range header {
		name := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if dateIdx < 0 && contains(dateColumns, name) {
			dateIdx = i
		}
		if closeIdx < 0 && contains(closeColumns, name) {
			closeIdx = i
		}
	}
	if dateIdx < 0 {
		return 0, 0, fmt.Errorf("missing date column (want one of %v)", dateColumns)
	}
	if closeIdx < 0 {
		return 0, 0, fmt.Errorf("missing close column (want one of %v)", closeColumns)
	}
	return dateIdx, closeIdx, nil
}

func parseRow(rec []string, dateIdx, closeIdx int) (model.Observation, error) {
	if dateIdx >= len(rec) || closeIdx >= len(rec) {
		return model.Observation{}, fmt.Errorf("expected at least %d fields, got %d", max(dateIdx, closeIdx)+1, len(rec))
	}
	date, err := ParseDate(rec[dateIdx])
	if err != nil {
		return model.Observation{}, err
	}
	raw := strings.TrimSpace(rec[closeIdx])
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return model.Observation{}, fmt.Errorf("invalid close price %q: %w", raw, err)
	}
	if !price.IsPositive() {
		return model.Observation{}, fmt.Errorf("close price must be positive, got %s", price.String())
	}
	// Statistics run in float64; reject prices that overflow or underflow it.
	if f := price.InexactFloat64(); math.IsInf(f, 0) || f == 0 {
		return model.Observation{}, fmt.Errorf("close price %s is out of range", price.String())
	}
	return model.Observation{Date: date, Close: price}, nil
}

// ParseDate parses an ISO-8601 calendar date or timestamp and returns it in UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("malformed date %q", s)
}

// readError separates malformed CSV (data) from failed reads (I/O).
func readError(name string, err error) error {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return &model.DataError{Op: opLoad, Path: name, Line: pe.Line, Err: pe.Err}
	}
	return &model.IOError{Op: "read input", Path: name, Err: err}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
