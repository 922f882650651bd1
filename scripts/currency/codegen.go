package main

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"text/template"
)

// maxScale must match the length of the minor unit factor table in the money package.
const maxScale = 3

type currency struct {
	Name   string
	Code   string
	Num    string
	Scale  int
	Symbol string
}

func main() {
	dir := filepath.Join("scripts", "currency")

	data, err := readCsvFile(filepath.Join(dir, "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("reading CSV file: %w", err))
	}

	currs, err := convertDataToCurrencies(data)
	if err != nil {
		panic(fmt.Errorf("converting records: %w", err))
	}

	code, err := generateGoCode(filepath.Join(dir, "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("generating Go code: %w", err))
	}

	if err := os.WriteFile("currency_data.go", code, 0o644); err != nil { //nolint:gosec
		panic(fmt.Errorf("writing to file: %w", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	reader := csv.NewReader(in)
	reader.FieldsPerRecord = 5
	if _, err := reader.Read(); err != nil { // header
		return nil, err
	}
	return reader.ReadAll()
}

// convertDataToCurrencies sorts records by code, keeping XXX at index 0 so that
// the zero value of money.Currency means "no currency".
func convertDataToCurrencies(data [][]string) ([]currency, error) {
	slices.SortFunc(data, func(a, b []string) int {
		switch {
		case a[1] == b[1]:
			return 0
		case a[1] == "XXX":
			return -1
		case b[1] == "XXX":
			return 1
		}
		return strings.Compare(a[1], b[1])
	})
	if len(data) == 0 || data[0][1] != "XXX" {
		return nil, fmt.Errorf("missing XXX record")
	}

	currs := make([]currency, 0, len(data))
	for _, rec := range data {
		scale, err := strconv.Atoi(rec[3])
		if err != nil {
			return nil, fmt.Errorf("currency %v: %w", rec[1], err)
		}
		if scale < 0 || scale > maxScale {
			return nil, fmt.Errorf("currency %v: scale %v out of range [0, %v]", rec[1], scale, maxScale)
		}
		if rec[4] == "" {
			return nil, fmt.Errorf("currency %v: empty symbol", rec[1])
		}
		currs = append(currs, currency{
			Name:   rec[0],
			Code:   rec[1],
			Num:    rec[2],
			Scale:  scale,
			Symbol: rec[4],
		})
	}
	return currs, nil
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	var output bytes.Buffer
	if err := tmpl.Execute(&output, currs); err != nil {
		return nil, err
	}
	return format.Source(output.Bytes())
}
