package growth

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// this file contains functions to handle the CSV import/export format.
//
// Import is lenient: it is meant to accept spreadsheets edited by hand.
// Export is exact: header "Asset,Principal,Rate,Final Value", one row per asset
// and a trailing "Total" row.

// exportHeader is the first record of an exported CSV.
var exportHeader = []string{"Asset", "Principal", "Rate", "Final Value"}

// totalName and totalRate identify the trailing row written by ExportCSV.
const (
	totalName = "Total"
	totalRate = "-"
)

// thousandsGroup matches the remainder of an amount that was split on its
// thousands separators, such as "200.50" in "$1,200.50".
var thousandsGroup = regexp.MustCompile(`^\d{3}(\.\d*)?$`)

// parseLenient parses s as a float, any failure yields 0.
func parseLenient(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// parsePrincipal strips currency symbols and thousands separators.
func parsePrincipal(s string) float64 {
	return parseLenient(strings.NewReplacer("$", "", ",", "").Replace(s))
}

// parseRate strips percent signs.
func parseRate(s string) float64 {
	return parseLenient(strings.ReplaceAll(s, "%", ""))
}

// splitRecord returns the name, principal and rate fields of a record.
//
// An unquoted "$1,200.50" reaches us as the fields "$1" and "200.50": when
// the principal is a currency amount, the following thousands groups are
// merged back into it.
func splitRecord(rec []string) (name, principal, rate string, ok bool) {
	if len(rec) < 3 {
		return "", "", "", false
	}
	name, principal = rec[0], rec[1]
	i := 2
	if strings.HasPrefix(strings.TrimSpace(principal), "$") {
		for i+1 < len(rec) && thousandsGroup.MatchString(strings.TrimSpace(rec[i])) {
			principal += "," + rec[i]
			i++
		}
	}
	return name, principal, rec[i], true
}

// ImportCSV appends the assets read from r to the portfolio, and returns how
// many were added.
//
// The first record is a header and is discarded. Each following record reads
// "name,principal,rate", extra fields are ignored. The principal may carry "$"
// and "," separators and the rate a "%" suffix. Numbers that do not parse are
// read as 0. Records with fewer than 3 fields, an empty name, or that are the
// "Total" row of an export are skipped. Only read errors are returned.
func (p *Portfolio) ImportCSV(r io.Reader) (int, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	added := 0
	for line := 0; ; line++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		var perr *csv.ParseError
		if errors.As(err, &perr) {
			continue // malformed records are skipped like any other invalid row.
		}
		if err != nil {
			return added, fmt.Errorf("cannot read CSV portfolio: %w", err)
		}
		if line == 0 {
			continue
		}
		name, principal, rate, ok := splitRecord(rec)
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		if name == totalName && strings.TrimSpace(rate) == totalRate {
			continue
		}
		if _, ok := p.Add(name, parsePrincipal(principal), Rate(parseRate(rate))); ok {
			added++
		}
	}
	return added, nil
}

// ExportCSV writes the portfolio report to w.
//
// Money fields have exactly 2 decimals, and final values are computed with
// the portfolio parameters. An undefined final value is written as "-".
func (p *Portfolio) ExportCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(exportHeader); err != nil {
		return fmt.Errorf("cannot write CSV header: %w", err)
	}

	for _, a := range p.assets {
		rec := []string{
			a.Name,
			A(a.Principal).String(),
			a.Rate.String(),
			p.FinalValue(a).String(),
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("cannot write asset %q: %w", a.Name, err)
		}
	}

	d := p.Distribution()
	total := []string{totalName, d.InitialTotal.String(), totalRate, d.FinalTotal.String()}
	if err := cw.Write(total); err != nil {
		return fmt.Errorf("cannot write CSV total: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

// ExportCSVString returns the CSV report as a string.
func (p *Portfolio) ExportCSVString() string {
	var b strings.Builder
	// a strings.Builder never fails.
	_ = p.ExportCSV(&b)
	return b.String()
}
