package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/tarifa/money/internal/reservation"
	"github.com/tarifa/money/lodging"
)

const invalidFormat = "invalid format (" + reservation.Usage + ")"

type quoter struct {
	catalog    lodging.Catalog
	prompt     bool
	showPrices bool
	logger     zerolog.Logger
}

// run answers one request per line until an empty line or the end of in.
// Malformed requests get the usage message and do not stop the loop.
func (q *quoter) run(in io.Reader, out io.Writer) error {
	sc := bufio.NewScanner(in)
	for {
		if q.prompt {
			fmt.Fprintln(out, "Input:")
		}
		if !sc.Scan() {
			break
		}
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			break
		}
		if err := q.quote(line, out); err != nil {
			return err
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("read request: %w", err)
	}
	return nil
}

func (q *quoter) quote(line string, out io.Writer) error {
	l := q.logger.With().Str("quote_id", uuid.NewString()).Logger()

	req, err := reservation.Parse(line)
	if err != nil {
		l.Warn().Err(err).Str("line", line).Msg("rejected request")
		fmt.Fprintln(out, invalidFormat)
		return nil
	}

	best, err := q.catalog.Cheapest(req.Client, req.Dates)
	if err != nil {
		if errors.Is(err, lodging.ErrNoHotels) {
			return err
		}
		// e.g. a stay long enough to overflow the total
		l.Warn().Err(err).Msg("pricing failed")
		fmt.Fprintln(out, invalidFormat)
		return nil
	}
	l.Info().
		Stringer("client", req.Client).
		Int("nights", len(req.Dates)).
		Str("hotel", best.Name()).
		Msg("quoted")

	if q.prompt {
		fmt.Fprintln(out, "Output:")
	}
	fmt.Fprintln(out, best.Name())
	if q.showPrices {
		for _, h := range q.catalog.Hotels() {
			total, err := h.TotalPrice(req.Client, req.Dates)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %-12s %v\n", h.Name(), total)
		}
	}
	return nil
}
