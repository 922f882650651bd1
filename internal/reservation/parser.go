// Package reservation parses quote requests typed by guests, such as
//
//	Regular: 16Mar2009(mon), 17Mar2009(tues), 18Mar2009(wed)
package reservation

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/tarifa/money/lodging"
)

// ErrInvalidRequest is returned for lines that do not follow the request format.
var ErrInvalidRequest = errors.New("invalid request")

// Usage describes the request format.
const Usage = "<Regular|Rewards>: <ddMMMyyyy(ddd)>, ..."

// Request is a parsed quote request.
type Request struct {
	Client lodging.ClientType
	Dates  []time.Time
}

// datePattern matches 16Mar2009(mon) and 4-letter forms like 01Sept2009(tues).
// The weekday in parentheses is not checked against the date.
var datePattern = regexp.MustCompile(`(\d{2})([A-Za-z]{3,4})(\d{4})\([a-z]{3,4}\)`)

// Parse reads a request line. The client label before the first colon must be
// exactly Regular or Rewards, with no surrounding spaces. Every date found after it is
// returned in the order written, including repeats.
func Parse(line string) (Request, error) {
	label, rest, ok := strings.Cut(line, ":")
	if !ok {
		return Request{}, fmt.Errorf("%w: missing client type", ErrInvalidRequest)
	}

	var req Request
	switch label {
	case "Regular":
		req.Client = lodging.Regular
	case "Rewards":
		req.Client = lodging.Rewards
	default:
		return Request{}, fmt.Errorf("%w: unknown client type %q", ErrInvalidRequest, label)
	}

	for _, m := range datePattern.FindAllStringSubmatch(rest, -1) {
		// Sept, June and the like are read by their first three letters
		d, err := time.Parse("02Jan2006", m[1]+m[2][:3]+m[3])
		if err != nil {
			return Request{}, fmt.Errorf("%w: date %q: %w", ErrInvalidRequest, m[0], err)
		}
		req.Dates = append(req.Dates, d)
	}
	if len(req.Dates) == 0 {
		return Request{}, fmt.Errorf("%w: no dates", ErrInvalidRequest)
	}
	return req, nil
}
