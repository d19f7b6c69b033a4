// Package share turns a trip into a compact URL-safe token and back.
//
// A token carries only what a read-only viewer needs: titles, dates, the
// group size, and every activity's visible fields. Ids, ordering indexes,
// timezone, cost settings and timestamps are dropped and synthesized again on
// decode, so a decoded trip is a detached value that must never be written
// back into the TripService.
package share

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
)

// SharedIDPrefix marks the id of a trip reconstructed from a token.
const SharedIDPrefix = "shared-"

// Codec encodes and decodes share tokens. The zero value is ready to use.
type Codec struct {
	// BaseURL is prepended to "/share/<token>" by URL. May be empty.
	BaseURL string

	// Now is the clock used to stamp decoded trips. Defaults to time.Now.
	Now func() time.Time

	// Logger receives decode failures at debug level. Defaults to slog.Default().
	Logger *slog.Logger
}

// payload is the shorthand projection of a trip. Short keys keep tokens small.
type payload struct {
	Title          string       `json:"t"`
	StartDate      string       `json:"sd"`
	EndDate        string       `json:"ed"`
	Currency       string       `json:"c,omitempty"`
	// A zero group size is omitted and decodes as DefaultNumberOfPeople,
	// so trips with no travellers do not round-trip.
	NumberOfPeople int          `json:"np,omitempty"`
	Days           []payloadDay `json:"d"`
}

type payloadDay struct {
	Date       string            `json:"dt"`
	Activities []payloadActivity `json:"a"`
}

type payloadActivity struct {
	Title        string          `json:"ti"`
	TimeStart    string          `json:"ts,omitempty"`
	TimeEnd      string          `json:"te,omitempty"`
	LocationText string          `json:"l,omitempty"`
	MapLink      string          `json:"ml,omitempty"`
	Category     domain.Category `json:"cat"`
	CostEstimate *float64        `json:"co,omitempty"`
	Notes        string          `json:"n,omitempty"`
}

// Encode returns the share token for trip using a zero Codec.
func Encode(trip domain.Trip) (string, error) {
	return Codec{}.Encode(trip)
}

// Decode reconstructs a trip from token using a zero Codec.
func Decode(token string) (domain.Trip, bool) {
	return Codec{}.Decode(token)
}

// Encode projects trip onto the shorthand record, serializes it as JSON and
// returns it base64url-encoded without padding.
func (c Codec) Encode(trip domain.Trip) (string, error) {
	p := payload{
		Title:          trip.Title,
		StartDate:      trip.StartDate,
		EndDate:        trip.EndDate,
		Currency:       trip.Currency,
		NumberOfPeople: trip.NumberOfPeople,
		Days:           make([]payloadDay, len(trip.Days)),
	}
	for i, d := range trip.Days {
		pd := payloadDay{Date: d.Date, Activities: make([]payloadActivity, len(d.Activities))}
		for j, a := range d.Activities {
			pd.Activities[j] = payloadActivity{
				Title:        a.Title,
				TimeStart:    a.TimeStart,
				TimeEnd:      a.TimeEnd,
				LocationText: a.LocationText,
				MapLink:      a.MapLink,
				Category:     a.Category,
				CostEstimate: a.CostEstimate,
				Notes:        a.Notes,
			}
		}
		p.Days[i] = pd
	}

	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("share.Codec.Encode: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(raw), nil
}

// Decode reconstructs a read-only trip from token. It never panics and never
// returns an error: any malformed token yields (domain.Trip{}, false).
func (c Codec) Decode(token string) (domain.Trip, bool) {
	p, err := parse(token)
	if err != nil {
		c.logger().Debug("share token rejected", "error", err, "token_len", len(token))
		return domain.Trip{}, false
	}
	return c.rebuild(p), true
}

// URL returns the share link for trip: BaseURL + "/share/" + token.
func (c Codec) URL(trip domain.Trip) (string, error) {
	token, err := c.Encode(trip)
	if err != nil {
		return "", err
	}
	return c.Link(token), nil
}

// Link returns the share link for an already encoded token.
func (c Codec) Link(token string) string {
	return strings.TrimRight(c.BaseURL, "/") + "/share/" + token
}

// parse reverses Encode. Every failure wraps domain.ErrDecode.
// Trailing "=" padding is tolerated so links copied from padded encoders
// still open.
func parse(token string) (payload, error) {
	token = strings.TrimRight(token, "=")
	if i := strings.IndexFunc(token, func(r rune) bool { return !isTokenRune(r) }); i >= 0 {
		return payload{}, fmt.Errorf("%w: invalid character at offset %d", domain.ErrDecode, i)
	}

	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return payload{}, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}

	var p payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return payload{}, fmt.Errorf("%w: %v", domain.ErrDecode, err)
	}
	// Field values are trusted as they are. A token only has to carry a
	// day list; the view renders odd dates verbatim and CostBreakdown
	// files unknown categories under "other".
	if p.Days == nil {
		return payload{}, fmt.Errorf("%w: missing days", domain.ErrDecode)
	}
	return p, nil
}

// rebuild synthesizes the fields the token does not carry.
// Day and activity ids are positional and only unique within this value.
func (c Codec) rebuild(p payload) domain.Trip {
	now := c.now()

	trip := domain.Trip{
		ID:             fmt.Sprintf("%s%d", SharedIDPrefix, now.UnixMilli()),
		Title:          p.Title,
		StartDate:      p.StartDate,
		EndDate:        p.EndDate,
		Timezone:       domain.DefaultTimezone,
		Currency:       p.Currency,
		NumberOfPeople: p.NumberOfPeople,
		Days:           make([]domain.Day, len(p.Days)),
		CostSettings:   domain.DefaultCostSettings(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if trip.Currency == "" {
		trip.Currency = domain.DefaultCurrency
	}
	if trip.NumberOfPeople <= 0 {
		trip.NumberOfPeople = domain.DefaultNumberOfPeople
	}

	for i, pd := range p.Days {
		dayID := fmt.Sprintf("day-%d", i)
		day := domain.Day{
			ID:         dayID,
			TripID:     "shared",
			Date:       pd.Date,
			OrderIndex: i,
			Activities: make([]domain.Activity, len(pd.Activities)),
		}
		for j, pa := range pd.Activities {
			day.Activities[j] = domain.Activity{
				ID:           fmt.Sprintf("activity-%d-%d", i, j),
				DayID:        dayID,
				Title:        pa.Title,
				Category:     pa.Category,
				TimeStart:    pa.TimeStart,
				TimeEnd:      pa.TimeEnd,
				LocationText: pa.LocationText,
				MapLink:      pa.MapLink,
				CostEstimate: pa.CostEstimate,
				Notes:        pa.Notes,
				OrderIndex:   j,
			}
		}
		trip.Days[i] = day
	}
	return trip
}

func isTokenRune(r rune) bool {
	return r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' || r == '-' || r == '_'
}

func (c Codec) now() time.Time {
	if c.Now != nil {
		return c.Now()
	}
	return time.Now()
}

func (c Codec) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
