package models

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// Date is a calendar date with day precision, normalized to UTC midnight so
// that records compare equal after a serialization round trip.
type Date struct {
	time.Time
}

// NewDate returns the date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a time to its calendar day.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// Today returns the current calendar day.
func Today() Date {
	return DateOf(time.Now())
}

// ParseDate parses a date permissively: ISO dates, slashed dates, month names
// and most other common layouts are accepted.
func ParseDate(s string) (Date, error) {
	t, err := dateparse.ParseAny(strings.TrimSpace(s))
	if err != nil {
		return Date{}, err
	}
	return DateOf(t), nil
}

// String formats the date as YYYY-MM-DD, or empty for the zero date.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Format("2006-01-02")
}

// CriteriaList is the set of setup criteria tagged on a trade.
type CriteriaList []Criterion

// String joins the criteria with "; " for tabular display and interchange.
func (c CriteriaList) String() string {
	parts := make([]string, len(c))
	for i, crit := range c {
		parts[i] = string(crit)
	}
	return strings.Join(parts, "; ")
}

// ParseCriteriaList splits a "; "-joined cell back into criteria. Empty input
// yields an empty list.
func ParseCriteriaList(s string) CriteriaList {
	var out CriteriaList
	for _, part := range strings.Split(s, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, Criterion(part))
		}
	}
	return out
}

// TradeRecord is one row of the journal. Raw numeric inputs are pointers:
// nil means the user left the field blank, which is a valid unknown state
// distinct from zero. Derived fields are never user-entered; the journal
// recomputes them from the raw fields on every add and update.
type TradeRecord struct {
	// Identity and descriptive fields.
	TradeDate  Date
	Symbol     string
	Strategy   string
	OptionType OptionType
	ExpiryDate Date
	Notes      string

	// Image is an opaque screenshot blob held for the session only. It is
	// never serialized by the interchange codec.
	Image []byte

	// Raw numeric inputs.
	EntryPrice      *float64
	ExitPrice       *float64
	LastTradedPrice *float64
	StrikePrice     *float64
	LotSize         *float64
	Quantity        *int
	Confidence      *int
	Criteria        CriteriaList
	CurrentWave     Wave

	// Derived outputs, recomputed on every mutation.
	TotalQuantity    *float64
	ProfitLoss       *float64
	RiskReward       *float64
	NotionalExposure *float64
}

// Clone returns a deep copy of the record so callers can hand out records
// without sharing pointers into the journal's sequence.
func (t TradeRecord) Clone() TradeRecord {
	out := t
	out.EntryPrice = cloneFloat(t.EntryPrice)
	out.ExitPrice = cloneFloat(t.ExitPrice)
	out.LastTradedPrice = cloneFloat(t.LastTradedPrice)
	out.StrikePrice = cloneFloat(t.StrikePrice)
	out.LotSize = cloneFloat(t.LotSize)
	out.Quantity = cloneInt(t.Quantity)
	out.Confidence = cloneInt(t.Confidence)
	out.TotalQuantity = cloneFloat(t.TotalQuantity)
	out.ProfitLoss = cloneFloat(t.ProfitLoss)
	out.RiskReward = cloneFloat(t.RiskReward)
	out.NotionalExposure = cloneFloat(t.NotionalExposure)
	if t.Criteria != nil {
		out.Criteria = append(CriteriaList(nil), t.Criteria...)
	}
	if t.Image != nil {
		out.Image = append([]byte(nil), t.Image...)
	}
	return out
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneInt(p *int) *int {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
