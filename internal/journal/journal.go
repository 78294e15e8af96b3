// Package journal owns the in-memory trade record sequence: CRUD operations,
// raw-field coercion, the derived-field rules, and the CSV interchange codec.
package journal

import (
	"strconv"
	"strings"

	"trade-tracker/internal/errors"
	"trade-tracker/internal/models"
)

// Canonical field names. These double as validation-error field labels and as
// the interchange header row.
const (
	FieldTradeDate       = "Trade Date"
	FieldSymbol          = "Stock/Symbol"
	FieldStrategy        = "Strategy"
	FieldOptionType      = "CE/PE"
	FieldStrikePrice     = "Strike Price"
	FieldExpiryDate      = "Expiry Date"
	FieldEntryPrice      = "Entry Price"
	FieldExitPrice       = "Exit Price"
	FieldLastTradedPrice = "LTP"
	FieldLotSize         = "Lot Size"
	FieldQuantity        = "Quantity"
	FieldTotalQuantity   = "Total Quantity"
	FieldProfitLoss      = "Profit/Loss"
	FieldRiskReward      = "RRR"
	FieldNotional        = "Buy Size"
	FieldConfidence      = "Confidence Level"
	FieldCriteria        = "Criteria"
	FieldCurrentWave     = "Current Wave"
	FieldNotes           = "Notes"
)

// RawTrade carries one trade's worth of user-entered field values. Numeric
// fields arrive as the strings the user typed: blank means unknown, anything
// else must coerce. Dates, enums and the criteria set arrive as native types
// because the presentation layer already constrains them.
type RawTrade struct {
	TradeDate       models.Date
	Symbol          string
	Strategy        string
	OptionType      models.OptionType
	ExpiryDate      models.Date
	EntryPrice      string
	ExitPrice       string
	LastTradedPrice string
	StrikePrice     string
	LotSize         string
	Quantity        string
	Confidence      string
	Criteria        models.CriteriaList
	CurrentWave     models.Wave
	Notes           string
	Image           []byte
}

// RawFromRecord formats an existing record back into raw field values. The
// CLI uses this to pre-populate an edit, since update takes a full
// replacement rather than a partial patch.
func RawFromRecord(rec models.TradeRecord) RawTrade {
	return RawTrade{
		TradeDate:       rec.TradeDate,
		Symbol:          rec.Symbol,
		Strategy:        rec.Strategy,
		OptionType:      rec.OptionType,
		ExpiryDate:      rec.ExpiryDate,
		EntryPrice:      formatFloat(rec.EntryPrice),
		ExitPrice:       formatFloat(rec.ExitPrice),
		LastTradedPrice: formatFloat(rec.LastTradedPrice),
		StrikePrice:     formatFloat(rec.StrikePrice),
		LotSize:         formatFloat(rec.LotSize),
		Quantity:        formatInt(rec.Quantity),
		Confidence:      formatInt(rec.Confidence),
		Criteria:        append(models.CriteriaList(nil), rec.Criteria...),
		CurrentWave:     rec.CurrentWave,
		Notes:           rec.Notes,
		Image:           rec.Image,
	}
}

// TradeStore owns the ordered trade record sequence for one session. It is
// the only component that mutates the sequence, and it recomputes every
// derived field on every mutation. Single-session; not safe for concurrent
// use.
type TradeStore struct {
	mode    Mode
	records []models.TradeRecord
}

// New creates an empty store with the given derivation mode.
func New(mode Mode) *TradeStore {
	return &TradeStore{mode: mode}
}

// Mode returns the store's derivation mode.
func (s *TradeStore) Mode() Mode {
	return s.mode
}

// Len returns the number of records.
func (s *TradeStore) Len() int {
	return len(s.records)
}

// Records returns a deep copy of the record sequence in insertion order.
func (s *TradeStore) Records() []models.TradeRecord {
	out := make([]models.TradeRecord, len(s.records))
	for i, rec := range s.records {
		out[i] = rec.Clone()
	}
	return out
}

// Record returns a copy of the record at the given position.
func (s *TradeStore) Record(index int) (models.TradeRecord, error) {
	if index < 0 || index >= len(s.records) {
		return models.TradeRecord{}, errors.ErrIndexOutOfRange
	}
	return s.records[index].Clone(), nil
}

// Add coerces and validates the raw fields, computes the derived fields, and
// appends the record. On validation failure nothing is stored and the
// sequence is unchanged.
func (s *TradeStore) Add(raw RawTrade) (models.TradeRecord, error) {
	rec, err := s.coerce("add", raw)
	if err != nil {
		return models.TradeRecord{}, err
	}
	s.records = append(s.records, rec)
	return rec.Clone(), nil
}

// Update replaces the record at index with the fully resupplied raw fields.
// No field survives from the previous record except what the caller
// resupplied. Out-of-range indexes and validation failures leave the
// sequence untouched.
func (s *TradeStore) Update(index int, raw RawTrade) (models.TradeRecord, error) {
	if index < 0 || index >= len(s.records) {
		return models.TradeRecord{}, errors.ErrIndexOutOfRange
	}
	rec, err := s.coerce("update", raw)
	if err != nil {
		return models.TradeRecord{}, err
	}
	s.records[index] = rec
	return rec.Clone(), nil
}

// Delete removes the record at index. An out-of-range index is a silent
// no-op; delete is the one operation defined to ignore a bad index rather
// than signal.
func (s *TradeStore) Delete(index int) {
	if index < 0 || index >= len(s.records) {
		return
	}
	s.records = append(s.records[:index], s.records[index+1:]...)
}

// Clear unconditionally discards all records.
func (s *TradeStore) Clear() {
	s.records = nil
}

// Replace swaps in a whole new record sequence, as after an import. Derived
// fields are recomputed so the invariant holds regardless of what the caller
// supplied. Never a merge.
func (s *TradeStore) Replace(records []models.TradeRecord) {
	s.records = make([]models.TradeRecord, len(records))
	for i, rec := range records {
		cloned := rec.Clone()
		s.mode.derive(&cloned)
		s.records[i] = cloned
	}
}

// coerce turns raw field values into a fully derived record. Every numeric
// failure is collected so the operation is rejected atomically with a single
// aggregated error.
func (s *TradeStore) coerce(op string, raw RawTrade) (models.TradeRecord, error) {
	verr := &errors.ValidationErrors{Op: op}

	rec := models.TradeRecord{
		TradeDate:   raw.TradeDate,
		Symbol:      strings.ToUpper(strings.TrimSpace(raw.Symbol)),
		Strategy:    strings.TrimSpace(raw.Strategy),
		OptionType:  raw.OptionType,
		ExpiryDate:  raw.ExpiryDate,
		Criteria:    append(models.CriteriaList(nil), raw.Criteria...),
		CurrentWave: raw.CurrentWave,
		Notes:       raw.Notes,
		Image:       raw.Image,
	}

	rec.EntryPrice = parseDecimal(FieldEntryPrice, raw.EntryPrice, verr)
	rec.ExitPrice = parseDecimal(FieldExitPrice, raw.ExitPrice, verr)
	rec.LastTradedPrice = parseDecimal(FieldLastTradedPrice, raw.LastTradedPrice, verr)
	rec.StrikePrice = parseDecimal(FieldStrikePrice, raw.StrikePrice, verr)
	rec.LotSize = parseDecimal(FieldLotSize, raw.LotSize, verr)
	rec.Quantity = parseInteger(FieldQuantity, raw.Quantity, verr)
	rec.Confidence = parseInteger(FieldConfidence, raw.Confidence, verr)

	if rec.Confidence != nil && (*rec.Confidence < models.MinConfidence || *rec.Confidence > models.MaxConfidence) {
		verr.Add(errors.NewValidationError(FieldConfidence, raw.Confidence, "must be between 1 and 5"))
	}
	if !raw.OptionType.Valid() {
		verr.Add(errors.NewValidationError(FieldOptionType, string(raw.OptionType), "must be CE or PE"))
	}
	if !raw.CurrentWave.Valid() {
		verr.Add(errors.NewValidationError(FieldCurrentWave, string(raw.CurrentWave), "must be 1-5, A, B or C"))
	}

	if !verr.Empty() {
		return models.TradeRecord{}, verr
	}

	s.mode.derive(&rec)
	return rec, nil
}

func parseDecimal(field, s string, verr *errors.ValidationErrors) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		verr.Add(errors.NewValidationError(field, s, "must be a number"))
		return nil
	}
	return &v
}

func parseInteger(field, s string, verr *errors.ValidationErrors) *int {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		verr.Add(errors.NewValidationError(field, s, "must be a whole number"))
		return nil
	}
	return &v
}

func formatFloat(p *float64) string {
	if p == nil {
		return ""
	}
	return strconv.FormatFloat(*p, 'f', -1, 64)
}

func formatInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}
