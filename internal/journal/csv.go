package journal

import (
	"fmt"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog"

	"trade-tracker/internal/errors"
	"trade-tracker/internal/models"
)

// csvTrade is the interchange row shape. Every cell is a string so an empty
// cell maps exactly to the unknown state and numeric coercion stays under the
// codec's control rather than the CSV library's.
type csvTrade struct {
	TradeDate       string `csv:"Trade Date"`
	Symbol          string `csv:"Stock/Symbol"`
	Strategy        string `csv:"Strategy"`
	OptionType      string `csv:"CE/PE"`
	StrikePrice     string `csv:"Strike Price"`
	ExpiryDate      string `csv:"Expiry Date"`
	EntryPrice      string `csv:"Entry Price"`
	ExitPrice       string `csv:"Exit Price"`
	LastTradedPrice string `csv:"LTP"`
	LotSize         string `csv:"Lot Size"`
	Quantity        string `csv:"Quantity"`
	TotalQuantity   string `csv:"Total Quantity"`
	ProfitLoss      string `csv:"Profit/Loss"`
	RiskReward      string `csv:"RRR"`
	Notional        string `csv:"Buy Size"`
	Confidence      string `csv:"Confidence Level"`
	Criteria        string `csv:"Criteria"`
	CurrentWave     string `csv:"Current Wave"`
	Notes           string `csv:"Notes"`
}

// Codec round-trips the full record sequence through UTF-8 comma-separated
// text: header row of field names, one row per record, empty cell for every
// unknown value. The attached image blob is session-only and never
// serialized.
type Codec struct {
	mode Mode
	log  zerolog.Logger
}

// NewCodec creates a codec that recomputes derived fields under the given
// mode when importing.
func NewCodec(mode Mode, log zerolog.Logger) *Codec {
	return &Codec{mode: mode, log: log}
}

// Export serializes every record's current field values, raw and derived, as
// one tabular row each.
func (c *Codec) Export(records []models.TradeRecord) (string, error) {
	rows := make([]*csvTrade, len(records))
	for i, rec := range records {
		rows[i] = &csvTrade{
			TradeDate:       rec.TradeDate.String(),
			Symbol:          rec.Symbol,
			Strategy:        rec.Strategy,
			OptionType:      string(rec.OptionType),
			StrikePrice:     formatFloat(rec.StrikePrice),
			ExpiryDate:      rec.ExpiryDate.String(),
			EntryPrice:      formatFloat(rec.EntryPrice),
			ExitPrice:       formatFloat(rec.ExitPrice),
			LastTradedPrice: formatFloat(rec.LastTradedPrice),
			LotSize:         formatFloat(rec.LotSize),
			Quantity:        formatInt(rec.Quantity),
			TotalQuantity:   formatFloat(rec.TotalQuantity),
			ProfitLoss:      formatFloat(rec.ProfitLoss),
			RiskReward:      formatFloat(rec.RiskReward),
			Notional:        formatFloat(rec.NotionalExposure),
			Confidence:      formatInt(rec.Confidence),
			Criteria:        rec.Criteria.String(),
			CurrentWave:     string(rec.CurrentWave),
			Notes:           rec.Notes,
		}
	}

	text, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", errors.Wrap(err, "exporting trades")
	}
	return text, nil
}

// Import parses interchange text back into a record sequence. A structural
// failure (malformed tabular text, a cell that cannot coerce) rejects the
// whole import with an ImportError and returns no records, so the caller's
// journal stays untouched. A row whose date cell fails the permissive date
// parse is dropped and counted; dropped is the number of such rows. Derived
// cells in the file are ignored and recomputed from the raw fields.
func (c *Codec) Import(text string) (records []models.TradeRecord, dropped int, err error) {
	if strings.TrimSpace(text) == "" {
		return nil, 0, errors.NewImportError("empty document", errors.ErrEmptyImport)
	}

	var rows []*csvTrade
	if err := gocsv.UnmarshalString(text, &rows); err != nil {
		return nil, 0, errors.NewImportError("malformed tabular text", err)
	}

	records = make([]models.TradeRecord, 0, len(rows))
	for i, row := range rows {
		date, parseErr := models.ParseDate(row.TradeDate)
		if parseErr != nil {
			dropped++
			c.log.Warn().
				Int("row", i+1).
				Str("date", row.TradeDate).
				Msg("Dropping row with unparseable trade date")
			continue
		}

		rec, convErr := c.record(i, row, date)
		if convErr != nil {
			return nil, 0, convErr
		}
		records = append(records, rec)
	}
	return records, dropped, nil
}

// record converts one parsed row, coercing numeric cells with the same rules
// the journal applies to user input. Unlike a user edit, a malformed cell
// here is a structural defect in the document, so it fails the whole import.
func (c *Codec) record(index int, row *csvTrade, date models.Date) (models.TradeRecord, error) {
	verr := &errors.ValidationErrors{Op: "import"}

	rec := models.TradeRecord{
		TradeDate:   date,
		Symbol:      row.Symbol,
		Strategy:    row.Strategy,
		OptionType:  models.OptionType(row.OptionType),
		Criteria:    models.ParseCriteriaList(row.Criteria),
		CurrentWave: models.Wave(row.CurrentWave),
		Notes:       row.Notes,
	}

	if strings.TrimSpace(row.ExpiryDate) != "" {
		expiry, err := models.ParseDate(row.ExpiryDate)
		if err != nil {
			verr.Add(errors.NewValidationError(FieldExpiryDate, row.ExpiryDate, "must be a date"))
		} else {
			rec.ExpiryDate = expiry
		}
	}

	rec.EntryPrice = parseDecimal(FieldEntryPrice, row.EntryPrice, verr)
	rec.ExitPrice = parseDecimal(FieldExitPrice, row.ExitPrice, verr)
	rec.LastTradedPrice = parseDecimal(FieldLastTradedPrice, row.LastTradedPrice, verr)
	rec.StrikePrice = parseDecimal(FieldStrikePrice, row.StrikePrice, verr)
	rec.LotSize = parseDecimal(FieldLotSize, row.LotSize, verr)
	rec.Quantity = parseInteger(FieldQuantity, row.Quantity, verr)
	rec.Confidence = parseInteger(FieldConfidence, row.Confidence, verr)

	if !verr.Empty() {
		return models.TradeRecord{}, errors.NewImportError(fmt.Sprintf("row %d", index+1), verr)
	}

	c.mode.derive(&rec)
	return rec, nil
}
