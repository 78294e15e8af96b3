package journal

import (
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"trade-tracker/internal/errors"
	"trade-tracker/internal/models"
)

const wantHeader = "Trade Date,Stock/Symbol,Strategy,CE/PE,Strike Price,Expiry Date," +
	"Entry Price,Exit Price,LTP,Lot Size,Quantity,Total Quantity,Profit/Loss,RRR," +
	"Buy Size,Confidence Level,Criteria,Current Wave,Notes"

func newTestCodec() *Codec {
	return NewCodec(ModeLotSize, zerolog.Nop())
}

func TestExportHeader(t *testing.T) {
	t.Parallel()

	codec := newTestCodec()
	text, err := codec.Export(nil)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.Len(t, lines, 1)
	assert.Equal(t, wantHeader, lines[0])
}

func TestExportUnknownValuesAsEmptyCells(t *testing.T) {
	t.Parallel()

	codec := newTestCodec()
	text, err := codec.Export([]models.TradeRecord{{
		TradeDate: models.NewDate(2024, time.March, 5),
		Symbol:    "NIFTY",
	}})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "2024-03-05,NIFTY,,,,,,,,,,,,,,,,,", lines[1])
}

func TestImportDropsRowsWithUnparseableDates(t *testing.T) {
	t.Parallel()

	codec := newTestCodec()
	text := wantHeader + "\n" +
		"2024-03-05,NIFTY,,,,,100,110,,50,2,,,,,,,,\n" +
		"not a date,JUNK,,,,,1,2,,3,4,,,,,,,,\n" +
		"06 Mar 2024,BANKNIFTY,,,,,200,190,,15,1,,,,,,,,\n"

	records, dropped, err := codec.Import(text)
	require.NoError(t, err)
	assert.Equal(t, 1, dropped)
	require.Len(t, records, 2)
	assert.Equal(t, "NIFTY", records[0].Symbol)
	assert.Equal(t, "BANKNIFTY", records[1].Symbol)
	// The permissive parser normalized the second date.
	assert.Equal(t, models.NewDate(2024, time.March, 6), records[1].TradeDate)
}

func TestImportRecomputesDerivedFields(t *testing.T) {
	t.Parallel()

	codec := newTestCodec()
	// The Profit/Loss and RRR cells in the file are stale garbage; the raw
	// fields win.
	text := wantHeader + "\n" +
		"2024-03-05,NIFTY,,,,,100,110,,50,2,,999999,42,,,,,\n"

	records, dropped, err := codec.Import(text)
	require.NoError(t, err)
	assert.Zero(t, dropped)
	require.Len(t, records, 1)

	rec := records[0]
	require.NotNil(t, rec.TotalQuantity)
	assert.Equal(t, 100.0, *rec.TotalQuantity)
	require.NotNil(t, rec.ProfitLoss)
	assert.Equal(t, 1000.0, *rec.ProfitLoss)
	require.NotNil(t, rec.RiskReward)
	assert.InDelta(t, 0.1, *rec.RiskReward, 1e-12)
}

func TestImportStructuralFailure(t *testing.T) {
	t.Parallel()

	codec := newTestCodec()
	// Unterminated quote makes the document unparseable as CSV.
	text := wantHeader + "\n" +
		"2024-03-05,\"NIFTY,,,,,100,110,,50,2,,,,,,,,\n"

	records, dropped, err := codec.Import(text)
	require.Error(t, err)
	assert.True(t, errors.IsImport(err))
	assert.Nil(t, records)
	assert.Zero(t, dropped)
}

func TestImportEmptyDocument(t *testing.T) {
	t.Parallel()

	codec := newTestCodec()
	_, _, err := codec.Import("")
	require.Error(t, err)
	assert.True(t, errors.IsImport(err))
	assert.True(t, errors.Is(err, errors.ErrEmptyImport))
}

func TestImportMalformedNumericRejectsWholeImport(t *testing.T) {
	t.Parallel()

	codec := newTestCodec()
	text := wantHeader + "\n" +
		"2024-03-05,NIFTY,,,,,100,110,,50,2,,,,,,,,\n" +
		"2024-03-06,BANKNIFTY,,,,,abc,110,,50,2,,,,,,,,\n"

	records, _, err := codec.Import(text)
	require.Error(t, err)
	assert.True(t, errors.IsImport(err))
	assert.Nil(t, records)
}

func TestImportHeaderOnlyDocument(t *testing.T) {
	t.Parallel()

	codec := newTestCodec()
	records, dropped, err := codec.Import(wantHeader + "\n")
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Zero(t, dropped)
}

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()

	store := New(ModeLotSize)
	raw := sampleRaw()
	raw.LastTradedPrice = "105.25"
	raw.StrikePrice = "21500"
	raw.ExpiryDate = models.NewDate(2024, time.March, 28)
	_, err := store.Add(raw)
	require.NoError(t, err)

	partial := sampleRaw()
	partial.Symbol = "BANKNIFTY"
	partial.ExitPrice = ""
	partial.Criteria = models.CriteriaList{models.CriterionRBD, models.CriterionBAP}
	partial.Notes = "notes, with a comma and \"quotes\""
	_, err = store.Add(partial)
	require.NoError(t, err)

	codec := newTestCodec()
	text, err := codec.Export(store.Records())
	require.NoError(t, err)

	records, dropped, err := codec.Import(text)
	require.NoError(t, err)
	assert.Zero(t, dropped)
	assert.Equal(t, store.Records(), records)
}
