package journal

import (
	"fmt"
	"math"

	"trade-tracker/internal/models"
)

// Mode selects the risk-reward formula. The two observed deployments size the
// denominator differently; a deployment picks one and never mixes them within
// a record set.
type Mode string

const (
	// ModeLotSize divides the price move by lot_size * quantity.
	ModeLotSize Mode = "lot-size"
	// ModeNotional divides the price move by the LTP-based position value
	// (total quantity * last traded price).
	ModeNotional Mode = "notional"
)

// ParseMode validates a configured derivation mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeLotSize, ModeNotional:
		return Mode(s), nil
	case "":
		return ModeLotSize, nil
	}
	return "", fmt.Errorf("unknown derivation mode %q (must be %q or %q)", s, ModeLotSize, ModeNotional)
}

// TotalQuantity returns lot_size * quantity, or nil if either is unknown.
func TotalQuantity(lotSize *float64, quantity *int) *float64 {
	if lotSize == nil || quantity == nil {
		return nil
	}
	v := *lotSize * float64(*quantity)
	return &v
}

// ProfitLoss returns (exit - entry) * total_quantity, or nil if any operand
// is unknown.
func ProfitLoss(entry, exit, totalQuantity *float64) *float64 {
	if entry == nil || exit == nil || totalQuantity == nil {
		return nil
	}
	v := (*exit - *entry) * *totalQuantity
	return &v
}

// NotionalExposure returns total_quantity * ltp, or nil if either is unknown.
func NotionalExposure(totalQuantity, ltp *float64) *float64 {
	if totalQuantity == nil || ltp == nil {
		return nil
	}
	v := *totalQuantity * *ltp
	return &v
}

// RiskReward computes the risk-reward ratio under the given mode. A nil
// result means unknown: some dependency is blank, or the divisor is exactly
// zero. The zero divisor is a guard, never a division error.
func (m Mode) RiskReward(entry, exit, lotSize *float64, quantity *int, ltp *float64) *float64 {
	if entry == nil || exit == nil || lotSize == nil || quantity == nil {
		return nil
	}
	divisor := *lotSize * float64(*quantity)
	if m == ModeNotional {
		if ltp == nil {
			return nil
		}
		divisor *= *ltp
	}
	if divisor == 0 {
		return nil
	}
	v := math.Abs((*exit - *entry) / divisor)
	return &v
}

// derive recomputes every derived field on the record from its current raw
// fields. Stale values never survive: each output is overwritten, including
// back to nil when a dependency went blank.
func (m Mode) derive(rec *models.TradeRecord) {
	rec.TotalQuantity = TotalQuantity(rec.LotSize, rec.Quantity)
	rec.ProfitLoss = ProfitLoss(rec.EntryPrice, rec.ExitPrice, rec.TotalQuantity)
	rec.RiskReward = m.RiskReward(rec.EntryPrice, rec.ExitPrice, rec.LotSize, rec.Quantity, rec.LastTradedPrice)
	rec.NotionalExposure = NotionalExposure(rec.TotalQuantity, rec.LastTradedPrice)
}
