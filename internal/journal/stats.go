package journal

import "trade-tracker/internal/models"

// GroupStat aggregates trades sharing one symbol or strategy.
type GroupStat struct {
	Trades int
	Wins   int
	PnL    float64
}

// WinRate returns the group's win percentage.
func (g GroupStat) WinRate() float64 {
	if g.Trades == 0 {
		return 0
	}
	return float64(g.Wins) / float64(g.Trades) * 100
}

// Summary holds performance numbers over a record set. Records with an
// unknown profit/loss are counted as open and excluded from the win/loss
// math.
type Summary struct {
	Trades      int
	Open        int
	Wins        int
	Losses      int
	GrossProfit float64
	GrossLoss   float64
	LargestWin  float64
	LargestLoss float64
	BySymbol    map[string]GroupStat
	ByStrategy  map[string]GroupStat
}

// NetPnL returns gross profit plus gross loss.
func (s Summary) NetPnL() float64 {
	return s.GrossProfit + s.GrossLoss
}

// Closed returns the number of trades with a known profit/loss.
func (s Summary) Closed() int {
	return s.Wins + s.Losses
}

// WinRate returns the percentage of closed trades that won.
func (s Summary) WinRate() float64 {
	if s.Closed() == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Closed()) * 100
}

// AvgWin returns the average winning P/L.
func (s Summary) AvgWin() float64 {
	if s.Wins == 0 {
		return 0
	}
	return s.GrossProfit / float64(s.Wins)
}

// AvgLoss returns the average losing P/L (negative or zero).
func (s Summary) AvgLoss() float64 {
	if s.Losses == 0 {
		return 0
	}
	return s.GrossLoss / float64(s.Losses)
}

// ProfitFactor returns gross profit over gross loss magnitude.
func (s Summary) ProfitFactor() float64 {
	if s.GrossLoss == 0 {
		return 0
	}
	return s.GrossProfit / -s.GrossLoss
}

// Expectancy returns the average P/L per closed trade.
func (s Summary) Expectancy() float64 {
	if s.Closed() == 0 {
		return 0
	}
	return s.NetPnL() / float64(s.Closed())
}

// Summarize computes performance numbers over the record set. Pure function;
// the records are not modified.
func Summarize(records []models.TradeRecord) Summary {
	sum := Summary{
		Trades:     len(records),
		BySymbol:   make(map[string]GroupStat),
		ByStrategy: make(map[string]GroupStat),
	}

	for _, rec := range records {
		if rec.ProfitLoss == nil {
			sum.Open++
			continue
		}
		pnl := *rec.ProfitLoss
		if pnl > 0 {
			sum.Wins++
			sum.GrossProfit += pnl
			if pnl > sum.LargestWin {
				sum.LargestWin = pnl
			}
		} else {
			sum.Losses++
			sum.GrossLoss += pnl
			if pnl < sum.LargestLoss {
				sum.LargestLoss = pnl
			}
		}

		symbol := rec.Symbol
		if symbol == "" {
			symbol = "(none)"
		}
		bump(sum.BySymbol, symbol, pnl)

		strategy := rec.Strategy
		if strategy == "" {
			strategy = "Manual"
		}
		bump(sum.ByStrategy, strategy, pnl)
	}
	return sum
}

func bump(groups map[string]GroupStat, key string, pnl float64) {
	g := groups[key]
	g.Trades++
	g.PnL += pnl
	if pnl > 0 {
		g.Wins++
	}
	groups[key] = g
}
