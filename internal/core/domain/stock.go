package domain

// StockDay is the per-date inventory movement record. All four mappings are
// sparse (absent key = zero) and the record is always persisted as one unit
// so stockOut and stockRemaining are never visible out of step.
//
// StockIn and StockDead are entered manually; StockOut and StockRemaining
// are derived and must never be authored directly.
type StockDay struct {
	Date           string           `json:"date"`
	StockIn        map[string]int64 `json:"stockIn"`
	StockOut       map[string]int64 `json:"stockOut"`
	StockDead      map[string]int64 `json:"stockDead"`
	StockRemaining map[string]int64 `json:"stockRemaining"`
}

// NewStockDay returns an all-zero stock record for a date. Records are
// created lazily on first read when absent from the store.
func NewStockDay(date string) *StockDay {
	return &StockDay{
		Date:           date,
		StockIn:        map[string]int64{},
		StockOut:       map[string]int64{},
		StockDead:      map[string]int64{},
		StockRemaining: map[string]int64{},
	}
}

// Recompute derives StockOut from the day's transactions and StockRemaining
// as max(0, in − out − dead) per product. It mutates the receiver in place.
func (s *StockDay) Recompute(transactions []DailyTransaction) {
	out := map[string]int64{}
	for _, txn := range transactions {
		for product, qty := range txn.Items {
			if qty > 0 {
				out[product] += qty
			}
		}
	}
	s.StockOut = out

	remaining := map[string]int64{}
	for product := range s.productUnion() {
		r := s.StockIn[product] - s.StockOut[product] - s.StockDead[product]
		SetOrRemove(remaining, product, r)
	}
	s.StockRemaining = remaining
}

// productUnion collects every product named by any of the three input
// movements for this date.
func (s *StockDay) productUnion() map[string]struct{} {
	union := map[string]struct{}{}
	for product := range s.StockIn {
		union[product] = struct{}{}
	}
	for product := range s.StockOut {
		union[product] = struct{}{}
	}
	for product := range s.StockDead {
		union[product] = struct{}{}
	}
	return union
}
