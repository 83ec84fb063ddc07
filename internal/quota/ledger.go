// Package quota tracks per-key daily usage. Counts live in memory for the
// process lifetime and reset when the UTC calendar day changes.
package quota

import (
	"sync"
	"time"
)

const dayFormat = "2006-01-02"

// Ticket is the outcome of a consume attempt.
type Ticket struct {
	Granted   bool `json:"granted"`
	Used      int  `json:"used"`
	Remaining int  `json:"remaining"`
	Limit     int  `json:"limit"`
}

// Ledger tracks per-key usage for the current UTC day. All mutation happens
// under one mutex so concurrent consumes can never over-grant.
type Ledger struct {
	mu   sync.Mutex
	day  string
	used map[string]int
	now  func() time.Time
}

// NewLedger constructs an empty ledger using the wall clock.
func NewLedger() *Ledger {
	return NewLedgerWithClock(nil)
}

// NewLedgerWithClock constructs a ledger with an injectable clock for tests.
func NewLedgerWithClock(now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{
		used: make(map[string]int),
		now:  now,
	}
}

// Consume attempts to take one ticket for key against limit. Denials do not
// mutate the ledger.
func (l *Ledger) Consume(key string, limit int) Ticket {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rollover()

	used := l.used[key]
	if used >= limit {
		return Ticket{Granted: false, Used: used, Remaining: 0, Limit: limit}
	}
	l.used[key] = used + 1
	return Ticket{Granted: true, Used: used + 1, Remaining: limit - used - 1, Limit: limit}
}

// Refund returns one previously consumed ticket for key, floored at zero.
func (l *Ledger) Refund(key string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rollover()

	if l.used[key] > 0 {
		l.used[key]--
	}
}

// Used reports the current count for key without consuming.
func (l *Ledger) Used(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.rollover()
	return l.used[key]
}

// rollover clears all counts when the UTC day has changed. Caller holds mu.
func (l *Ledger) rollover() {
	today := l.now().UTC().Format(dayFormat)
	if l.day != today {
		l.day = today
		l.used = make(map[string]int)
	}
}
