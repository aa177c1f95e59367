package state

import (
	"sync"
	"time"

	"sureshot/internal/domain"

	"github.com/shopspring/decimal"
)

// EngineState owns all mutable data shared between the scheduled tasks and
// the HTTP read path: the holdings snapshot from the last reconciliation, the
// discovered-candidate list, and the acted-symbol sets that guard against
// duplicate order submission. One mutex covers everything; it is only held
// for in-memory reads and writes, never across a network call.
type EngineState struct {
	mu sync.Mutex

	holdings        []domain.Holding
	totalProfitLoss decimal.Decimal
	summary         domain.HoldingsSummary
	reconciledAt    time.Time

	candidates       []domain.Candidate
	candidateSymbols map[string]struct{}

	sold   map[string]struct{}
	bought map[string]struct{}
}

func NewEngineState() *EngineState {
	return &EngineState{
		candidateSymbols: map[string]struct{}{},
		sold:             map[string]struct{}{},
		bought:           map[string]struct{}{},
	}
}

// SetHoldings replaces the holdings snapshot with the result of a completed
// reconciliation cycle.
func (s *EngineState) SetHoldings(holdings []domain.Holding, totalProfitLoss decimal.Decimal, summary domain.HoldingsSummary, at time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.holdings = holdings
	s.totalProfitLoss = totalProfitLoss
	s.summary = summary
	s.reconciledAt = at
}

// HoldingsSnapshot returns a copy of the last reconciliation result. The
// zero-value reconciledAt means no cycle has completed yet.
func (s *EngineState) HoldingsSnapshot() ([]domain.Holding, decimal.Decimal, domain.HoldingsSummary, time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Holding, len(s.holdings))
	copy(out, s.holdings)
	return out, s.totalProfitLoss, s.summary, s.reconciledAt
}

// HasCandidate reports whether the symbol is already in the candidate set.
func (s *EngineState) HasCandidate(symbol string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.candidateSymbols[symbol]
	return ok
}

// AddCandidates appends a batch of new candidates. Symbols already present
// are ignored, so the set stays deduplicated even if two scans race.
func (s *EngineState) AddCandidates(batch []domain.Candidate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, c := range batch {
		if _, ok := s.candidateSymbols[c.Symbol]; ok {
			continue
		}
		s.candidateSymbols[c.Symbol] = struct{}{}
		s.candidates = append(s.candidates, c)
	}
}

// Candidates returns a copy of the discovered-candidate list in insertion
// order.
func (s *EngineState) Candidates() []domain.Candidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Candidate, len(s.candidates))
	copy(out, s.candidates)
	return out
}

func (s *EngineState) HasSold(symbol string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.sold[symbol]
	return ok
}

// MarkSold records a successful sell dispatch. Only called after the
// brokerage accepted the order.
func (s *EngineState) MarkSold(symbol string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sold[symbol] = struct{}{}
}

func (s *EngineState) HasBought(symbol string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.bought[symbol]
	return ok
}

// MarkBought records a successful buy dispatch.
func (s *EngineState) MarkBought(symbol string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bought[symbol] = struct{}{}
}
