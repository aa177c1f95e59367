package service

import (
	"context"
	"time"

	"sureshot/internal/domain"
	"sureshot/internal/logger"
	"sureshot/internal/repository"
	"sureshot/internal/state"
)

// CandidateScanner pulls rows from the configured screener sources,
// deduplicates against already-known candidates, appends the new ones to the
// shared candidate set, and routes each through the dispatcher as a buy.
type CandidateScanner interface {
	Scan(ctx context.Context) []domain.Candidate
}

func NewCandidateScanner(
	screenerRepository repository.ScreenerRepository,
	orderDispatcher OrderDispatcher,
	engineState *state.EngineState,
	sourceURLs []string,
) CandidateScanner {
	return candidateScannerHandler{
		ScreenerRepository: screenerRepository,
		OrderDispatcher:    orderDispatcher,
		EngineState:        engineState,
		SourceURLs:         sourceURLs,
	}
}

type candidateScannerHandler struct {
	ScreenerRepository repository.ScreenerRepository
	OrderDispatcher    OrderDispatcher
	EngineState        *state.EngineState
	SourceURLs         []string
}

// Scan returns the batch of newly discovered candidates. An empty batch is
// not an error. A failing source is skipped; the remaining sources are still
// attempted.
func (h candidateScannerHandler) Scan(ctx context.Context) []domain.Candidate {
	log := logger.FromContext(ctx)

	batch := []domain.Candidate{}
	seen := map[string]struct{}{}

	for _, url := range h.SourceURLs {
		rows, err := h.ScreenerRepository.FetchRows(ctx, url)
		if err != nil {
			log.Errorw("screener source failed", "source", url, "error", err)
			continue
		}
		log.Infow("screener rows fetched", "source", url, "rows", len(rows))

		for _, row := range rows {
			if !domain.IsValidSymbol(row.Symbol) {
				continue
			}
			symbol := domain.CleanSymbol(row.Symbol)
			if _, ok := seen[symbol]; ok {
				continue
			}
			if h.EngineState.HasCandidate(symbol) {
				continue
			}
			seen[symbol] = struct{}{}
			batch = append(batch, domain.Candidate{
				Symbol:       symbol,
				Name:         row.Name,
				CurrentPrice: row.Price,
				DiscoveredAt: time.Now().UTC(),
			})
		}
	}

	if len(batch) == 0 {
		log.Info("no new candidates identified")
		return batch
	}

	// append under the state lock, then dispatch outside it so no network
	// call ever runs with the lock held
	h.EngineState.AddCandidates(batch)
	for _, candidate := range batch {
		h.OrderDispatcher.Dispatch(ctx, DispatchInput{
			Symbol:       candidate.Symbol,
			Side:         domain.OrderSideBuy,
			CurrentPrice: candidate.CurrentPrice,
		})
	}

	log.Infow("new candidates identified", "count", len(batch))
	return batch
}
