package memory

import (
	"context"
	"sync"

	"lead-assessment-service/internal/domain"
)

// LeadSink keeps submitted leads in memory. Used when no lead backend is configured.
type LeadSink struct {
	mu    sync.Mutex
	leads []domain.Lead
	fail  error
}

func NewLeadSink() *LeadSink {
	return &LeadSink{}
}

func (s *LeadSink) Submit(_ context.Context, lead domain.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.leads = append(s.leads, lead)
	return nil
}

// FailWith makes every following Submit return err; nil restores normal behavior.
func (s *LeadSink) FailWith(err error) {
	s.mu.Lock()
	s.fail = err
	s.mu.Unlock()
}

// Leads returns the accepted leads in submission order.
func (s *LeadSink) Leads() []domain.Lead {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Lead(nil), s.leads...)
}
