package protocol

import (
	"context"
)

// MockProvider implements the InputProvider interface for testing purposes.
// By default it plays back a scripted list of contributions and cancels when
// the script runs out; behavior can be customized by setting a function
// implementation.
type MockProvider struct {
	contributions    []int
	next             int
	contributionFunc func(ctx context.Context, purpose string, width int) (int, error)
}

// NewMockProvider creates a mock provider that returns the given
// contributions in order. Once exhausted it returns ErrCancelled, which
// conveniently terminates orchestrator tests.
func NewMockProvider(contributions ...int) *MockProvider {
	m := &MockProvider{contributions: contributions}
	m.contributionFunc = func(ctx context.Context, purpose string, width int) (int, error) {
		if m.next >= len(m.contributions) {
			return 0, ErrCancelled
		}
		v := m.contributions[m.next]
		m.next++
		return v, nil
	}
	return m
}

// Contribution implements the InputProvider interface.
func (m *MockProvider) Contribution(ctx context.Context, purpose string, width int) (int, error) {
	return m.contributionFunc(ctx, purpose, width)
}

// SetContributionFunc allows customization of the Contribution
// implementation.
func (m *MockProvider) SetContributionFunc(fn func(ctx context.Context, purpose string, width int) (int, error)) {
	m.contributionFunc = fn
}
