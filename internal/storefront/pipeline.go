// internal/storefront/pipeline.go
package storefront

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ateliernord/gallery/internal/models"
)

// DefaultDebounce is the quiescence window after the last input change
// before a query is issued.
const DefaultDebounce = 200 * time.Millisecond

// Querier executes a catalog query for the given criteria.
type Querier interface {
	ListArtworks(ctx context.Context, criteria models.FilterCriteria) ([]models.Artwork, error)
}

// ResultState is what pipeline observers receive: the current result set and
// whether a query is in flight.
type ResultState struct {
	Items   []models.Artwork
	Loading bool
}

// FilterPipeline coalesces three independently-changing filter inputs into a
// single debounced query stream. Rapid input changes collapse into one
// request; consecutive identical triples are de-duplicated; and each issued
// query carries a generation number so that a superseded query's result is
// discarded on arrival instead of overwriting fresher state. There is no
// abort signal for in-flight queries.
type FilterPipeline struct {
	querier  Querier
	debounce time.Duration

	mu         sync.Mutex
	criteria   models.FilterCriteria
	lastIssued *models.FilterCriteria
	timer      *time.Timer
	gen        uint64
	state      ResultState
	subs       map[int]func(ResultState)
	nextSub    int
	closed     bool
}

type PipelineOption func(*FilterPipeline)

// WithDebounce overrides the debounce window; tests use short windows.
func WithDebounce(d time.Duration) PipelineOption {
	return func(p *FilterPipeline) { p.debounce = d }
}

func NewFilterPipeline(querier Querier, opts ...PipelineOption) *FilterPipeline {
	p := &FilterPipeline{
		querier:  querier,
		debounce: DefaultDebounce,
		subs:     make(map[int]func(ResultState)),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Start seeds the pipeline with the current (empty) inputs so the catalog
// populates without user interaction. It runs through the normal debounce
// cycle like any other input change.
func (p *FilterPipeline) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.restartDebounceLocked()
}

// SetQuery updates the free-text input and restarts the debounce window.
func (p *FilterPipeline) SetQuery(q string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.criteria.Query = q
	p.restartDebounceLocked()
}

// SetStyle updates the style input and restarts the debounce window.
func (p *FilterPipeline) SetStyle(style string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.criteria.Style = style
	p.restartDebounceLocked()
}

// SetMaxPrice updates the price bound and restarts the debounce window.
// A value <= 0 clears the bound.
func (p *FilterPipeline) SetMaxPrice(maxPrice float64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.criteria.MaxPrice = maxPrice
	p.restartDebounceLocked()
}

// ClearFilters resets all three inputs in one atomic action, triggering a
// single debounce-and-query cycle.
func (p *FilterPipeline) ClearFilters() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.criteria = models.FilterCriteria{}
	p.restartDebounceLocked()
}

// Criteria returns the current input triple.
func (p *FilterPipeline) Criteria() models.FilterCriteria {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.criteria
}

// Snapshot returns the current result state.
func (p *FilterPipeline) Snapshot() ResultState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Subscribe registers fn and immediately replays the current result state.
// fn runs synchronously on the publishing goroutine and must not call back
// into the pipeline. The returned func cancels the subscription.
func (p *FilterPipeline) Subscribe(fn func(ResultState)) func() {
	p.mu.Lock()
	id := p.nextSub
	p.nextSub++
	p.subs[id] = fn
	fn(p.state)
	p.mu.Unlock()

	return func() {
		p.mu.Lock()
		delete(p.subs, id)
		p.mu.Unlock()
	}
}

// Close stops the pending debounce timer. Results of queries already in
// flight are still discarded by the generation check.
func (p *FilterPipeline) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.closed = true
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
}

func (p *FilterPipeline) restartDebounceLocked() {
	if p.closed {
		return
	}
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(p.debounce, p.fire)
}

// fire runs when the debounce window elapses without further input changes.
func (p *FilterPipeline) fire() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}

	triple := p.criteria
	if p.lastIssued != nil && triple == *p.lastIssued {
		// Identical to the previously issued triple, nothing to do.
		p.mu.Unlock()
		return
	}

	issued := triple
	p.lastIssued = &issued
	p.gen++
	gen := p.gen
	p.state.Loading = true
	p.notifyLocked()
	p.mu.Unlock()

	go p.run(gen, triple)
}

func (p *FilterPipeline) run(gen uint64, criteria models.FilterCriteria) {
	items, err := p.querier.ListArtworks(context.Background(), criteria)

	p.mu.Lock()
	defer p.mu.Unlock()

	if gen != p.gen {
		// Superseded: a newer query was issued while this one was in flight.
		return
	}

	if err != nil {
		logrus.WithError(err).Warn("Catalog query failed, keeping previous results")
		p.state.Loading = false
		p.notifyLocked()
		return
	}

	p.state = ResultState{Items: items, Loading: false}
	p.notifyLocked()
}

func (p *FilterPipeline) notifyLocked() {
	for _, fn := range p.subs {
		fn(p.state)
	}
}
