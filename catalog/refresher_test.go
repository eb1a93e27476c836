package catalog

import (
	"context"
	"runtime"
	"testing"

	"github.com/Lounge-Area/fivemshop/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// gatedLister blocks each ListProducts call on a per-search-term gate
// so a test can decide the completion order of in-flight requests.
type gatedLister struct {
	gates map[string]chan []models.Product
}

func (l *gatedLister) ListProducts(_ context.Context, f ProductFilter) []models.Product {
	return <-l.gates[f.SearchTerm]
}

func (l *gatedLister) gate(term string) chan []models.Product {
	if l.gates == nil {
		l.gates = make(map[string]chan []models.Product)
	}
	ch := make(chan []models.Product, 1)
	l.gates[term] = ch
	return ch
}

func TestRefresherAppliesLatestResult(t *testing.T) {
	lister := &gatedLister{}
	gate := lister.gate("")
	r := NewRefresher(lister)

	gate <- []models.Product{{ID: "fresh"}}
	r.Refresh(context.Background(), ProductFilter{})

	got := r.Products()
	require.Len(t, got, 1)
	assert.Equal(t, "fresh", got[0].ID)
}

func TestRefresherDropsStaleResult(t *testing.T) {
	lister := &gatedLister{}
	firstGate := lister.gate("pi")
	secondGate := lister.gate("pistol")
	r := NewRefresher(lister)

	// First request goes in flight and blocks on its gate.
	firstDone := make(chan struct{})
	go func() {
		r.Refresh(context.Background(), ProductFilter{SearchTerm: "pi"})
		close(firstDone)
	}()
	waitForSeq(r, 1)

	// A newer request supersedes it and completes first.
	secondDone := make(chan struct{})
	go func() {
		r.Refresh(context.Background(), ProductFilter{SearchTerm: "pistol"})
		close(secondDone)
	}()
	waitForSeq(r, 2)

	secondGate <- []models.Product{{ID: "newer"}}
	<-secondDone

	// The stale first request completes last; its result must not
	// overwrite the newer view.
	firstGate <- []models.Product{{ID: "stale"}}
	<-firstDone

	got := r.Products()
	require.Len(t, got, 1)
	assert.Equal(t, "newer", got[0].ID)
}

func waitForSeq(r *Refresher, want uint64) {
	for {
		r.mu.Lock()
		seq := r.seq
		r.mu.Unlock()
		if seq >= want {
			return
		}
		runtime.Gosched()
	}
}
