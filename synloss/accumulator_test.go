package synloss

import (
	"testing"

	"github.com/wafermap/neurocore/coord"
)

func TestRealizeAndLoseRecordWeights(t *testing.T) {
	a := New()
	chip := coord.HICANNOnWafer{X: 1, Y: 1}

	a.Realize("exc", SynapseIndex{Pre: 0, Post: 0}, chip, 0.5)
	a.Lose("exc", SynapseIndex{Pre: 0, Post: 1}, chip)

	if w, ok := a.Weight("exc", SynapseIndex{Pre: 0, Post: 0}); !ok || w != 0.5 {
		t.Fatalf("expected realised weight 0.5, got %v, %v", w, ok)
	}
	if !a.Lost("exc", SynapseIndex{Pre: 0, Post: 1}) {
		t.Fatal("expected the second synapse to be marked lost")
	}

	tally := a.Tally(chip)
	if tally.Pre != 2 || tally.Post != 2 || tally.Set != 1 {
		t.Fatalf("unexpected tally: %+v", tally)
	}
}

func TestMergeUnionsDisjointPartials(t *testing.T) {
	chipA := coord.HICANNOnWafer{X: 1, Y: 1}
	chipB := coord.HICANNOnWafer{X: 2, Y: 1}

	a := New()
	a.Realize("exc", SynapseIndex{Pre: 0, Post: 0}, chipA, 1.0)

	b := New()
	b.Realize("exc", SynapseIndex{Pre: 1, Post: 0}, chipB, 2.0)

	if err := a.Merge(b); err != nil {
		t.Fatalf("unexpected merge error: %v", err)
	}
	if w, ok := a.Weight("exc", SynapseIndex{Pre: 1, Post: 0}); !ok || w != 2.0 {
		t.Fatalf("expected merged weight 2.0, got %v, %v", w, ok)
	}
	if a.Tally(chipB).Set != 1 {
		t.Fatalf("expected chip B tally merged in, got %+v", a.Tally(chipB))
	}
}

func TestMergeRejectsDuplicateClaim(t *testing.T) {
	chip := coord.HICANNOnWafer{X: 1, Y: 1}

	a := New()
	a.Realize("exc", SynapseIndex{Pre: 0, Post: 0}, chip, 1.0)

	b := New()
	b.Realize("exc", SynapseIndex{Pre: 0, Post: 0}, chip, 9.0)

	if err := a.Merge(b); err != ErrDuplicateSynapseClaim {
		t.Fatalf("expected ErrDuplicateSynapseClaim, got %v", err)
	}
}
