package utils

import (
	"errors"
	"sync/atomic"
	"testing"
)

func TestSplitWorkCoversAllIndexes(t *testing.T) {
	const workSize = 1000
	var seen [workSize]atomic.Bool
	err := SplitWork(4, workSize, func(workIndex uint64, routineIndex int) error {
		if seen[workIndex].Swap(true) {
			t.Errorf("index %d visited twice", workIndex)
		}
		return nil
	}, nil)
	if err != nil {
		t.Fatal(err)
	}
	for i := range seen {
		if !seen[i].Load() {
			t.Errorf("index %d never visited", i)
		}
	}
}

func TestSplitWorkPropagatesError(t *testing.T) {
	sentinel := errors.New("sentinel")
	err := SplitWork(2, 100, func(workIndex uint64, routineIndex int) error {
		if workIndex == 50 {
			return sentinel
		}
		return nil
	}, nil)
	if !errors.Is(err, sentinel) {
		t.Errorf("expected sentinel error, got %v", err)
	}
}
