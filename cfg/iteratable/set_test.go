package iteratable

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestSetAdd(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleybird.cfg")
	defer teardown()
	//
	S := NewSet(0)
	if !S.Empty() {
		t.Errorf("Expected fresh set to be empty, isn't")
	}
	S.Add(1)
	S.Add(2)
	S.Add(1) // duplicate, must be a no-op
	if S.Size() != 2 {
		t.Errorf("Expected set of size 2, got %d", S.Size())
	}
	if !S.Contains(2) {
		t.Errorf("Expected set to contain 2, doesn't")
	}
	if S.Remove(2) == nil {
		t.Errorf("Expected Remove(2) to return the item, didn't")
	}
	if S.Contains(2) {
		t.Errorf("Expected 2 to be removed from set, isn't")
	}
}

func TestSetOps(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleybird.cfg")
	defer teardown()
	//
	S := NewSet(0)
	S.Add("a")
	S.Add("b")
	R := NewSet(0)
	R.Add("b")
	R.Add("c")
	S.Union(R)
	if S.Size() != 3 {
		t.Errorf("Expected union of size 3, got %d", S.Size())
	}
	S.Difference(R)
	if S.Size() != 1 || !S.Contains("a") {
		t.Errorf("Expected difference to be {a}, is %v", S.Values())
	}
	if !S.Equals(S.Copy()) {
		t.Errorf("Expected copy of set to equal the set, doesn't")
	}
}

func TestSetIterateOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleybird.cfg")
	defer teardown()
	//
	S := NewSet(0)
	S.Add(1)
	S.Add(2)
	seen := 0
	S.IterateOnce()
	for S.Next() {
		n := S.Item().(int)
		if n < 10 { // grow the set during iteration
			S.Add(n + 10)
		}
		seen++
	}
	if seen != 4 {
		t.Errorf("Expected once-iteration to visit 4 items, visited %d", seen)
	}
	if S.Size() != 4 {
		t.Errorf("Expected set to have grown to 4 items, has %d", S.Size())
	}
}

func TestSetExhaust(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "earleybird.cfg")
	defer teardown()
	//
	S := NewSet(0)
	S.Add(1)
	S.Add(2)
	S.Add(3)
	seen := 0
	S.Exhaust()
	for S.Next() {
		seen++
	}
	if seen != 3 {
		t.Errorf("Expected exhausting iteration to visit 3 items, visited %d", seen)
	}
	if !S.Empty() {
		t.Errorf("Expected set to be drained, still has %d items", S.Size())
	}
}
