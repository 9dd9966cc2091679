package game

import (
	"math/rand/v2"
	"testing"
)

func testRng() *rand.Rand {
	return rand.New(rand.NewPCG(7, 13))
}

func TestPickRandomEmptyPool(t *testing.T) {
	if got := PickRandom(testRng(), Catalog{}, 0); got != nil {
		t.Fatalf("expected nil from empty pool, got %+v", got)
	}
}

func TestPickRandomAvoidsExcluded(t *testing.T) {
	pool := Catalog{
		{ID: 1, Name: "a"},
		{ID: 2, Name: "b"},
		{ID: 3, Name: "c"},
	}

	rng := testRng()
	for range 200 {
		got := PickRandom(rng, pool, 2)
		if got == nil {
			t.Fatal("got nil from non-empty pool")
		}
		if got.ID == 2 {
			t.Fatalf("picked the excluded creature: %+v", got)
		}
	}
}

func TestPickRandomGuardExhaustion(t *testing.T) {
	// the only member is excluded; the guard runs out and the last draw is
	// returned instead of looping forever
	pool := Catalog{{ID: 1, Name: "a"}}

	got := PickRandom(testRng(), pool, 1)
	if got == nil {
		t.Fatal("expected the last draw after guard exhaustion, got nil")
	}
	if got.ID != 1 {
		t.Fatalf("unexpected creature %+v", got)
	}
}

func TestSampleWhere(t *testing.T) {
	pool := []int{1, 2, 3, 4, 5, 6}

	even, ok := SampleWhere(testRng(), pool, 40, func(n int) bool { return n%2 == 0 })
	if !ok {
		t.Fatal("expected to find an even number")
	}
	if even%2 != 0 {
		t.Fatalf("predicate not satisfied: %d", even)
	}

	if _, ok := SampleWhere(testRng(), pool, 40, func(n int) bool { return n > 100 }); ok {
		t.Fatal("expected infeasible predicate to report failure")
	}

	if _, ok := SampleWhere(testRng(), []int{}, 40, func(int) bool { return true }); ok {
		t.Fatal("expected empty pool to report failure")
	}
}
