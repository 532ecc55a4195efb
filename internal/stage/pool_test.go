package stage

import (
	"reflect"
	"testing"
)

func values(p *Pool[int]) []int {
	var out []int
	p.Each(func(v *int) { out = append(out, *v) })
	return out
}

func TestPoolSweepPreservesOrder(t *testing.T) {
	var p Pool[int]
	for i := range 6 {
		p.Add(i)
	}

	p.Sweep(func(v *int) bool { return *v%2 == 0 })

	if got := values(&p); !reflect.DeepEqual(got, []int{0, 2, 4}) {
		t.Errorf("after sweep = %v", got)
	}
	if *p.Last() != 4 {
		t.Errorf("Last() = %d, expected 4", *p.Last())
	}
}

func TestPoolRemoveLastThenAdd(t *testing.T) {
	var p Pool[int]
	p.Add(1)
	p.Add(2)

	p.Sweep(func(v *int) bool { return *v != 2 })
	if *p.Last() != 1 {
		t.Fatalf("Last() = %d after removing tail, expected 1", *p.Last())
	}

	p.Add(3)
	if got := values(&p); !reflect.DeepEqual(got, []int{1, 3}) {
		t.Errorf("after append = %v", got)
	}
	if *p.Last() != 3 {
		t.Errorf("Last() = %d, expected 3", *p.Last())
	}
}

func TestPoolEmpty(t *testing.T) {
	var p Pool[int]
	if p.Last() != nil || p.Len() != 0 {
		t.Error("zero pool should be empty")
	}

	p.Add(7)
	p.Sweep(func(*int) bool { return false })
	if p.Last() != nil || p.Len() != 0 {
		t.Error("pool should be empty after removing everything")
	}

	p.Add(8)
	if *p.Last() != 8 {
		t.Error("append after full removal should work")
	}
	p.Clear()
	if p.Len() != 0 {
		t.Error("Clear should drop everything")
	}
}

func TestPoolSweepVisitsAppended(t *testing.T) {
	var p Pool[int]
	p.Add(1)
	p.Add(2)

	visited := 0
	p.Sweep(func(v *int) bool {
		visited++
		keep := *v != 1
		if *v < 3 {
			p.Add(*v + 10)
		}
		return keep
	})

	if visited != 4 {
		t.Errorf("visited %d items, expected 4", visited)
	}
	if got := values(&p); !reflect.DeepEqual(got, []int{2, 11, 12}) {
		t.Errorf("after sweep = %v", got)
	}
}
