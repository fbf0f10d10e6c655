package vector

import (
	"errors"
	"slices"
	"testing"
)

func TestPushPopAccounting(t *testing.T) {
	v := New[int]()

	pushes, pops := 0, 0
	lastCap := 0
	script := []int{1, 1, 1, -1, 1, 1, -1, -1, 1, 1, 1, 1, -1}

	for _, op := range script {
		if op > 0 {
			if err := v.PushBack(pushes); err != nil {
				t.Fatal(err)
			}
			pushes++
		} else {
			v.PopBack()
			pops++
		}
		if v.Cap() < lastCap {
			t.Errorf("capacity shrank from %d to %d", lastCap, v.Cap())
		}
		lastCap = v.Cap()
	}

	if v.Len() != pushes-pops {
		t.Errorf("Len() = %d, want pushes-pops = %d", v.Len(), pushes-pops)
	}
}

func TestGrowthDoubling(t *testing.T) {
	v := New[int]()
	wantCaps := []int{1, 2, 4, 4, 8, 8, 8, 8, 16}

	for i, want := range wantCaps {
		if err := v.PushBack(i); err != nil {
			t.Fatal(err)
		}
		if v.Cap() != want {
			t.Errorf("Cap() after push %d = %d, want %d", i+1, v.Cap(), want)
		}
	}
}

// The reference walkthrough: three pushes, one erase, one insert.
func TestScenario(t *testing.T) {
	v := New[int]()

	steps := []struct {
		value   int
		wantLen int
		wantCap int
	}{
		{1, 1, 1},
		{2, 2, 2},
		{3, 3, 4},
	}
	for _, s := range steps {
		if err := v.PushBack(s.value); err != nil {
			t.Fatal(err)
		}
		if v.Len() != s.wantLen || v.Cap() != s.wantCap {
			t.Errorf("after PushBack(%d) len/cap = %d/%d, want %d/%d",
				s.value, v.Len(), v.Cap(), s.wantLen, s.wantCap)
		}
	}

	v.Erase(1)
	if !slices.Equal(v.Slice(), []int{1, 3}) {
		t.Fatalf("after Erase(1) = %v, want [1 3]", v.Slice())
	}

	if err := v.Insert(1, 9); err != nil {
		t.Fatal(err)
	}
	if !slices.Equal(v.Slice(), []int{1, 9, 3}) {
		t.Errorf("after Insert(1, 9) = %v, want [1 9 3]", v.Slice())
	}
	if v.Len() != 3 {
		t.Errorf("Len() = %d, want 3", v.Len())
	}
}

func TestEmplaceBack(t *testing.T) {
	v := New[int]()

	p, err := v.EmplaceBack(func() (int, error) { return 7, nil })
	if err != nil {
		t.Fatal(err)
	}
	if *p != 7 {
		t.Errorf("*EmplaceBack() = %d, want 7", *p)
	}
	*p = 8
	if got := *v.At(0); got != 8 {
		t.Errorf("element after write through returned address = %d, want 8", got)
	}
}

func TestEmplaceBackConstructError(t *testing.T) {
	boom := errors.New("boom")
	v := New[int]()
	if err := v.PushBack(1); err != nil {
		t.Fatal(err)
	}
	wantCap := v.Cap()

	// At capacity, so the factory runs on the growth path.
	_, err := v.EmplaceBack(func() (int, error) { return 0, boom })
	if !errors.Is(err, boom) {
		t.Fatalf("EmplaceBack error = %v, want wrapped boom", err)
	}
	if v.Len() != 1 || v.Cap() != wantCap {
		t.Errorf("len/cap after failed emplace = %d/%d, want 1/%d", v.Len(), v.Cap(), wantCap)
	}
	if !slices.Equal(v.Slice(), []int{1}) {
		t.Errorf("elements after failed emplace = %v, want [1]", v.Slice())
	}
}

func TestInsertOrder(t *testing.T) {
	tests := []struct {
		name    string
		reserve int // extra capacity up front; 0 forces growth on insert
		pos     int
		want    []int
	}{
		{"front with room", 8, 0, []int{9, 1, 2, 3}},
		{"middle with room", 8, 1, []int{1, 9, 2, 3}},
		{"end with room", 8, 3, []int{1, 2, 3, 9}},
		{"front growing", 0, 0, []int{9, 1, 2, 3}},
		{"middle growing", 0, 2, []int{1, 2, 9, 3}},
		{"end growing", 0, 3, []int{1, 2, 3, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New[int]()
			if tt.reserve > 0 {
				if err := v.Reserve(tt.reserve); err != nil {
					t.Fatal(err)
				}
			} else {
				// Fill to exactly size == capacity.
				if err := v.Reserve(3); err != nil {
					t.Fatal(err)
				}
			}
			for i := 1; i <= 3; i++ {
				if err := v.PushBack(i); err != nil {
					t.Fatal(err)
				}
			}

			if err := v.Insert(tt.pos, 9); err != nil {
				t.Fatal(err)
			}
			if !slices.Equal(v.Slice(), tt.want) {
				t.Errorf("elements = %v, want %v", v.Slice(), tt.want)
			}
		})
	}
}

func TestInsertGrowsByDoubling(t *testing.T) {
	v := New[int]()
	if err := v.Reserve(4); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		if err := v.PushBack(i); err != nil {
			t.Fatal(err)
		}
	}

	if err := v.Insert(2, 99); err != nil {
		t.Fatal(err)
	}
	if v.Cap() != 8 {
		t.Errorf("Cap() after growing insert = %d, want 8", v.Cap())
	}
	if !slices.Equal(v.Slice(), []int{0, 1, 99, 2, 3}) {
		t.Errorf("elements = %v, want [0 1 99 2 3]", v.Slice())
	}
}

func TestEmplaceReturnsAddress(t *testing.T) {
	v := New[int]()
	for i := 1; i <= 3; i++ {
		if err := v.PushBack(i); err != nil {
			t.Fatal(err)
		}
	}

	p, err := v.Emplace(1, func() (int, error) { return 42, nil })
	if err != nil {
		t.Fatal(err)
	}
	if *p != 42 || p != v.At(1) {
		t.Errorf("Emplace returned %d at %p, want 42 at %p", *p, p, v.At(1))
	}
}

func TestErase(t *testing.T) {
	tests := []struct {
		name string
		pos  int
		want []int
	}{
		{"front", 0, []int{2, 3, 4}},
		{"middle", 2, []int{1, 2, 4}},
		{"back", 3, []int{1, 2, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := New[int]()
			for i := 1; i <= 4; i++ {
				if err := v.PushBack(i); err != nil {
					t.Fatal(err)
				}
			}
			wantCap := v.Cap()

			v.Erase(tt.pos)

			if !slices.Equal(v.Slice(), tt.want) {
				t.Errorf("elements = %v, want %v", v.Slice(), tt.want)
			}
			if v.Cap() != wantCap {
				t.Errorf("Cap() changed by Erase: %d, want %d", v.Cap(), wantCap)
			}
		})
	}
}

func TestEraseOnlyElement(t *testing.T) {
	v := New[int]()
	if err := v.PushBack(1); err != nil {
		t.Fatal(err)
	}
	v.Erase(0)
	if v.Len() != 0 {
		t.Errorf("Len() after erasing only element = %d, want 0", v.Len())
	}
}

func TestEraseDropsElement(t *testing.T) {
	var dropped []int
	v := NewWithFuncs[int](Funcs[int]{
		Drop: func(p *int) { dropped = append(dropped, *p) },
	})
	for i := 1; i <= 3; i++ {
		if err := v.PushBack(i * 10); err != nil {
			t.Fatal(err)
		}
	}

	v.Erase(1)

	if !slices.Equal(dropped, []int{20}) {
		t.Errorf("dropped = %v, want [20] (erased element only)", dropped)
	}
	if !slices.Equal(v.Slice(), []int{10, 30}) {
		t.Errorf("elements = %v, want [10 30]", v.Slice())
	}
}

func TestPopBackDropsElement(t *testing.T) {
	var dropped []int
	v := NewWithFuncs[int](Funcs[int]{
		Drop: func(p *int) { dropped = append(dropped, *p) },
	})
	for i := 1; i <= 2; i++ {
		if err := v.PushBack(i); err != nil {
			t.Fatal(err)
		}
	}

	v.PopBack()

	if !slices.Equal(dropped, []int{2}) {
		t.Errorf("dropped = %v, want [2]", dropped)
	}
	if v.Len() != 1 {
		t.Errorf("Len() = %d, want 1", v.Len())
	}
}
