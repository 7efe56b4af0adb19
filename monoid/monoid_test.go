package monoid

import "testing"

// laws checks identity and associativity for all combinations of xs.
func laws[V any, A comparable](t *testing.T, name string, zero func() A, from func(V) A, add func(A, A) A, xs []V) {
	t.Helper()
	for _, x := range xs {
		a := from(x)
		if add(zero(), a) != a || add(a, zero()) != a {
			t.Errorf("%s: Zero is not neutral for %v", name, a)
		}
	}
	for _, x := range xs {
		for _, y := range xs {
			for _, z := range xs {
				a, b, c := from(x), from(y), from(z)
				if add(add(a, b), c) != add(a, add(b, c)) {
					t.Errorf("%s: Add is not associative for %v, %v, %v", name, a, b, c)
				}
			}
		}
	}
}

func TestSum(t *testing.T) {
	m := Sum[int]{}
	laws(t, "Sum", m.Zero, m.FromValue, m.Add, []int{-3, 0, 1, 7, 100})
	if m.Add(m.FromValue(2), m.FromValue(40)) != 42 {
		t.Errorf("2 + 40 != 42")
	}
}

func TestMinMax(t *testing.T) {
	lo, hi := Min[int]{}, Max[int]{}
	xs := []int{-5, 0, 3, 3, 12}
	laws(t, "Min", lo.Zero, lo.FromValue, lo.Add, xs)
	laws(t, "Max", hi.Zero, hi.FromValue, hi.Add, xs)
	a, b := lo.FromValue(4), lo.FromValue(-1)
	if got := lo.Add(a, b); got != b {
		t.Errorf("Min(4, -1) = %+v", got)
	}
	if got := hi.Add(a, b); got != a {
		t.Errorf("Max(4, -1) = %+v", got)
	}
	if lo.Zero().Valid || hi.Add(hi.Zero(), hi.Zero()).Valid {
		t.Errorf("expected Zero to be an invalid bound")
	}
}

func TestConcat(t *testing.T) {
	m := Concat{}
	laws(t, "Concat", m.Zero, m.FromValue, m.Add, []string{"", "a", "bc", "xyz"})
	if m.Add("ab", "cd") != "abcd" {
		t.Errorf("Concat does not preserve operand order")
	}
}

func TestAffine(t *testing.T) {
	m := Affine[int]{}
	fs := []Linear[int]{{A: 1, B: 0}, {A: 2, B: 1}, {A: -1, B: 3}, {A: 0, B: 5}}
	laws(t, "Affine", m.Zero, m.FromValue, m.Add, fs)
	// f(x) = 2x+1, g(x) = -x+3: g(f(4)) = -6
	f, g := fs[1], fs[2]
	if got := m.Add(f, g).Apply(4); got != g.Apply(f.Apply(4)) || got != -6 {
		t.Errorf("Add(f, g)(4) = %d, want g(f(4)) = -6", got)
	}
	if m.Zero().Apply(17) != 17 {
		t.Errorf("Zero is not the identity function")
	}
}
