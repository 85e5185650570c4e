package ecs

import (
	"testing"

	"github.com/milk9111/gemrunner/ecs/component"
)

func TestWorldEntityLifecycle(t *testing.T) {
	cases := []struct {
		name         string
		create       int
		destroyIndex int // -1 = none
	}{
		{"single", 1, 0},
		{"three_create_destroy_middle", 3, 1},
		{"none_destroy", 2, -1},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			w := NewWorld()
			ents := make([]Entity, 0, c.create)
			for i := 0; i < c.create; i++ {
				ents = append(ents, CreateEntity(w))
			}
			if len(Entities(w)) != c.create {
				t.Fatalf("expected %d entities, got %d", c.create, len(Entities(w)))
			}
			if c.destroyIndex >= 0 {
				if !DestroyEntity(w, ents[c.destroyIndex]) {
					t.Fatalf("DestroyEntity should return true for alive entity")
				}
				if IsAlive(w, ents[c.destroyIndex]) {
					t.Fatalf("entity should not be alive after destruction")
				}
				if len(Entities(w)) != c.create-1 {
					t.Fatalf("expected %d entities after destroy, got %d", c.create-1, len(Entities(w)))
				}
			}
		})
	}
}

func TestWorldStaleHandleAfterReuse(t *testing.T) {
	w := NewWorld()
	first := CreateEntity(w)
	if !DestroyEntity(w, first) {
		t.Fatalf("DestroyEntity should return true")
	}
	second := CreateEntity(w)
	if first == second {
		t.Fatalf("reused slot must carry a new generation")
	}
	if IsAlive(w, first) {
		t.Fatalf("stale handle should not be alive")
	}
	if !IsAlive(w, second) {
		t.Fatalf("fresh handle should be alive")
	}
	if DestroyEntity(w, first) {
		t.Fatalf("destroying a stale handle should be a no-op")
	}
	if !IsAlive(w, second) {
		t.Fatalf("stale destroy must not kill the reused slot")
	}
}

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestWorldComponentsAndQueries(t *testing.T) {
	t.Run("component_table", func(t *testing.T) {
		w := NewWorld()

		h1 := component.NewComponent[int]()
		h2 := component.NewComponent[string]()

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)

		tests := []struct {
			name     string
			setup    func() error
			check    func(t *testing.T)
			teardown func() bool
		}{
			{
				name:  "add_int_to_e1",
				setup: func() error { return Add(w, e1, h1.Kind(), intPtr(10)) },
				check: func(t *testing.T) {
					v, ok := Get(w, e1, h1.Kind())
					if !ok || *v != 10 {
						t.Fatalf("expected 10, got %v ok=%v", v, ok)
					}
				},
				teardown: func() bool { return Remove(w, e1, h1.Kind()) },
			},
			{
				name:  "add_string_to_e2",
				setup: func() error { return Add(w, e2, h2.Kind(), stringPtr("gem")) },
				check: func(t *testing.T) {
					if !Has(w, e2, h2.Kind()) {
						t.Fatalf("expected e2 to have string component")
					}
					if Has(w, e1, h2.Kind()) {
						t.Fatalf("e1 should not have string component")
					}
				},
				teardown: func() bool { return Remove(w, e2, h2.Kind()) },
			},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				if err := tc.setup(); err != nil {
					t.Fatalf("setup: %v", err)
				}
				tc.check(t)
				if !tc.teardown() {
					t.Fatalf("teardown remove should report true")
				}
			})
		}
	})

	t.Run("add_errors", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		dead := CreateEntity(w)
		DestroyEntity(w, dead)
		if err := Add(w, dead, h.Kind(), intPtr(1)); err == nil {
			t.Fatalf("expected error adding to dead entity")
		}

		e := CreateEntity(w)
		if err := Add(w, e, h.Kind(), nil); err == nil {
			t.Fatalf("expected error adding nil component")
		}
	})

	t.Run("first_and_count", func(t *testing.T) {
		w := NewWorld()
		h := component.NewComponent[int]()

		if _, ok := First(w, h.Kind()); ok {
			t.Fatalf("First on empty store should report false")
		}

		e1 := CreateEntity(w)
		e2 := CreateEntity(w)
		if err := Add(w, e1, h.Kind(), intPtr(1)); err != nil {
			t.Fatalf("add: %v", err)
		}
		if err := Add(w, e2, h.Kind(), intPtr(2)); err != nil {
			t.Fatalf("add: %v", err)
		}

		if Count(w, h.Kind()) != 2 {
			t.Fatalf("expected count 2, got %d", Count(w, h.Kind()))
		}
		if _, ok := First(w, h.Kind()); !ok {
			t.Fatalf("First should find an entity")
		}

		DestroyEntity(w, e1)
		if Count(w, h.Kind()) != 1 {
			t.Fatalf("expected count 1 after destroy, got %d", Count(w, h.Kind()))
		}
	})
}

func TestWorldForEach(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	labels := component.NewComponent[string]()
	flags := component.NewComponent[bool]()

	e1 := CreateEntity(w)
	e2 := CreateEntity(w)
	e3 := CreateEntity(w)

	for _, pair := range []struct {
		e Entity
		v int
	}{{e1, 1}, {e2, 2}, {e3, 3}} {
		if err := Add(w, pair.e, ints.Kind(), intPtr(pair.v)); err != nil {
			t.Fatalf("add int: %v", err)
		}
	}
	if err := Add(w, e2, labels.Kind(), stringPtr("two")); err != nil {
		t.Fatalf("add label: %v", err)
	}
	if err := Add(w, e2, flags.Kind(), new(bool)); err != nil {
		t.Fatalf("add flag: %v", err)
	}

	t.Run("single", func(t *testing.T) {
		sum := 0
		ForEach(w, ints.Kind(), func(_ Entity, v *int) {
			sum += *v
		})
		if sum != 6 {
			t.Fatalf("expected sum 6, got %d", sum)
		}
	})

	t.Run("two_components_intersection", func(t *testing.T) {
		visited := 0
		ForEach2(w, ints.Kind(), labels.Kind(), func(e Entity, v *int, s *string) {
			visited++
			if e != e2 || *v != 2 || *s != "two" {
				t.Fatalf("unexpected row: entity=%v v=%d s=%s", e, *v, *s)
			}
		})
		if visited != 1 {
			t.Fatalf("expected 1 visit, got %d", visited)
		}
	})

	t.Run("three_components_intersection", func(t *testing.T) {
		visited := 0
		ForEach3(w, ints.Kind(), labels.Kind(), flags.Kind(), func(e Entity, _ *int, _ *string, _ *bool) {
			visited++
			if e != e2 {
				t.Fatalf("unexpected entity %v", e)
			}
		})
		if visited != 1 {
			t.Fatalf("expected 1 visit, got %d", visited)
		}
	})

	t.Run("destroy_during_iteration", func(t *testing.T) {
		ForEach(w, ints.Kind(), func(e Entity, _ *int) {
			if e == e1 {
				DestroyEntity(w, e3)
			}
		})
		if IsAlive(w, e3) {
			t.Fatalf("e3 should be destroyed")
		}
	})
}
