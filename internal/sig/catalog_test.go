package sig

import "testing"

func resetRegistry(t *testing.T) {
	t.Helper()
	saved := registry
	registry = nil
	t.Cleanup(func() { registry = saved })
}

func TestRegisterDuplicatePanics(t *testing.T) {
	resetRegistry(t)
	Register(Signature{Name: "dup"})

	defer func() {
		if recover() == nil {
			t.Errorf("Register() with duplicate name did not panic")
		}
	}()
	Register(Signature{Name: "dup"})
}

func TestNewCatalogIncludeExclude(t *testing.T) {
	resetRegistry(t)
	Register(Signature{Name: "alpha"})
	Register(Signature{Name: "beta"})
	Register(Signature{Name: "gamma"})

	t.Run("no filter returns everything sorted", func(t *testing.T) {
		c, err := NewCatalog(nil, nil)
		if err != nil {
			t.Fatalf("NewCatalog() unexpected error: %v", err)
		}
		entries := c.Entries()
		if len(entries) != 3 {
			t.Fatalf("len(Entries()) = %d, want 3", len(entries))
		}
		if entries[0].Name != "alpha" || entries[1].Name != "beta" || entries[2].Name != "gamma" {
			t.Errorf("Entries() not sorted by name: %+v", entries)
		}
	})

	t.Run("include restricts to named signatures", func(t *testing.T) {
		c, err := NewCatalog([]string{"beta"}, nil)
		if err != nil {
			t.Fatalf("NewCatalog() unexpected error: %v", err)
		}
		entries := c.Entries()
		if len(entries) != 1 || entries[0].Name != "beta" {
			t.Errorf("Entries() = %+v, want only beta", entries)
		}
	})

	t.Run("exclude drops named signatures", func(t *testing.T) {
		c, err := NewCatalog(nil, []string{"alpha"})
		if err != nil {
			t.Fatalf("NewCatalog() unexpected error: %v", err)
		}
		for _, e := range c.Entries() {
			if e.Name == "alpha" {
				t.Errorf("Entries() still contains excluded signature alpha")
			}
		}
	})

	t.Run("unknown include name is an error", func(t *testing.T) {
		if _, err := NewCatalog([]string{"nope"}, nil); err == nil {
			t.Errorf("NewCatalog() with unknown include name expected error, got nil")
		}
	})

	t.Run("unknown exclude name is an error", func(t *testing.T) {
		if _, err := NewCatalog(nil, []string{"nope"}); err == nil {
			t.Errorf("NewCatalog() with unknown exclude name expected error, got nil")
		}
	})
}

func TestCatalogGet(t *testing.T) {
	resetRegistry(t)
	Register(Signature{Name: "only", Description: "the only one"})

	c, err := NewCatalog(nil, nil)
	if err != nil {
		t.Fatalf("NewCatalog() unexpected error: %v", err)
	}

	if _, ok := c.Get("missing"); ok {
		t.Errorf("Get() found signature that was never registered")
	}
	s, ok := c.Get("only")
	if !ok {
		t.Fatalf("Get() did not find registered signature")
	}
	if s.Description != "the only one" {
		t.Errorf("Get() returned wrong entry: %+v", s)
	}
}
