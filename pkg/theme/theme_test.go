package theme

import "testing"

func TestBuiltinsComplete(t *testing.T) {
	names := List()
	if len(names) == 0 {
		t.Fatal("no built-in themes")
	}

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			th, ok := Lookup(name)
			if !ok {
				t.Fatalf("Lookup(%q) not found but listed", name)
			}
			if th.Name == "" || th.Description == "" {
				t.Errorf("theme %q missing name or description", name)
			}
			if len(th.Combinations) == 0 {
				t.Fatalf("theme %q has no combinations", name)
			}
			for _, c := range th.Combinations {
				if c.Label == "" || c.Foreground == "" || c.Background == "" {
					t.Errorf("theme %q has incomplete combination %+v", name, c)
				}
			}
		})
	}
}

func TestGetFallback(t *testing.T) {
	th := Get("no-such-theme")
	if th.Name != "Default" {
		t.Errorf("Get on unknown name = %q, want the default theme", th.Name)
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	a, _ := Lookup("nord")
	a.Combinations[0].Foreground = "#123456"

	b, _ := Lookup("nord")
	if b.Combinations[0].Foreground == "#123456" {
		t.Error("mutating a looked-up theme leaked into the built-in table")
	}
}

func TestValidateLengthMatchesTable(t *testing.T) {
	for _, name := range List() {
		th, _ := Lookup(name)
		r := th.Validate()
		if len(r.Entries) != len(th.Combinations) {
			t.Errorf("theme %q: %d entries for %d combinations",
				name, len(r.Entries), len(th.Combinations))
		}
	}
}

func TestBuiltinColorsParse(t *testing.T) {
	for _, name := range List() {
		th, _ := Lookup(name)
		for _, e := range th.Validate().Entries {
			if e.Err != nil {
				t.Errorf("theme %q combination %q: %v", name, e.Label, e.Err)
			}
		}
	}
}
