package mod_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/dshills/modkit/mod"
	"github.com/dshills/modkit/option"
)

// TestCollectDeduplicationProperties checks the collector's merge
// semantics over arbitrary overlaps between declared and explicit
// members: every identity appears exactly once, explicit instances win
// conflicts, and no declared identity disappears unless it conflicted.
func TestCollectDeduplicationProperties(t *testing.T) {
	identifiers := []string{"alpha", "beta", "gamma", "delta", "epsilon"}

	rapid.Check(t, func(t *rapid.T) {
		declaredIDs := rapid.SliceOfNDistinct(rapid.SampledFrom(identifiers), 0, len(identifiers),
			rapid.ID[string]).Draw(t, "declared")
		explicitIDs := rapid.SliceOfNDistinct(rapid.SampledFrom(identifiers), 0, len(identifiers),
			rapid.ID[string]).Draw(t, "explicit")

		declared := make([]option.Option, len(declaredIDs))
		for i, id := range declaredIDs {
			declared[i] = option.MustBool(id, false)
		}
		explicit := make([]option.Option, len(explicitIDs))
		explicitByID := make(map[string]option.Option, len(explicitIDs))
		for i, id := range explicitIDs {
			o := option.MustBool(id, true)
			explicit[i] = o
			explicitByID[id] = o
		}

		type def struct {
			Options []option.Option
		}
		got, err := mod.Collect(&def{Options: declared}, mod.Members{Options: explicit})
		if err != nil {
			t.Fatalf("Collect error: %v", err)
		}

		// Exactly one member per identity.
		seen := make(map[string]option.Option, len(got.Options))
		for _, o := range got.Options {
			if _, dup := seen[o.Identifier()]; dup {
				t.Fatalf("identity %q appears twice", o.Identifier())
			}
			seen[o.Identifier()] = o
		}

		// The union of identities survives.
		if len(seen) != len(union(declaredIDs, explicitIDs)) {
			t.Fatalf("got %d identities, want %d", len(seen), len(union(declaredIDs, explicitIDs)))
		}

		// Explicit instances win conflicts and are retained verbatim.
		for id, want := range explicitByID {
			if seen[id] != want {
				t.Fatalf("identity %q: explicit instance not retained", id)
			}
		}
	})
}

func union(a, b []string) map[string]bool {
	u := make(map[string]bool, len(a)+len(b))
	for _, s := range a {
		u[s] = true
	}
	for _, s := range b {
		u[s] = true
	}
	return u
}
