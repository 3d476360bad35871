// SPDX-License-Identifier: MPL-2.0

package walker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestPathSet_InsertionOrderAndDedup(t *testing.T) {
	t.Parallel()

	s := NewPathSet("/r/b.jar", "/r/a.jar", "/r/b.jar")
	if !s.Add("/r/c.jar") {
		t.Error("Add(new) = false, want true")
	}
	if s.Add("/r/a.jar") {
		t.Error("Add(duplicate) = true, want false")
	}

	want := []string{"/r/b.jar", "/r/a.jar", "/r/c.jar"}
	if diff := cmp.Diff(want, s.Paths()); diff != "" {
		t.Errorf("Paths() mismatch (-want +got):\n%s", diff)
	}
	if s.Len() != 3 {
		t.Errorf("Len() = %d, want 3", s.Len())
	}
}

func TestPathSet_Merge(t *testing.T) {
	t.Parallel()

	var s PathSet
	s.Add("/r/x.jar")
	s.Merge(NewPathSet("/r/y.jar", "/r/x.jar", "/r/z.jar"))
	s.Merge(nil)

	want := []string{"/r/x.jar", "/r/y.jar", "/r/z.jar"}
	if diff := cmp.Diff(want, s.Paths()); diff != "" {
		t.Errorf("Paths() mismatch (-want +got):\n%s", diff)
	}
	if !s.Contains("/r/z.jar") || s.Contains("/r/w.jar") {
		t.Error("Contains() returned wrong membership")
	}
}

func TestPathSet_PathsIsACopy(t *testing.T) {
	t.Parallel()

	s := NewPathSet("/r/a.jar")
	got := s.Paths()
	got[0] = "mutated"
	if s.Paths()[0] != "/r/a.jar" {
		t.Error("mutating Paths() result changed the set")
	}
}
