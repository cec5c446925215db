package surfer

import "testing"

func TestAttr(t *testing.T) {
	s, _, _ := newTestSurfer(t, testPage)
	items := s.Wrap("li")
	if id, ok := items.Attr("id"); !ok || id != "one" {
		t.Fatalf("expected the id of the first element but got '%s'", id)
	}
	if _, ok := items.Attr("title"); ok {
		t.Fatalf("expected a missing attribute not to be found")
	}
	if _, ok := s.Wrap(nil).Attr("id"); ok {
		t.Fatalf("expected an empty collection to have no attributes")
	}

	items.SetAttr("title", "entry")
	items.Each(func(i int, e *Collection) {
		if v, _ := e.Attr("title"); v != "entry" {
			t.Fatalf("expected element %d to have title 'entry' but got '%s'", i, v)
		}
	})
	items.RemoveAttr("title")
	if got := s.Wrap("[title]").Len(); got != 0 {
		t.Fatalf("expected no element with a title but got %d", got)
	}
}

func TestData(t *testing.T) {
	s, _, _ := newTestSurfer(t, testPage)
	one := s.Wrap("li")

	tests := []struct {
		name  string
		want  string
		found bool
	}{
		{"userId", "7", true},
		{"user-id", "7", true},
		{"kind", "x", true},
		{"missing", "", false},
	}
	for _, tc := range tests {
		got, found := one.Data(tc.name)
		if got != tc.want || found != tc.found {
			t.Errorf("Data(%q) = (%q, %v); want (%q, %v)", tc.name, got, found, tc.want, tc.found)
		}
	}
	if _, found := s.Wrap(nil).Data("kind"); found {
		t.Fatalf("expected an empty collection to have no data")
	}
}

func TestDatasetAttr(t *testing.T) {
	tests := []struct {
		key  string
		want string
		ok   bool
	}{
		{"foo", "data-foo", true},
		{"fooBar", "data-foo-bar", true},
		{"fooBarBaz", "data-foo-bar-baz", true},
		{"foo-1", "data-foo-1", true},
		{"foo-bar", "", false},
	}
	for _, tc := range tests {
		got, ok := datasetAttr(tc.key)
		if got != tc.want || ok != tc.ok {
			t.Errorf("datasetAttr(%q) = (%q, %v); want (%q, %v)", tc.key, got, ok, tc.want, tc.ok)
		}
	}
}
