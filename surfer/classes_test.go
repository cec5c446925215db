package surfer

import (
	"regexp"
	"strings"
	"testing"
)

func TestHasClass(t *testing.T) {
	s, _, _ := newTestSurfer(t, testPage)
	one := s.Wrap("#one")

	tests := []struct {
		class string
		want  bool
	}{
		{"item", true},
		{"ab", true},
		{"c", false},
		{"it", false},
	}
	for _, tc := range tests {
		if got := one.HasClass(tc.class); got != tc.want {
			t.Errorf("HasClass(%q) = %v; want %v", tc.class, got, tc.want)
		}
		if got := one.LacksClass(tc.class); got == tc.want {
			t.Errorf("LacksClass(%q) = %v; want %v", tc.class, got, !tc.want)
		}
	}
	if s.Wrap(nil).HasClass("item") {
		t.Fatalf("expected an empty collection to have no classes")
	}
}

func TestHasClassMatch(t *testing.T) {
	s, _, _ := newTestSurfer(t, `<div id="d" class="a ab b"></div>`)
	d := s.Wrap("#d")

	tests := []struct {
		pattern string
		want    bool
	}{
		{"^a", true},
		{"^b$", true},
		{"^c", false},
		{"a b", false},
	}
	for _, tc := range tests {
		re := regexp.MustCompile(tc.pattern)
		if got := d.HasClassMatch(re); got != tc.want {
			t.Errorf("HasClassMatch(%q) = %v; want %v", tc.pattern, got, tc.want)
		}
		if got := d.LacksClassMatch(re); got == tc.want {
			t.Errorf("LacksClassMatch(%q) = %v; want %v", tc.pattern, got, !tc.want)
		}
	}
	if d.HasClassMatch(nil) {
		t.Fatalf("expected a nil pattern never to match")
	}
}

func TestAddRemoveToggleClass(t *testing.T) {
	s, _, _ := newTestSurfer(t, testPage)
	items := s.Wrap("li")

	items.AddClass("active")
	items.Each(func(i int, e *Collection) {
		if !e.HasClass("active") {
			t.Fatalf("expected element %d to have class 'active'", i)
		}
	})

	items.RemoveClass("item")
	if got := s.Wrap(".item").Len(); got != 0 {
		t.Fatalf("expected no element with class 'item' but got %d", got)
	}

	items.ToggleClass("active")
	if got := s.Wrap(".active").Len(); got != 0 {
		t.Fatalf("expected no element with class 'active' but got %d", got)
	}
	items.ToggleClass("active")
	if got := s.Wrap(".active").Len(); got != 3 {
		t.Fatalf("expected 3 elements with class 'active' but got %d", got)
	}
}

func TestRemoveEmptyClassKeepsAttribute(t *testing.T) {
	s, _, buf := newTestSurfer(t, testPage)
	one := s.Wrap("#one").RemoveClass("")
	if class, _ := one.Attr("class"); class != "item a ab b" {
		t.Fatalf("expected classes to be kept but got '%s'", class)
	}
	if !strings.Contains(buf.String(), "empty class name") {
		t.Fatalf("expected a warning, got log output %q", buf.String())
	}
}

func TestRemoveClassMatch(t *testing.T) {
	s, _, _ := newTestSurfer(t, `<p id="x" class="item a ab b"></p><p id="y" class="item ax"></p><p id="z" class="other"></p>`)
	s.Wrap("p").RemoveClassMatch(regexp.MustCompile("^a"))

	tests := []struct {
		id   string
		want string
	}{
		{"x", "item b"},
		{"y", "item"},
		{"z", "other"},
	}
	for _, tc := range tests {
		if got, _ := s.Wrap("#" + tc.id).Attr("class"); got != tc.want {
			t.Errorf("#%s: expected class '%s' but got '%s'", tc.id, tc.want, got)
		}
	}
}

func TestSetClass(t *testing.T) {
	s, _, _ := newTestSurfer(t, testPage)
	s.Wrap("li").SetClass("on", true)
	if got := s.Wrap(".on").Len(); got != 3 {
		t.Fatalf("expected 3 elements with class 'on' but got %d", got)
	}
	s.Wrap("li").SetClass("on", false)
	if got := s.Wrap(".on").Len(); got != 0 {
		t.Fatalf("expected no element with class 'on' but got %d", got)
	}
}

func TestSetClassFunc(t *testing.T) {
	s, _, buf := newTestSurfer(t, testPage)
	s.Wrap("li").SetClassFunc("even", func(ctx ClassContext) bool {
		id, _ := ctx.W.Attr("id")
		return ctx.E == ctx.Element && ctx.W == ctx.Wrapped && id == "two"
	})
	if got := ids(s.Wrap(".even")); len(got) != 1 || got[0] != "two" {
		t.Fatalf("expected only 'two' to have class 'even' but got %v", got)
	}

	s.Wrap("li").SetClassFunc("even", nil)
	if got := s.Wrap(".even").Len(); got != 1 {
		t.Fatalf("expected a nil predicate to change nothing but got %d elements", got)
	}
	if !strings.Contains(buf.String(), "invalid class predicate") {
		t.Fatalf("expected a warning, got log output %q", buf.String())
	}
}
