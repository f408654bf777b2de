package domain

import "testing"

func TestCategoryStyle(t *testing.T) {
	cases := []struct {
		cat   Category
		color string
		size  int
	}{
		{CategoryPersonality, "#8b5cf6", 30},
		{CategoryCareer, "#f59e0b", 28},
		{CategorySkill, "#10b981", 22},
		{CategoryCourse, "#3b82f6", 20},
		{CategoryStudent, "#ef4444", 32},
	}
	for _, tc := range cases {
		style := tc.cat.Style()
		if style.Color != tc.color || style.Size != tc.size {
			t.Fatalf("%s: got %+v, want color=%s size=%d", tc.cat, style, tc.color, tc.size)
		}
	}
}

func TestCategoryNaturalKeyField(t *testing.T) {
	if got := CategoryPersonality.NaturalKeyField(); got != "code" {
		t.Fatalf("personality key field: %s", got)
	}
	for _, cat := range []Category{CategoryCareer, CategorySkill, CategoryCourse, CategoryStudent} {
		if got := cat.NaturalKeyField(); got != "id" {
			t.Fatalf("%s key field: %s", cat, got)
		}
	}
}

func TestCategoryNodeID(t *testing.T) {
	if got := CategoryCareer.NodeID("c1"); got != "career-c1" {
		t.Fatalf("NodeID: %s", got)
	}
	if got := CategoryPersonality.NodeID("INTJ"); got != "personality-INTJ" {
		t.Fatalf("NodeID: %s", got)
	}
}

func TestCategoryPropertyAllowlist(t *testing.T) {
	fields := CategoryCareer.PropertyAllowlist()
	want := map[string]bool{"id": true, "name": true, "category": true, "growth_potential": true, "demand_level": true}
	if len(fields) != len(want) {
		t.Fatalf("career allowlist: %v", fields)
	}
	for _, f := range fields {
		if !want[f] {
			t.Fatalf("unexpected allowlisted field %s", f)
		}
	}
	// Descriptions stay out of node properties.
	for _, f := range fields {
		if f == "description" {
			t.Fatal("description must not be allowlisted")
		}
	}
}

func TestUnknownCategoryPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unknown category")
		}
	}()
	Category("bogus").Style()
}

func TestValidPersonalityCode(t *testing.T) {
	for _, code := range []string{"INTJ", "ESFP", "ENTP"} {
		if !ValidPersonalityCode(code) {
			t.Fatalf("%s should be valid", code)
		}
	}
	for _, code := range []string{"", "intj", "ABCD", "XXXX"} {
		if ValidPersonalityCode(code) {
			t.Fatalf("%s should be invalid", code)
		}
	}
}
