package config

import "testing"

func TestConstants(t *testing.T) {
	if AutoLockAfter <= 0 {
		t.Fatalf("AutoLockAfter must be positive")
	}
	if AppName == "" {
		t.Fatalf("AppName should not be empty")
	}
	if PlaceholderName != "Your Name" {
		t.Fatalf("PlaceholderName = %q", PlaceholderName)
	}
	if len(ChecklistQuestions) != 8 {
		t.Fatalf("expected 8 checklist questions, got %d", len(ChecklistQuestions))
	}
	if len(SignOffRoles) == 0 {
		t.Fatalf("expected at least one sign-off role")
	}
	total := 0.0
	for _, w := range PDFColumnWidths {
		total += w
	}
	if total != 210-2*PDFMargin {
		t.Fatalf("column widths sum to %v, want printable width", total)
	}
}

func TestSchemeLookup(t *testing.T) {
	cases := map[string]string{
		"LT037": "Beauly to Blackhillock",
		"LT359": "Blackhillock to Peterhead",
		"LT999": "",
	}
	for project, want := range cases {
		if got := Scheme(project); got != want {
			t.Fatalf("Scheme(%q) = %q, want %q", project, got, want)
		}
	}
	for _, p := range ProjectNumbers {
		if Scheme(p) == "" {
			t.Fatalf("project %q has no scheme", p)
		}
	}
}

func TestSubcontractorLookup(t *testing.T) {
	cases := map[string]string{
		"Package 1": "Natural Power",
		"Package 2": "CGL",
		"Package 3": "IGNE",
		"Package 4": "CGL",
		"Package 5": "IGNE",
		"Package 6": "",
	}
	for pkg, want := range cases {
		if got := Subcontractor(pkg); got != want {
			t.Fatalf("Subcontractor(%q) = %q, want %q", pkg, got, want)
		}
	}
	for _, p := range GIPackages {
		if !IsGIPackage(p) || Subcontractor(p) == "" {
			t.Fatalf("package %q not mapped", p)
		}
	}
}
