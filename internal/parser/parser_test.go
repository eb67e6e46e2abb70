package parser

import "testing"

func TestParseFrontmatter(t *testing.T) {
	data := []byte("---\ndate: 2025-03-14\ntitle: Morning Log\n---\n\n**08:15** - coffee\n")
	res, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Frontmatter["title"] != "Morning Log" {
		t.Errorf("title fm = %v", res.Frontmatter["title"])
	}
	if res.Title != "Morning Log" {
		t.Errorf("Title = %q", res.Title)
	}
	if res.Body != "**08:15** - coffee\n" {
		t.Errorf("Body = %q", res.Body)
	}
}

func TestParseNoFrontmatter(t *testing.T) {
	res, err := Parse([]byte("# Heading\njust text"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Frontmatter != nil {
		t.Errorf("unexpected frontmatter: %v", res.Frontmatter)
	}
	if res.Title != "Heading" {
		t.Errorf("Title = %q, want first H1", res.Title)
	}
}

func TestParseMalformedFrontmatterFallsBack(t *testing.T) {
	data := []byte("---\n: not yaml [\n---\nbody text")
	res, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse should not error on bad frontmatter: %v", err)
	}
	if res.Frontmatter != nil {
		t.Errorf("frontmatter should be dropped, got %v", res.Frontmatter)
	}
}

func TestParseTags(t *testing.T) {
	data := []byte("---\ntags:\n  - work\n  - focus\n---\nnote body #inline #work\n")
	res, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := []string{"work", "focus", "inline"}
	if len(res.Tags) != len(want) {
		t.Fatalf("tags = %v, want %v", res.Tags, want)
	}
	for i, tag := range want {
		if res.Tags[i] != tag {
			t.Errorf("tags[%d] = %q, want %q", i, res.Tags[i], tag)
		}
	}
}

func TestParseEmpty(t *testing.T) {
	res, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if res.Body != "" || res.Title != "" || len(res.Tags) != 0 {
		t.Errorf("empty input should parse to empty result: %+v", res)
	}
}
