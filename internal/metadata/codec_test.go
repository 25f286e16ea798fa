package metadata

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/skalder/refnote/internal/bibtex"
)

func TestEncode_OrderAndQuoting(t *testing.T) {
	e := &bibtex.Entry{
		Type:    "book",
		CiteKey: "Wright2013",
		Fields: map[string]string{
			"year":   "2013",
			"author": "Wright, N. T.",
			"title":  "Paul and the Faithfulness of God",
		},
	}

	want := `type: book
citekey: Wright2013
author: "Wright, N. T."
title: "Paul and the Faithfulness of God"
year: "2013"
`
	if got := Encode(e); got != want {
		t.Errorf("Encode() =\n%s\nwant:\n%s", got, want)
	}
}

func TestDecode_RoundTrip(t *testing.T) {
	e := &bibtex.Entry{
		Type:    "article",
		CiteKey: "Smith2020",
		Fields: map[string]string{
			"author":  "Smith, John and Doe, Jane",
			"title":   "A Study",
			"journal": "Nature",
			"year":    "2020",
			"pages":   "100-110",
		},
	}

	got, err := Decode(Encode(e))
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if diff := cmp.Diff(e, got); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecode_MissingTypeOrCitekey(t *testing.T) {
	cases := []string{
		"",
		"author: \"X\"\n",
		"type: book\n",
		"citekey: K\n",
	}
	for _, block := range cases {
		e, err := Decode(block)
		if err != nil {
			t.Fatalf("Decode(%q) error: %v", block, err)
		}
		if e != nil {
			t.Errorf("Decode(%q) = %+v, want nil", block, e)
		}
	}
}

func TestDecode_SkipsColonlessLines(t *testing.T) {
	block := "type: misc\nnot a metadata line\ncitekey: K\n\ntitle: \"T\"\n"
	e, err := Decode(block)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	if e == nil {
		t.Fatal("Decode() returned nil entry")
	}
	if got := e.Field("title"); got != "T" {
		t.Errorf("title = %q, want %q", got, "T")
	}
}

func TestEscapeUnescape_SpecialCharacters(t *testing.T) {
	values := []string{
		`plain`,
		`back\slash`,
		`quo"te`,
		"new\nline",
		"tab\there",
		"cr\rhere",
		`\\double`,
		`\n literal backslash-n`,
		"mix\\ of \"all\"\n\t\r specials \\n",
		`trailing backslash \`,
	}
	for _, v := range values {
		if got := Unescape(Escape(v)); got != v {
			t.Errorf("Unescape(Escape(%q)) = %q, want identity", v, got)
		}
	}
}

func TestEscape_OrderAvoidsDoubleProcessing(t *testing.T) {
	// A literal backslash before a quote must not collapse into a single
	// escaped quote.
	in := `\"`
	want := `\\\"`
	if got := Escape(in); got != want {
		t.Errorf("Escape(%q) = %q, want %q", in, got, want)
	}
	if got := Unescape(want); got != in {
		t.Errorf("Unescape(%q) = %q, want %q", want, got, in)
	}
}

func TestFrontmatter_RoundTrip(t *testing.T) {
	e := &bibtex.Entry{
		Type:    "book",
		CiteKey: "Wright2013",
		Fields:  map[string]string{"title": "Paul and the Faithfulness of God"},
	}

	body := EncodeFrontmatter(e) + "\n## Citations\n- [[Quotes#^Wright2013-1]]\n"
	if !strings.HasPrefix(body, "---\ntype: book\n") {
		t.Fatalf("unexpected frontmatter prefix:\n%s", body)
	}

	got, err := DecodeFrontmatter(body)
	if err != nil {
		t.Fatalf("DecodeFrontmatter() error: %v", err)
	}
	if diff := cmp.Diff(e, got); diff != "" {
		t.Errorf("frontmatter round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeFrontmatter_NoFrontmatter(t *testing.T) {
	e, err := DecodeFrontmatter("# A plain note\n")
	if err != nil {
		t.Fatalf("DecodeFrontmatter() error: %v", err)
	}
	if e != nil {
		t.Errorf("DecodeFrontmatter() = %+v, want nil", e)
	}
}
