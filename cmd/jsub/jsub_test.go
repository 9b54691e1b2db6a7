package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/jsub/syntax"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestLoadConfig(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.cli")
	defer teardown()
	//
	path := filepath.Join(t.TempDir(), "jsub.toml")
	content := "trace = \"Info\"\nformat = \"sexpr\"\ncolour = true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	conf, err := loadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if conf.Trace != "Info" || conf.Format != "sexpr" {
		t.Errorf("settings not read from file: %+v", conf)
	}
	if conf.Prompt != "jsub> " || conf.Class != "Main" {
		t.Errorf("expected missing settings to keep defaults: %+v", conf)
	}
	bad := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(bad, []byte("format = \"xml\"\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err = loadConfig(bad); err == nil {
		t.Errorf("expected unknown format to be rejected")
	}
	if _, err = loadConfig(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("expected missing file to be an error")
	}
}

func TestWrapStatements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.cli")
	defer teardown()
	//
	a, err := syntax.NewAnalyser()
	if err != nil {
		t.Fatal(err)
	}
	src := wrapStatements("int x = 1; x = x + 1;", "Main")
	tree, err := a.Analyse(src)
	if err != nil {
		t.Fatalf("wrapped statements do not parse: %v", err)
	}
	if n := len(syntax.Statements(syntax.Body(tree))); n != 2 {
		t.Errorf("expected 2 statements, have %d", n)
	}
	program := "public class C { public static void main(String[] args) { } }"
	if wrapStatements(program, "Main") != program {
		t.Errorf("expected complete program to be left unchanged")
	}
}

func TestTokenTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.cli")
	defer teardown()
	//
	a, err := syntax.NewAnalyser()
	if err != nil {
		t.Fatal(err)
	}
	tokens, err := a.Tokenize(`x = "a b";`)
	if err != nil {
		t.Fatal(err)
	}
	data := tokenTable(tokens)
	if len(data) != len(tokens)+1 {
		t.Fatalf("expected a header and %d rows, have %d rows", len(tokens), len(data))
	}
	expected := []string{`"x"`, "=", `"`, `"a b"`, `"`, ";"}
	for i, lexeme := range expected {
		if data[i+1][2] != lexeme {
			t.Errorf("row %d: expected lexeme %s, have %s", i+1, lexeme, data[i+1][2])
		}
	}
}

func TestRenderTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "jsub.cli")
	defer teardown()
	//
	a, err := syntax.NewAnalyser()
	if err != nil {
		t.Fatal(err)
	}
	tree, err := a.Analyse(wrapStatements(";", "Main"))
	if err != nil {
		t.Fatal(err)
	}
	ll := leveledList(tree)
	if len(ll) == 0 || ll[0].Level != 0 || ll[0].Text != "prog" {
		t.Errorf("expected leveled list to start with prog, is %v", ll)
	}
	var b bytes.Buffer
	if err = renderTree(&b, tree, "sexpr"); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(b.String(), "(prog PUBLIC(\"public\")") {
		t.Errorf("unexpected s-expression %q", b.String())
	}
	b.Reset()
	if err = renderTree(&b, tree, "fingerprint"); err != nil || len(strings.TrimSpace(b.String())) == 0 {
		t.Errorf("expected a fingerprint, got %q (%v)", b.String(), err)
	}
	if err = renderTree(&b, tree, "json"); err == nil {
		t.Errorf("expected unknown format to fail")
	}
}
