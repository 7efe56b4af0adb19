package llrb

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestToDot(t *testing.T) {
	tree := newSumTree(t)
	for k := 1; k <= 10; k++ {
		_ = tree.Insert(k, k)
	}
	var buf bytes.Buffer
	if err := tree.ToDot(&buf); err != nil {
		t.Fatalf("ToDot failed: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Errorf("output is not a DOT graph:\n%s", out)
	}
	// every node has two outgoing edges, nil links included
	if n := strings.Count(out, "->"); n != 2*tree.Len() {
		t.Errorf("expected %d edges, have %d", 2*tree.Len(), n)
	}
	if !strings.Contains(out, "#cc0000") {
		t.Errorf("expected at least one red node in DOT output")
	}
}

func TestToDotEmptyTree(t *testing.T) {
	tree := newSumTree(t)
	var buf bytes.Buffer
	if err := tree.ToDot(&buf); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "->") {
		t.Errorf("expected no edges for empty tree:\n%s", buf.String())
	}
}

type failingWriter struct {
	budget int
}

var errDiskFull = errors.New("disk full")

func (fw *failingWriter) Write(p []byte) (int, error) {
	if fw.budget <= 0 {
		return 0, errDiskFull
	}
	fw.budget--
	return len(p), nil
}

func TestToDotReportsWriteError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "llrb")
	defer teardown()
	//
	tree := newSumTree(t)
	for k := 1; k <= 5; k++ {
		_ = tree.Insert(k, k)
	}
	if err := tree.ToDot(&failingWriter{budget: 3}); !errors.Is(err, errDiskFull) {
		t.Fatalf("expected write error, got %v", err)
	}
}

func TestFprint(t *testing.T) {
	tree := newSumTree(t)
	for k := 1; k <= 3; k++ {
		_ = tree.Insert(k, k)
	}
	var buf bytes.Buffer
	if err := tree.Fprint(&buf); err != nil {
		t.Fatal(err)
	}
	// no colors for non-terminals
	if got, want := buf.String(), "((1:1)2:3(3:1))\n"; got != want {
		t.Errorf("Fprint wrote %q, want %q", got, want)
	}
	if got := tree.String(); got != "LLRB(((1:1)2:3(3:1)))" {
		t.Errorf("String() = %q", got)
	}
	if err := tree.Fprint(&failingWriter{}); !errors.Is(err, errDiskFull) {
		t.Errorf("expected write error, got %v", err)
	}
}
