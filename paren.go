package llrb

import (
	"fmt"
	"io"
	"os"
	"strings"

	ansi "github.com/fatih/color"
	"golang.org/x/term"
)

// Paren returns the tree in parenthesized form. Every node is written as
//
//	(<left>key:size<right>)
//
// so an in-order reading of the keys yields the sorted key sequence, e.g.
// "((1:1)2:3(3:1))". The empty tree is the empty string.
func (t *Tree[K, V, A]) Paren() string {
	var sb strings.Builder
	t.paren(&sb, t.root, nil)
	return sb.String()
}

// Fprint writes the parenthesized form of the tree to w, followed by a
// newline. If w is a terminal, keys of red nodes are printed red and keys of
// black nodes blue.
func (t *Tree[K, V, A]) Fprint(w io.Writer) error {
	var palette map[color]*ansi.Color
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		palette = keyPalette()
	}
	var sb strings.Builder
	t.paren(&sb, t.root, palette)
	sb.WriteByte('\n')
	_, err := io.WriteString(w, sb.String())
	return err
}

func (t *Tree[K, V, A]) paren(sb *strings.Builder, n *node[K, V, A], palette map[color]*ansi.Color) {
	if n == nil {
		return
	}
	sb.WriteByte('(')
	t.paren(sb, n.child[left], palette)
	key := fmt.Sprintf("%v", n.key)
	if c, ok := palette[n.color]; ok {
		key = c.Sprint(key)
	}
	fmt.Fprintf(sb, "%s:%d", key, n.size)
	t.paren(sb, n.child[right], palette)
	sb.WriteByte(')')
}

func keyPalette() map[color]*ansi.Color {
	r := ansi.New(ansi.FgRed, ansi.Bold)
	b := ansi.New(ansi.FgBlue, ansi.Bold)
	// the terminal has been checked by the caller
	r.EnableColor()
	b.EnableColor()
	return map[color]*ansi.Color{
		red:   r,
		black: b,
	}
}
