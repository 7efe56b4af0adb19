package llrb

import (
	"fmt"
	"io"
)

type nodeids[K, V, A any] struct {
	idTable map[*node[K, V, A]]int
	max     int
}

func newtable[K, V, A any]() nodeids[K, V, A] {
	return nodeids[K, V, A]{
		idTable: make(map[*node[K, V, A]]int),
		max:     1,
	}
}

func (ids nodeids[K, V, A]) find(n *node[K, V, A]) int {
	return ids.idTable[n]
}

func (ids *nodeids[K, V, A]) alloc(n *node[K, V, A]) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// ToDot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Nodes are labeled with key and subtree size.
func (t *Tree[K, V, A]) ToDot(w io.Writer) error {
	dw := &dotWriter{w: w}
	dw.printf("strict digraph {\n")
	dw.printf("\tnode [fontname=Arial,fontsize=12];\n")
	ids := newtable[K, V, A]()
	nilid := 0
	var walk func(*node[K, V, A])
	walk = func(n *node[K, V, A]) {
		id := ids.alloc(n)
		dw.printf("\t\"%d\" [label=\"%v\\n%d\" %s];\n", id, n.key, n.size, nodeDotStyles(n.color))
		for _, c := range n.child {
			if c == nil {
				nilid--
				dw.printf("\t\"%d\" %s;\n", nilid, emptyNode())
				dw.printf("\t\"%d\" -> \"%d\";\n", id, nilid)
				continue
			}
			dw.printf("\t\"%d\" -> \"%d\";\n", id, ids.alloc(c))
			walk(c)
		}
	}
	if t.root != nil {
		walk(t.root)
	}
	dw.printf("}\n")
	if dw.err != nil {
		tracer().Errorf("llrb DOT: %s", dw.err.Error())
	}
	return dw.err
}

// dotWriter remembers the first write error and skips all output after it.
type dotWriter struct {
	w   io.Writer
	err error
}

func (dw *dotWriter) printf(format string, args ...any) {
	if dw.err != nil {
		return
	}
	_, dw.err = fmt.Fprintf(dw.w, format, args...)
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point,width=.1]"
}

func nodeDotStyles(c color) string {
	s := ",style=filled,shape=circle,fontcolor=white"
	if c == red {
		s += ",color=\"#cc0000\",fillcolor=\"#cc0000\""
	} else {
		s += ",color=black,fillcolor=black"
	}
	return s
}
