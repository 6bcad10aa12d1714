package octree

import (
	"fmt"
	"io"
	"strings"
)

// DumpString is a wrapper for Dump.
func (t *Tree) DumpString() string {
	w := new(strings.Builder)
	t.Dump(w)
	return w.String()
}

// Dump writes a depth-indented text dump of the tree to w: node
// ranges, octant masks, and, once computed, centers and extents. This
// is debug output for development and tests, not a persistent format.
func (t *Tree) Dump(w io.Writer) {
	if t == nil {
		return
	}

	fmt.Fprintf(w, "### octree dim=%d mode=%s nodes=%d depth=%d\n", t.dim, t.mode, t.NumNodes(), t.depth)
	t.dumpNode(w, 0, 0)
}

func (t *Tree) dumpNode(w io.Writer, k, depth int) {
	indent := strings.Repeat(".", depth)
	off, length := t.Range(k)

	fmt.Fprintf(w, "%s[%d] level:%d mask:%0*b range:[%d,%d)", indent, k, t.LevelOf(k), t.dim, t.octantMask[k], off, off+length)
	if t.haveGeometry {
		fmt.Fprintf(w, " ctr:%v ext:%v", t.center[k], t.extent[k])
	}
	fmt.Fprintln(w)

	for _, c := range t.Children(k) {
		t.dumpNode(w, c, depth+1)
	}
}
