package earley

import (
	"bytes"

	"github.com/npillmayer/earleybird"
	"github.com/npillmayer/earleybird/cfg"
)

func dumpSet(S *earleySet, earleme earleybird.Earleme) {
	tracer().Debugf("--- Earleme %04d ----------------------------------", earleme)
	n := 1
	S.items.IterateOnce()
	for S.items.Next() {
		item := S.items.Item().(cfg.Item)
		tracer().Debugf("[%2d] %s", n, item)
		n++
	}
	for _, lim := range S.leo {
		tracer().Debugf("[L ] %v ⇒ %v", lim.Symbol, lim.Top)
	}
}

func itemSetString(S *earleySet) string {
	var b bytes.Buffer
	b.WriteString("{")
	first := true
	S.items.IterateOnce()
	for S.items.Next() {
		item := S.items.Item().(cfg.Item)
		if first {
			b.WriteString(" ")
			first = false
		} else {
			b.WriteString(", ")
		}
		b.WriteString(item.String())
	}
	b.WriteString(" }")
	return b.String()
}
