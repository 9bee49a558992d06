package styles

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

*/

import (
	"strings"

	"github.com/flavioabar/typst/maybe"
)

// Chain is an opaque handle onto a cascade of style scopes. Chains are
// immutable: Chained does not modify its receiver but returns a new handle,
// structurally sharing all outer scopes. The zero Chain is the empty
// cascade and ready to use.
//
// Chain has value semantics and is intended to be passed by value.
type Chain struct {
	head *scope
}

// scope is one link of a cascade. scopes are never mutated once linked in,
// which is what makes sharing them between chains safe.
type scope struct {
	styles Map
	outer  *scope
}

// Default returns the empty style chain.
func Default() Chain {
	return Chain{}
}

// Chained pushes a new innermost scope onto the cascade, returning the
// extended chain. The receiver remains valid and unchanged.
func (c Chain) Chained(m Map) Chain {
	tracer().Debugf("styles: chaining scope %v", m)
	return Chain{head: &scope{styles: m, outer: c.head}}
}

// Same reports whether two chains are the same cascade. Identity is
// referential: chains are the same iff they were derived from one another
// by zero Chained calls.
func (c Chain) Same(other Chain) bool {
	return c.head == other.head
}

// IsDefault is true for the empty cascade.
func (c Chain) IsDefault() bool {
	return c.head == nil
}

// Depth returns the number of scopes in the cascade.
func (c Chain) Depth() int {
	n := 0
	for s := c.head; s != nil; s = s.outer {
		n++
	}
	return n
}

// Get looks up a property along the cascade, innermost scope first.
// Full cascade resolution (inheritance types, initial values) is the
// business of higher layers; Get is a plain innermost-wins lookup.
func (c Chain) Get(key string) maybe.Maybe[Property] {
	for s := c.head; s != nil; s = s.outer {
		if p, ok := s.styles.Get(key); ok {
			return maybe.Just(p)
		}
	}
	return maybe.Nothing[Property]()
}

func (c Chain) String() string {
	b := strings.Builder{}
	b.WriteString("⟨")
	for s := c.head; s != nil; s = s.outer {
		if s != c.head {
			b.WriteString(" → ")
		}
		b.WriteString(s.styles.String())
	}
	b.WriteString("⟩")
	return b.String()
}

// scopes returns the cascade as a slice, root (outermost) first.
func (c Chain) scopes() []*scope {
	var sc []*scope
	for s := c.head; s != nil; s = s.outer {
		sc = append(sc, s)
	}
	for i, j := 0, len(sc)-1; i < j; i, j = i+1, j-1 {
		sc[i], sc[j] = sc[j], sc[i]
	}
	return sc
}

// Trunk computes the longest common prefix of a group of cascades,
// anchored at the root. It is the part of the styling every one of the
// chains agrees on. Trunk of an empty group is the default chain.
func Trunk(chains ...Chain) Chain {
	if len(chains) == 0 {
		return Default()
	}
	trunk := chains[0].scopes()
	for _, c := range chains[1:] {
		sc := c.scopes()
		if len(sc) < len(trunk) {
			trunk = trunk[:len(sc)]
		}
		for i := range trunk {
			if trunk[i] != sc[i] {
				trunk = trunk[:i]
				break
			}
		}
		if len(trunk) == 0 {
			break
		}
	}
	if len(trunk) == 0 {
		return Default()
	}
	return Chain{head: trunk[len(trunk)-1]}
}
