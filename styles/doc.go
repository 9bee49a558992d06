/*
Package styles provides the style context for document content.

Overview

Styles for content items are organized as a cascade: every point in a
document sees a stack of style scopes, innermost scope first. Type Chain is
an opaque, immutable handle onto such a cascade. Chains are cheap to copy
and share structure, so content items may carry one around without cost.

Type VecBuilder collects content items in document order, each paired with
the chain that was active when the item was appended. It freezes into an
immutable Vec plus the common trunk of all recorded chains, i.e. the style
scopes shared by every item.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package styles

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'typst.styles'.
func tracer() tracing.Trace {
	return tracing.Select("typst.styles")
}
