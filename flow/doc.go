/*
Package flow drives content assembly for a document's vertical flow.

Overview

A document's flow is a tree of content: text, spacing, breaks, styled
sub-trees, invisible markers. Type Builder walks this tree in document
order, decides for every piece which collapsing class it belongs to
(supportive, destructive, weak or ignorant) and feeds it to a
model.CollapsingBuilder. The result is the final, style-annotated sequence
of flow items that later layout stages consume.

Layout and rendering of the items is not this package's business; content
kinds like Line carry their typed geometric arguments, nothing more.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package flow

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'typst.flow'.
func tracer() tracing.Trace {
	return tracing.Select("typst.flow")
}
