/*
Package model assembles the final content sequence of a document.

Overview

While a compiler walks a document's flow it produces a stream of content
items: real content nodes, spacing amounts, break markers, invisible
markers. Not every item that is produced survives: spacing at the start of
a region vanishes, spacing next to a forced break vanishes, and of several
competing spacing candidates in one gap only the strongest one is kept.
This mirrors whitespace and margin collapsing in markup and layout systems.

Type CollapsingBuilder implements this collapsing as a staging layer in
front of a styles.VecBuilder. The caller classifies each item as
destructive, supportive, weak or ignorant and calls the matching operation;
the builder delays weak and ignorant items until a later item decides their
fate, then commits survivors in their original order.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package model

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'typst.model'.
func tracer() tracing.Trace {
	return tracing.Select("typst.model")
}
