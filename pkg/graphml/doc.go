// Package graphml reads graphs from a restricted GraphML dialect.
//
// # Overview
//
// The parser makes a single forward pass over the token stream of an XML
// document and builds a [graph.Graph] as it goes. It never materializes a
// document tree; memory use is proportional to the graph, not the file.
//
// # Recognized Input
//
// Elements are matched by local name, so namespaced documents work as-is:
//
//	<graphml xmlns="http://graphml.graphdrawing.org/xmlns">
//	  <graph edgedefault="directed">
//	    <node id="a"><data key="label">Alpha</data></node>
//	    <node id="b"/>
//	    <edge source="a" target="b"/>
//	  </graph>
//	</graphml>
//
//   - graph: opens the scope; everything outside it is ignored
//   - node: requires id; an optional nested data key="label" sets the label,
//     otherwise the label is the id
//   - edge: requires source and target; both must name nodes that were
//     already declared earlier in the stream
//
// All other elements, attributes and text are ignored.
//
// # Dangling References
//
// An edge whose source or target has not been declared yet is dropped.
// This is order sensitive by construction: the parser resolves ids in a
// single forward pass. Dropped edges are counted in [Stats] and are not
// errors.
//
// # Errors
//
// Two failures are terminal and return no graph:
//   - the input cannot be opened or read: code IO
//   - the markup is not well-formed: code MALFORMED_INPUT
//
// Use errors.Is from pkg/errors to tell them apart.
package graphml
