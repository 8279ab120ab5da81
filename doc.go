/*
Package yamlite reads and writes a restricted subset of YAML without
linking a full general-purpose implementation. It is meant for
applications that process small-to-medium structured configuration or
data text.

The package offers two independent workflows:

1. Event-Driven Reading

The reader makes a single forward pass over an in-memory document and
delivers ordered events to a caller-supplied Handler. There is no tree
building, no backtracking, and no buffering of the whole document
beyond the input itself.

	type keys struct {
		yamlite.NopHandler
		names []string
	}

	func (k *keys) Key(text string) bool {
		k.names = append(k.names, text)
		return true
	}

	var k keys
	if err := yamlite.Parse(data, &k); err != nil {
		// handle error
	}

The supported input subset covers block structure via leading-space
indentation and leading dashes, flow structure via [...] and {...},
plain and single- or double-quoted scalars, comments from # to end of
line, skipped %-directive lines, and a --- document marker. Literal and
folded block scalars, anchors, aliases, tag handles, complex mapping
keys, and in-quote escape sequences are not supported, and tabs are
rejected anywhere outside a quoted scalar.

2. Composing Output

The writer side builds lines that are safe to embed in a document of
the same subset. SafeScalar quotes a scalar only when needed, KeyValue
and KeyValueSeq compose "tag: value" lines, and Sequence composes flow
sequences with numeric elements kept unquoted:

	yamlite.KeyValueSeq("ports", []int{80, 443})
	// ports: [80, 443]

Both directions are strictly synchronous and single-threaded: a parse
is one uninterrupted call, and every handler callback returns before
scanning resumes.
*/
package yamlite
