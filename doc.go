// Package circuitcode encodes short text into three decorative "circuit"
// drawings and recovers it only from all three together.
//
// Pipeline:
//
//	text ─► textcodec (codes, checksum, 148-bit payload per panel)
//	     ─► bitmapper (stride permutation onto lattice slots)
//	     ─► aesthetic (corner arcs and fill diagonals, never on data slots)
//	     ─► randfill  (per-variant noise on empty slots)
//	     ─► render    (chains → SVG paths, panels stacked vertically)
//
// Every panel holds at most 23 characters on a fixed 17×5 node lattice.
// Each variant carries all data edges plus noise that at least one other
// variant lacks, so intersecting the orthogonal edges of the three
// documents yields exactly the data (see decoder).
//
// Quick start:
//
//	docs, err := circuitcode.Encode("HELLO")
//	...
//	msg, err := circuitcode.Decode(docs[0], docs[1], docs[2])
//	fmt.Println(msg.Text) // HELLO
//
// Subpackages:
//
//	gridmodel/  lattice, slots, diagonals, geometry, hashing
//	textcodec/  alphabet, chunking, payload packing and validation
//	bitmapper/  slot permutation
//	aesthetic/  decorative diagonals
//	randfill/   variant noise
//	render/     chain decomposition and SVG output
//	decoder/    SVG parsing, intersection and recovery
package circuitcode
