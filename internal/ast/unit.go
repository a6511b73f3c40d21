package ast

import "slicec/internal/source"

// CompilationUnit is the per-file parse product: an optional encoding
// directive, file-level attributes, and the forest of top-level
// definitions parsed from that file.
type CompilationUnit struct {
	File              source.FileID
	EncodingDeclared  bool
	Encoding          EncodingSet // single bit (EncodingSlice1 or EncodingSlice2); EncodingSlice2 if !EncodingDeclared
	EncodingSpan      source.Span // span of the "encoding = ..." directive, zero if not declared
	FileAttrs         []AttrID
	Definitions       []DefID
}
