// Package tags turns text into weighted words and weighted words into box
// sizes for the cloud layouter.
//
// Words come from free text ([Count]) or from a "word weight" list
// ([ParseWeighted]). A [Sizer] maps each weight to a font size by linear
// interpolation and asks a [Measurer] for the rendered extent of the word.
// [FontMeasurer] measures with the Go Regular font through
// golang.org/x/image/font/opentype.
package tags
