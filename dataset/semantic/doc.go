// Package semantic reads the textual-similarity side of a feature table: one
// row per ordered class pair with sixteen cosine similarities.
package semantic
