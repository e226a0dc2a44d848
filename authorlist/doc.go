// Package authorlist resolves the rows of an author list block: which
// authors match a ListConfiguration, in what order, and with which post
// counts. Rendering the rows into markup or editor elements lives in
// package renderer.
package authorlist
