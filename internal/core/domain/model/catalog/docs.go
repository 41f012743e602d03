// Package catalog provides the Product and Variant aggregates for the
// print-on-demand catalog.
//
// A Product carries the base price and the designer whose artwork is printed
// on it; a Variant is a purchasable size/color combination with its own price
// adjustment. Stock is deliberately not modeled: everything is printable on
// demand.
package catalog
