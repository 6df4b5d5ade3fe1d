// Package unsupported holds doc comments outside the rendered Markdown subset.
package unsupported

// Listy enumerates flavors.
//
// - vanilla
// - chocolate
func Listy() {}
