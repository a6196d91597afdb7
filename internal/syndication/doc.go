// Package syndication is a format-agnostic model of a feed entry together with
// the conversions that build it from, and project it back into, RSS 2.0 items
// and Atom 1.0 entries as parsed by gofeed.
//
// Every conversion is total: divergence between the two formats is resolved by
// dropping data, substituting defaults or leaving a field unset, never by
// returning an error. Optional strings use the empty string as their absent
// state, matching the native gofeed structures.
package syndication
