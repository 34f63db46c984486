// Package discount holds the open/closed demo.
//
// D1 and D2 are Discount strategies. Apply reports any number of
// strategies without knowing their concrete types, so adding a strategy
// means adding a type, not editing D1, D2 or Apply.
package discount
