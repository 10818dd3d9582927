// Package lists implements small pure transformations over slices of numbers
// and strings. No function mutates its argument; each returns a fresh slice
// or a scalar.
package lists
