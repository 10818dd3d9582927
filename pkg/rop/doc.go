// Package rop holds the Result type shared by the railway helpers in solo and
// chain. A Result is either a success carrying a value or a failure carrying
// an error; every Result gets a uuid and a UTC creation time when built.
package rop
