// Package array provides Array, the ordered key/value container the
// exporter renders.
//
// An Array maps integer or string keys to arbitrary values and keeps
// insertion order. Keys follow associative-array rules: any Go integer
// becomes an int, and a string holding a canonical decimal integer ("7",
// "-3", but not "07" or "+3") also becomes an int. Setting an existing key
// replaces its value in place, so duplicate keys cannot exist.
//
// Arrays are always handled through *Array. The pointer is the container's
// identity: two Arrays with equal contents are still different containers,
// and an Array may hold itself as a value.
package array
