// Package decode turns YAML, JSON, TOML and XML documents into values the
// exporter can render. Mappings become *array.Array containers in document
// order (TOML tables in sorted key order, since TOML does not keep it).
//
// YAML aliases resolve to the same container as their anchor, so a document
// that reuses a node through an alias renders that node once and refers back
// to it afterwards.
package decode
