// Package service wires protocol transport to domain services.
//
// It is the transport adapter layer: the package knows how to run MCP over stdio
// or HTTP and delegates business meaning to the catalog handlers in the MCP
// domain package.
package service
