// Package domain translates MCP tool calls and resource reads into catalog
// queries.
//
// Each tool has a XxxTool constructor describing its schema and a
// XxxHandler constructor binding it to a Catalog. Handlers clamp paging
// input before querying and return results as structured content plus
// indented JSON text.
package domain
