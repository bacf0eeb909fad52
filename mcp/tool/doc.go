// Package tool contains helper types and utilities that bridge Fluxor action
// signatures and the MCP tool registry, such as canonical tool names.
package tool
