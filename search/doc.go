// SPDX-License-Identifier: MIT
// Package search implements the best-first graph traversal used both
// standalone (query time) and internally by the graph builder (to find
// natural neighbor candidates for a new node).
package search
