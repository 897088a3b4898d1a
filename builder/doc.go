// SPDX-License-Identifier: MIT
// Package builder implements concurrent graph construction: best-first
// search for natural neighbor candidates, diversity-pruned insertion, and
// backlinking.
package builder
