// Package coincidence finds the longest common substrings shared by two
// Wikipedia articles. It fetches two articles, strips the wiki markup that
// carries boilerplate, and runs a memory-efficient dynamic programming
// sweep to recover every maximal-length substring the texts share.
//
// This package contains domain types, interfaces, and the substring engine
// following Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., http/,
// goquery/, htmltomarkdown/).
package coincidence
