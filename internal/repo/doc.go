// Package repo scans a repository directory into the metadata used to build
// prompts: the README contents, a folder tree listing, and the origin remote
// from .git/config.
//
// Scanning fails when the directory or its README is missing. Everything
// else is best-effort: a repository without a usable git config still scans,
// it just has no remote URL.
package repo
