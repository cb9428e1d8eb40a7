// Package output renders a run's result to the console and writes the
// generated file to disk.
//
// Two console formats are supported: text (styled panels) and json (the
// structured summary for scripting). The output file itself is always the
// raw review text or the rewritten README body, independent of the console
// format.
package output
