// Package cli wires the readme-consultant commands: review,
// generate-enhanced-readme, models, config, and version.
//
// Each command runs one linear pass: scan the repository, build a prompt,
// make a single inference call, render the result, and write the output
// file. Failures are reported on stderr and mapped to a non-zero exit code.
package cli
