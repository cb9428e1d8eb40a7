// Readme-consultant reviews and rewrites a repository's README with a
// locally hosted language model.
//
// It collects the README, the folder tree, and the git remote, sends them
// to a local Ollama server, and renders the result as styled console
// panels.
//
// Usage:
//
//	readme-consultant review -r <repo> -o report.txt
//	readme-consultant generate-enhanced-readme -r <repo> -o README.new.md
//	readme-consultant models list      # list installed models
//	readme-consultant models doctor    # check the local service responds
//
// See https://github.com/mujasoft/readme-consultant for full documentation.
package main
