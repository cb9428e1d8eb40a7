// Package prompt builds the instruction text sent to the LLM for each mode.
//
// Review mode asks for a critique of the existing README. Enhance mode asks
// for a full rewrite returned inside a fenced markdown block, followed by a
// fenced json block listing the changes made, which is what the summary
// package extracts.
package prompt
