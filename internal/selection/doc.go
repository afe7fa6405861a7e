// Package selection decides which questions a request gets back and in what
// order: fixed-size pages, category and search filters, and uniform sampling
// of the next quiz question from what a session has not yet seen.
//
// Every function here is pure. Inputs are never mutated and results are fresh
// slices, so callers may share a fetched question set between requests.
package selection
