// Command minpairs finds minimal pairs in a pronunciation lexicon from the
// command line and can serve the same queries over HTTP.
//
//	minpairs query "p, k" --slider 1
//	minpairs query pʰ p --pos-group nouns --etymology native
//	minpairs segments
//	minpairs serve
package main
