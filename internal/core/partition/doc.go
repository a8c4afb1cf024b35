// Package partition splits a fixed integer total into a fixed number of
// non-negative integer parts at random.
//
// Every generator returns a fresh slice whose entries sum exactly to the
// requested total. Randomness comes from an injected random.Sampler so the
// algorithms can run against a seeded sampler in tests.
package partition
