// Package intseq is your in-memory toolbox for generating, filtering,
// and cross-checking integer sequences — from basic primality predicates
// to the combinatorial max-y formulas behind OEIS research.
//
// 🚀 What is intseq?
//
//	A modern, zero-surprise library that brings together:
//		• Predicates: prime, odd_prime, perfect, abundant & friends — pure,
//		  composable, safe to call from any goroutine
//		• Sequence generation: lazy, restartable iteration of qualifying
//		  integers over a bounded range, with OEIS-style indexing
//		• Sieve: a bounded Sieve of Eratosthenes, serial or partitioned,
//		  swapped in transparently for large primality scans
//		• Formulas: the max_y(x) fixed-point machinery that reproduces
//		  sequences such as A065091 (the odd primes) from pair arithmetic
//		• OEIS tooling: b-file parsing, fetching, and offset/difference
//		  comparison reports
//
// ✨ Why choose intseq?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – sentinel errors, deterministic output
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – a predicate is any func(int64) bool; compose with
//     And/Or/Not, register by name for the CLI
//
// Under the hood, everything is organized into small focused packages:
//
//	predicate/ — number-theoretic classifiers, combinators & name registry
//	sieve/     — bounded Sieve of Eratosthenes (serial & partitioned)
//	seq/       — Range, Entry & the lazy sequence generator
//	formula/   — binary combinatorial formulas & fixed-point survivors
//	oeis/      — b-file parsing, fetching & comparison reports
//	cli/       — flag parsing & exit-code semantics for cmd/intseq
//
// Quick taste:
//
//	entries, _ := seq.Collect(seq.Range{Start: 1, End: 20},
//	    predicate.MustLookup(predicate.NameOddPrime), nil)
//	// → [1]3 [2]5 [3]7 [4]11 [5]13 [6]17 [7]19  (A065091)
//
// Dive into each package's doc.go for contracts, complexity notes and
// runnable examples.
//
//	go get github.com/katalvlaran/intseq
package intseq
