package main

import (
	"golang.org/x/exp/constraints"
)

// MinBy finds the first element with the smallest key (like lodash's minBy).
func MinBy[T any, K constraints.Ordered](slice []T, keyFunc func(T) K) (T, bool) {
	var best T
	if len(slice) == 0 {
		return best, false
	}

	best = slice[0]
	bestKey := keyFunc(best)
	for _, v := range slice[1:] {
		if k := keyFunc(v); k < bestKey {
			best, bestKey = v, k
		}
	}
	return best, true
}

// MaxBy finds the first element with the largest key.
func MaxBy[T any, K constraints.Ordered](slice []T, keyFunc func(T) K) (T, bool) {
	var best T
	if len(slice) == 0 {
		return best, false
	}

	best = slice[0]
	bestKey := keyFunc(best)
	for _, v := range slice[1:] {
		if k := keyFunc(v); k > bestKey {
			best, bestKey = v, k
		}
	}
	return best, true
}
