// Package timing measures wall-clock duration of single computations.
package timing
