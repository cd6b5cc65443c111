// Package selection provides pixel cell coordinates and ordered cell sets.
//
// A CellSet keys cells by a packed integer rather than a formatted string
// and iterates in insertion order, which gives drag transforms a stable,
// deterministic processing order.
package selection
