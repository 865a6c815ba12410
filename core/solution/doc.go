// Package solution reads candidate assignments from a results file. Each line
// of the file is one candidate: comma separated day numbers indexed by family.
// Only the requested line is parsed and scanning stops once it is reached.
package solution
