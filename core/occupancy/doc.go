// Package occupancy aggregates an assignment into two person-count tables:
// one by day and choice rank, one by choice rank only. The aggregation is a
// pure function of the assignment and the family table.
package occupancy
