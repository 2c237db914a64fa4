// Package benchtypes contains the services resolved by the benchmark scenarios.
//
// Every constructor counts the instances it creates, so a run can check that
// a container honoured the lifetime each service was registered with.
package benchtypes
