// Package service contains the exercise tracker's use cases. It coordinates
// the user and exercise stores (defined in internal/store) and reports each
// outcome as a tagged Result: a value, a business rejection, or an error.
//
// Rejections are expected outcomes such as a taken username. They carry a
// human-readable reason and are never returned as errors, which leaves the
// API layer free to decide how each kind of outcome is rendered.
package service
