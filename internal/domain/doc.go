// Package domain contains the core business entities of the exercise tracker:
// users and the exercise entries recorded against them. It is independent of
// any storage technology or delivery mechanism.
package domain
