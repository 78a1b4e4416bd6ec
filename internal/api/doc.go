// Package api handles incoming HTTP requests for the exercise tracker:
// request binding and validation, calls into the exercise service, and
// response formatting. It translates HTTP concerns to business operations
// and service outcomes back to status codes and bodies.
package api
