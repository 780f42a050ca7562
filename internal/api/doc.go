// Package api handles incoming HTTP requests, request decoding and response
// formatting for the phonebook. It adapts HTTP to the service layer:
//
//   - ContactHandler serves /api/persons and /api/persons/{id}
//   - InfoHandler serves the /info summary page
//   - HealthHandler serves /health
//
// Every error from the service layer goes through HandleAPIError, which
// picks the status code and client message from the error's domain.Kind.
package api
