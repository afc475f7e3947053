// Package geosuggest is a client for the Yandex Maps geosuggest API.
//
// The API returns ranked place completions for a text prefix and an
// optional spatial context: a search window given as a center and a
// span, a bounding box or a user location.
//
// Request
//
// Request is a description of a single suggest call. It is created
// with NewRequest and then tuned by setting its fields. Request knows
// how to encode itself into query parameters with a stable order and
// locale independent number formatting.
//
// Client
//
// Client owns an API key and a transport. Each Suggest call makes
// exactly one GET request, no retries, no caching. Errors are typed:
// a caller can tell TransportError from DecodeError and both of them
// from ErrCancelled.
package geosuggest
