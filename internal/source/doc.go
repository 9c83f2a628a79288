// Package source provides the HTTP client for the directory's record source.
//
// # Overview
//
// The record source is a single read-only endpoint returning a JSON array of
// people. The client issues one GET, decodes the array in source order, and
// hands the result back to the loader. It never retries and never caches;
// the app layer decides how often it is called (exactly once per session).
//
// # Files
//
//   - client.go: Fetcher interface, Client, request handling
//   - types.go: Person and its nested Address/Company objects
//
// # Usage
//
//	client, err := source.NewClient("https://jsonplaceholder.typicode.com/users")
//	if err != nil {
//		return err
//	}
//	people, err := client.FetchPeople(ctx)
//
// # URL Handling
//
//   - "" → DefaultURL
//   - "example.com/users" → https://example.com/users
//   - "http://localhost:8080/users" is used as given
//   - any scheme other than http/https is rejected
//
// # Errors
//
// Every failure is wrapped with the step that failed:
//
//   - "execute request: dial tcp …: connection refused"
//   - "source https://example.com/users returned status 502"
//   - "decode response: invalid character 'n' looking for beginning of value"
//
// Individual fields are not validated. A record with a missing field decodes
// to zero values; only total request or decode failure is an error.
//
// # Timeouts
//
// Requests carry the caller's context and, by default, no timeout of their
// own. WithTimeout adds one when configured.
package source
