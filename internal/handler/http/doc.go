// Package http implements the HTTP transport of the item transfer API.
//
// Every business route answers HTTP 200 with the [models.Response] envelope;
// the status code inside the envelope tells success ("0") from the error
// kinds. Requests that cannot be decoded into the expected shape get HTTP 422
// with a list of offending fields. Tracing, access logging, metrics, panic
// recovery and session authentication are middleware of this package.
package http
