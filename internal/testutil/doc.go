// Package testutil contains helper builders and fixtures used across tests
// to reduce boilerplate when constructing product records and canned
// generation payloads for the stub provider. These helpers are intentionally
// minimal and avoid adding third-party dependencies. They are not intended
// for production usage.
package testutil
