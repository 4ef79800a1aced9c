// Package testutil contains helper builders and canned state spaces used
// across tests to reduce boilerplate when constructing descriptors and
// asserting search behavior. These helpers are intentionally minimal and are
// not intended for production usage.
package testutil
