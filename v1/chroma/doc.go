// Package chroma implements vectordb.Service on the Chroma HTTP API.
//
// Collection lookups go through the collection listing, so a missing
// collection is told apart from a failed request.
package chroma
