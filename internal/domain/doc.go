// Package domain contains the core domain model for Vitalis.
//
// The domain is transport-agnostic: it mirrors the records the API serves
// and does not depend on net/http or any encoding beyond struct tags.
// Infra/adapters map into/from these types.
package domain
