// Package domain defines the record model, error kinds and contracts shared
// across the signer. It contains plain types and interfaces only.
package domain
