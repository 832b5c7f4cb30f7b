package domain

import (
	interfaces "wertsigner/internal/domain/interfaces"
	types "wertsigner/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	Kind                   = types.Kind
	Value                  = types.Value
	Field                  = types.Field
	Record                 = types.Record
	Secret                 = types.Secret
	SignOptions            = types.SignOptions
	KeySource              = types.KeySource
	MissingFieldsError     = types.MissingFieldsError
	UnknownCredentialError = types.UnknownCredentialError
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	CredentialStore        = interfaces.CredentialStore
	MutableCredentialStore = interfaces.MutableCredentialStore
	KeyLookup              = interfaces.KeyLookup
	KeyLookupFunc          = interfaces.KeyLookupFunc
	RecordSigner           = interfaces.RecordSigner
)

const (
	KindString = types.KindString
	KindInt    = types.KindInt
	KindFloat  = types.KindFloat

	FieldAddress         = types.FieldAddress
	FieldCommodity       = types.FieldCommodity
	FieldCommodityAmount = types.FieldCommodityAmount
	FieldNetwork         = types.FieldNetwork
	FieldSCAddress       = types.FieldSCAddress
	FieldSCInputData     = types.FieldSCInputData
	FieldSignature       = types.FieldSignature

	SourceExplicitKey = types.SourceExplicitKey
	SourceStore       = types.SourceStore
	SourceFallback    = types.SourceFallback
)

var (
	ErrMissingFields      = types.ErrMissingFields
	ErrUnknownCredential  = types.ErrUnknownCredential
	ErrKeyRequired        = types.ErrKeyRequired
	ErrEmptyKey           = types.ErrEmptyKey
	ErrInvalidKeyLength   = types.ErrInvalidKeyLength
	ErrInvalidKeyEncoding = types.ErrInvalidKeyEncoding

	NullSecret = types.NullSecret
)

// Constructors re-exported for callers that only import domain.
var (
	String             = types.String
	Int                = types.Int
	Float              = types.Float
	SecretOf           = types.SecretOf
	NewRecord          = types.NewRecord
	StaticKey          = interfaces.StaticKey
	RequiredFieldNames = types.RequiredFieldNames
	SignedFieldNames   = types.SignedFieldNames
)
