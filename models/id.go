package models

// UserID identifies a User account.
type UserID string

// ProviderID identifies a Provider profile. A provider profile is owned by a
// User account; the two identifiers are never interchangeable, so each gets
// its own type. Every cross-reference between them goes through a Provider
// lookup.
type ProviderID string

func (id UserID) String() string { return string(id) }

func (id ProviderID) String() string { return string(id) }
