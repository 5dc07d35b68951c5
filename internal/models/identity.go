package models

import "github.com/google/uuid"

// IdentityKind tags which owner a cart row belongs to.
type IdentityKind string

const (
	IdentitySession IdentityKind = "session"
	IdentityUser    IdentityKind = "user"
)

// CartIdentity is the owner of cart rows: an anonymous session token or an
// authenticated user id. Exactly one payload is meaningful, selected by Kind.
type CartIdentity struct {
	Kind         IdentityKind
	SessionToken string
	UserID       uuid.UUID
}

func SessionIdentity(token string) CartIdentity {
	return CartIdentity{Kind: IdentitySession, SessionToken: token}
}

func UserIdentity(id uuid.UUID) CartIdentity {
	return CartIdentity{Kind: IdentityUser, UserID: id}
}

func (id CartIdentity) IsZero() bool { return id.Kind == "" }

// CacheKey is a stable short key for per-identity counters in redis.
func (id CartIdentity) CacheKey() string {
	switch id.Kind {
	case IdentityUser:
		return "u:" + id.UserID.String()
	case IdentitySession:
		return "s:" + id.SessionToken
	}
	return ""
}

// Owns reports whether the cart row belongs to this identity.
func (id CartIdentity) Owns(item *CartItem) bool {
	switch id.Kind {
	case IdentityUser:
		return item.UserID != nil && *item.UserID == id.UserID
	case IdentitySession:
		return item.SessionToken != nil && *item.SessionToken == id.SessionToken
	}
	return false
}

// Apply sets the owner columns on a cart row.
func (id CartIdentity) Apply(item *CartItem) {
	switch id.Kind {
	case IdentityUser:
		uid := id.UserID
		item.UserID = &uid
		item.SessionToken = nil
	case IdentitySession:
		tok := id.SessionToken
		item.SessionToken = &tok
		item.UserID = nil
	}
}
