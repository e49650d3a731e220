// Package identity provides authenticated identity management for EaseBoard
// requests.
//
// This package separates the concept of an authenticated identity from the
// raw token parsing. An Identity combines session token claims (user id,
// email, role, timestamps) with request-specific context such as the remote
// IP.
//
// # Basic Usage
//
//	// Build an identity from verified session claims
//	id := &identity.Identity{UserID: userID, Email: email, Role: role}
//	id.WithRemoteIP(clientIP)
//
//	// Store in request context
//	ctx = identity.Set(ctx, id)
//
//	// Retrieve from context
//	id, ok := identity.Get(ctx)
//
// The middleware package handles parsing and verifying the raw session
// token; handlers only ever see the Identity pulled from the context.
package identity
