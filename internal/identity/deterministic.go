// Package identity derives stable UUIDs from corpus slugs. The same input
// always yields the same identifier, so rebuilding a corpus from the same
// sources never reassigns post IDs.
package identity

import (
	"strings"

	hashid "github.com/goliatone/hashid/pkg/hashid"
	"github.com/google/uuid"
)

const postKeyPrefix = "go-corpus:post:"

// PostUUID returns the stable identifier for a post slug.
func PostUUID(slug string) uuid.UUID {
	return UUID(postKeyPrefix + strings.ToLower(strings.TrimSpace(slug)))
}

// UUID hashes key into a UUID via go-hashid. Keys must carry an entity
// prefix so different entity kinds cannot collide on the same raw value.
func UUID(key string) uuid.UUID {
	key = strings.TrimSpace(key)
	if key == "" {
		return uuid.Nil
	}
	uid, err := hashid.NewUUID(key,
		hashid.WithHashAlgorithm(hashid.SHA256),
		hashid.WithNormalization(true),
	)
	if err != nil || uid == uuid.Nil {
		return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key))
	}
	return uid
}
