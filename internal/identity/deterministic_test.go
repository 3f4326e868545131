package identity

import (
	"testing"

	"github.com/google/uuid"
)

func TestUUIDDeterminism(t *testing.T) {
	first := UUID("go-corpus:post:hello")
	second := UUID("go-corpus:post:hello")
	if first == uuid.Nil {
		t.Fatalf("expected non-nil UUID")
	}
	if first != second {
		t.Fatalf("expected identical UUIDs for the same key, got %s and %s", first, second)
	}

	other := UUID("go-corpus:post:other")
	if other == first {
		t.Fatalf("expected different keys to produce different UUIDs")
	}
}

func TestUUIDEmptyKey(t *testing.T) {
	if got := UUID("  "); got != uuid.Nil {
		t.Fatalf("expected uuid.Nil for blank key, got %s", got)
	}
}

func TestPostUUIDNormalizesSlug(t *testing.T) {
	if PostUUID("Hello") != PostUUID(" hello ") {
		t.Fatalf("expected slug case and whitespace to be normalized")
	}
}
