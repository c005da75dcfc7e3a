package mongo

import (
	"context"
	"testing"
	"time"
)

func TestConnect_InvalidURI(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	// A malformed URI fails URI validation before any dial happens, so
	// the error surfaces immediately even without a server.
	client, db, err := Connect(ctx, "not-a-mongo-uri", "partner_directory", 50*time.Millisecond)
	if err == nil {
		t.Fatal("expected error for malformed URI, got nil")
	}
	if client != nil || db != nil {
		t.Fatalf("expected nil client and database on failure, got %v / %v", client, db)
	}
}
