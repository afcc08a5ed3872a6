package db

import (
	"context"
	"io"
	"log"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"luxe-jewelry-api/internal/domain"
)

const (
	maxConnectAttempts  = 5
	initialConnectDelay = time.Second
	pingTimeout         = 5 * time.Second
)

// Store owns the document store connection for the process lifetime. A Store
// whose connection never succeeded is still usable: every collection access
// reports domain.ErrStoreUnavailable instead of panicking, so dependents can
// degrade to service-unavailable responses.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	name   string
}

// Connect establishes the store handle, verifying liveness with a bounded
// ping. Failed attempts are retried with doubling delay up to
// maxConnectAttempts; exhausting the retries returns an unavailable Store
// rather than an error. There is no background reconnection afterwards.
func Connect(ctx context.Context, uri, dbName string, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	delay := initialConnectDelay
	for attempt := 1; attempt <= maxConnectAttempts; attempt++ {
		client, err := connectOnce(ctx, uri)
		if err == nil {
			logger.Printf("store: connected to %s database=%s", uri, dbName)
			return &Store{client: client, db: client.Database(dbName), name: dbName}
		}

		logger.Printf("store: connect attempt %d/%d failed: %v", attempt, maxConnectAttempts, err)
		if attempt < maxConnectAttempts {
			time.Sleep(delay)
			delay *= 2
		}
	}

	logger.Printf("store: giving up after %d attempts, running unavailable", maxConnectAttempts)
	return &Store{name: dbName}
}

func connectOnce(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, err
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, err
	}
	return client, nil
}

// NewUnavailable returns a Store that never connected, for callers that
// need the degraded state without dialing.
func NewUnavailable(dbName string) *Store {
	return &Store{name: dbName}
}

// Available reports whether the store handle was successfully established.
func (s *Store) Available() bool {
	return s != nil && s.client != nil
}

// Status describes the connection state for the health endpoint.
func (s *Store) Status() string {
	if s.Available() {
		return "connected"
	}
	return "unavailable"
}

// DatabaseName returns the configured database name, connected or not.
func (s *Store) DatabaseName() string {
	if s == nil {
		return ""
	}
	return s.name
}

// Collection returns a handle to the named collection, or
// domain.ErrStoreUnavailable when the connection was never established.
// Checked by callers before every operation, not assumed.
func (s *Store) Collection(name string) (*mongo.Collection, error) {
	if !s.Available() {
		return nil, domain.ErrStoreUnavailable
	}
	return s.db.Collection(name), nil
}

// Close releases the store connection. Safe to call when the connection
// never succeeded.
func (s *Store) Close(ctx context.Context) error {
	if !s.Available() {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	s.db = nil
	return err
}
