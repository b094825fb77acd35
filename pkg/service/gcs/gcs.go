package gcs

import (
	"context"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

// Scheme is the URL prefix of Cloud Storage destinations
const Scheme = "gs://"

var (
	ErrInvalidURL = goerr.New("invalid gs:// URL")
)

// Object points to a Cloud Storage object
type Object struct {
	Bucket string
	Name   string
}

// String returns the object as a gs:// URL
func (o Object) String() string {
	return Scheme + o.Bucket + "/" + o.Name
}

// IsURL reports whether dst names a Cloud Storage object
func IsURL(dst string) bool {
	return strings.HasPrefix(dst, Scheme)
}

// ParseURL splits gs://bucket/path/to/object into bucket and object name
func ParseURL(raw string) (Object, error) {
	if !IsURL(raw) {
		return Object{}, goerr.Wrap(ErrInvalidURL, "missing gs:// scheme", goerr.V("url", raw))
	}

	bucket, name, ok := strings.Cut(strings.TrimPrefix(raw, Scheme), "/")
	if !ok || bucket == "" || name == "" || strings.HasSuffix(name, "/") {
		return Object{}, goerr.Wrap(ErrInvalidURL, "bucket and object name are required", goerr.V("url", raw))
	}

	return Object{Bucket: bucket, Name: name}, nil
}

// Client uploads export documents to Cloud Storage
type Client struct {
	client *storage.Client
}

type config struct {
	clientOptions []option.ClientOption
}

// Option configures the Client
type Option func(*config)

// WithClientOptions passes options through to the storage client, e.g.
// option.WithEndpoint for an emulator
func WithClientOptions(opts ...option.ClientOption) Option {
	return func(c *config) {
		c.clientOptions = append(c.clientOptions, opts...)
	}
}

// New creates a Cloud Storage client using application default credentials
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	client, err := storage.NewClient(ctx, cfg.clientOptions...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create storage client")
	}

	return &Client{client: client}, nil
}

// Upload writes data to the object, replacing any previous content
func (c *Client) Upload(ctx context.Context, obj Object, contentType string, data []byte) error {
	w := c.client.Bucket(obj.Bucket).Object(obj.Name).NewWriter(ctx)
	w.ContentType = contentType

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write object", goerr.V("object", obj.String()))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to finalize object", goerr.V("object", obj.String()))
	}
	return nil
}

// Close releases the underlying client
func (c *Client) Close() error {
	if err := c.client.Close(); err != nil {
		return goerr.Wrap(err, "failed to close storage client")
	}
	return nil
}
