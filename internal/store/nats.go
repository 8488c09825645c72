package store

import (
	"context"

	"github.com/metal-toolbox/cookiejar/app"
	"github.com/metal-toolbox/cookiejar/internal/jar"
	"github.com/metal-toolbox/cookiejar/internal/metrics"
	"github.com/nats-io/nats.go"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.hollow.sh/toolbox/events"
	"go.hollow.sh/toolbox/events/pkg/kv"
	"go.opentelemetry.io/otel/trace"
)

const (
	pkgName = "internal/store"
)

// NATS keeps the aggregate cookie string under a single key of a JetStream
// key/value bucket, shared by every process pointed at it.
type NATS struct {
	bucket nats.KeyValue
	key    string
}

// NewNATS binds the key/value bucket named in opts on an open stream,
// creating it when missing.
func NewNATS(stream *events.NatsJetstream, opts *app.KVOptions) (*NATS, error) {
	if opts == nil {
		return nil, errors.Wrap(ErrStoreAccess, "nats kv options required")
	}

	kvOpts := []kv.Option{
		kv.WithDescription("ambient cookie store"),
	}

	if opts.Replicas > 1 {
		kvOpts = append(kvOpts, kv.WithReplicas(opts.Replicas))
	}

	handle, err := kv.CreateOrBindKVBucket(stream, opts.Bucket, kvOpts...)
	if err != nil {
		metrics.NATSError("bind-bucket")
		return nil, accessError(err, "nats bucket "+opts.Bucket)
	}

	return &NATS{bucket: handle, key: opts.Key}, nil
}

func (n *NATS) Read() (string, error) {
	_, span := otel.Tracer(pkgName).Start(context.Background(), "store.NATS.Read")
	defer span.End()

	value, _, err := n.get()
	if err != nil {
		spanError(span, err)
		return "", err
	}

	return value, nil
}

// Write merges the fragment into the stored jar. The update is conditional
// on the revision read, so a concurrent writer surfaces as an error.
func (n *NATS) Write(fragment string) error {
	_, span := otel.Tracer(pkgName).Start(
		context.Background(),
		"store.NATS.Write",
		trace.WithAttributes(attribute.String("cookiejar.key", n.key)),
	)
	defer span.End()

	current, revision, err := n.get()
	if err != nil {
		spanError(span, err)
		return err
	}

	j := jar.Parse(current)
	j.Apply(fragment)

	if revision == 0 {
		_, err = n.bucket.Create(n.key, []byte(j.String()))
	} else {
		_, err = n.bucket.Update(n.key, []byte(j.String()), revision)
	}

	if err != nil {
		metrics.NATSError("kv-put")
		err = accessError(err, "nats put "+n.key)
		spanError(span, err)

		return err
	}

	return nil
}

// get returns the stored value and its revision, zero when the key is absent.
func (n *NATS) get() (string, uint64, error) {
	entry, err := n.bucket.Get(n.key)
	switch {
	case err == nil:
		return string(entry.Value()), entry.Revision(), nil
	case errors.Is(err, nats.ErrKeyNotFound):
		return "", 0, nil
	default:
		metrics.NATSError("kv-get")
		return "", 0, accessError(err, "nats get "+n.key)
	}
}

func spanError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}
