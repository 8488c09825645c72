package store

import (
	"github.com/metal-toolbox/cookiejar/app"
	"github.com/metal-toolbox/cookiejar/internal/metrics"
	"github.com/metal-toolbox/cookiejar/pkg/types"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.hollow.sh/toolbox/events"
)

var errStoreKind = errors.New("unsupported store kind")

// New returns the Store configured for the app, along with a function that
// releases any connection it holds.
func New(cfg *app.Configuration) (Store, func(), error) {
	noop := func() {}

	switch cfg.StoreKind {
	case types.StoreKindMemory:
		return NewMemory(""), noop, nil

	case types.StoreKindFile:
		return NewFile(afero.NewOsFs(), cfg.FileOptions.Path), noop, nil

	case types.StoreKindNats:
		stream, err := openStream(cfg.NatsOptions)
		if err != nil {
			return nil, noop, err
		}

		closeStream := func() { _ = stream.Close() }

		s, err := NewNATS(stream, cfg.KVOptions)
		if err != nil {
			closeStream()
			return nil, noop, err
		}

		return s, closeStream, nil

	case types.StoreKindDocument:
		s, err := NewDocument()
		if err != nil {
			return nil, noop, err
		}

		return s, noop, nil

	default:
		return nil, noop, errors.Wrap(errStoreKind, string(cfg.StoreKind))
	}
}

// openStream connects the toolbox event stream, which owns the NATS
// connection and JetStream context the KV store is bound through.
func openStream(opts *events.NatsOptions) (*events.NatsJetstream, error) {
	if opts == nil {
		return nil, errors.Wrap(ErrStoreAccess, "nats options required")
	}

	stream, err := events.NewStream(*opts)
	if err != nil {
		metrics.NATSError("new-stream")
		return nil, accessError(err, "nats stream")
	}

	if err := stream.Open(); err != nil {
		metrics.NATSError("open-stream")
		return nil, accessError(err, "nats connect")
	}

	js, ok := stream.(*events.NatsJetstream)
	if !ok {
		_ = stream.Close()
		return nil, errors.Wrap(ErrStoreAccess, "event stream is not a NATS JetStream")
	}

	return js, nil
}
