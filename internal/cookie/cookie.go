// Package cookie provides the accessor used to set, get and remove named
// values in an ambient cookie store. Store failures never reach the caller,
// they are logged as warnings and replaced with a default.
package cookie

import (
	"regexp"

	"github.com/metal-toolbox/cookiejar/internal/metrics"
	"github.com/metal-toolbox/cookiejar/internal/store"
	"github.com/sirupsen/logrus"
)

const (
	opSet    = "set"
	opGet    = "get"
	opRemove = "remove"
)

// Accessor reads and writes cookies through a Store.
type Accessor struct {
	store  store.Store
	logger *logrus.Logger
}

// New returns an Accessor over the given store, logging failures to logger.
func New(s store.Store, logger *logrus.Logger) *Accessor {
	return &Accessor{store: s, logger: logger}
}

// Set writes name=value into the store.
func (a *Accessor) Set(name, value string) {
	metrics.Operation(opSet)

	if err := a.store.Write(name + "=" + value); err != nil {
		a.warn(opSet, name, err, "failed to save cookie")
	}
}

// Get returns the value stored under name, or nil when the store holds no
// such cookie. def is returned only when the store could not be read.
//
// name is matched literally, regular expression metacharacters in it carry
// no special meaning: "a.b" does not match a cookie named "axb". A match
// starts at the beginning of the store string or after a space.
func (a *Accessor) Get(name string, def *string) *string {
	metrics.Operation(opGet)

	cookies, err := a.store.Read()
	if err != nil {
		a.warn(opGet, name, err, "failed to load cookie")
		return def
	}

	match := pattern(name).FindStringSubmatch(cookies)
	if match == nil {
		return nil
	}

	value := match[2]

	return &value
}

// Remove overwrites name with an empty value, which the store treats as
// an immediate expiry.
func (a *Accessor) Remove(name string) {
	metrics.Operation(opRemove)

	if err := a.store.Write(name + "="); err != nil {
		a.warn(opRemove, name, err, "failed to remove cookie")
	}
}

func (a *Accessor) warn(op, name string, err error, msg string) {
	metrics.StoreError(op)

	a.logger.WithError(err).WithFields(
		logrus.Fields{
			"cookie":    name,
			"operation": op,
		},
	).Warn(msg)
}

// pattern matches name at the start of the aggregate string or after a
// space, capturing the value up to the next ';'.
func pattern(name string) *regexp.Regexp {
	return regexp.MustCompile("(^| )" + regexp.QuoteMeta(name) + "=([^;]*)(;|$)")
}

// String returns a pointer to s, for use as the default passed to Get.
func String(s string) *string {
	return &s
}
