package types

// AppKind identifies the binary the app package is bootstrapped for.
type AppKind string

// StoreKind selects the ambient cookie store backend.
type StoreKind string

const (
	AppKindCookieJar AppKind = "cookiejar"

	StoreKindMemory   StoreKind = "memory"
	StoreKindFile     StoreKind = "file"
	StoreKindNats     StoreKind = "nats"
	StoreKindDocument StoreKind = "document"
)

// Valid returns true for store kinds known to the store package.
func (k StoreKind) Valid() bool {
	switch k {
	case StoreKindMemory, StoreKindFile, StoreKindNats, StoreKindDocument:
		return true
	default:
		return false
	}
}
