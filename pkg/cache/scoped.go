package cache

// ScopedKeyer prepends a fixed prefix to every key of an inner Keyer, so
// the CLI and the server can share one backend without sharing entries.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer scopes inner, or the default keyer when inner is nil.
// Scoping a ScopedKeyer again concatenates the prefixes, outer first.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	switch k := inner.(type) {
	case nil:
		inner = NewDefaultKeyer()
	case ScopedKeyer:
		return ScopedKeyer{inner: k.inner, prefix: prefix + k.prefix}
	}
	return ScopedKeyer{inner: inner, prefix: prefix}
}

// Prefix returns the prefix added to every key.
func (k ScopedKeyer) Prefix() string { return k.prefix }

func (k ScopedKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(planHash, opts)
}
