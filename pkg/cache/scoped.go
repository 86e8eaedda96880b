package cache

// ScopedKeyer prefixes the keys of another Keyer. Deployments sharing one
// Redis instance use distinct prefixes so their entries never collide.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner, or the default keyer when inner is nil.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

func (k *ScopedKeyer) IconKey(id, color string, size int) string {
	return k.prefix + k.inner.IconKey(id, color, size)
}

func (k *ScopedKeyer) RenderKey(payloadHash string, opts RenderKeyOpts) string {
	return k.prefix + k.inner.RenderKey(payloadHash, opts)
}
