package interfaces

// KeyLookup is the host-supplied last-resort key source, typically backed by
// configuration or the environment. It is called synchronously and at most
// once per signature.
type KeyLookup interface {
	LookupKey() (key string, ok bool)
}

// KeyLookupFunc adapts a plain function to KeyLookup.
type KeyLookupFunc func() (string, bool)

func (f KeyLookupFunc) LookupKey() (string, bool) { return f() }

// StaticKey returns a KeyLookup that always yields key.
func StaticKey(key string) KeyLookup {
	return KeyLookupFunc(func() (string, bool) { return key, key != "" })
}
