package storage

// KV is a string key/value store with the semantics of browser local
// storage: Get reports whether the key exists, Delete of a missing key is a
// no-op.
type KV interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
	Delete(keys ...string) error
}

// Open returns the SQL store when connectionString is set and the TOML
// session file otherwise. The returned func releases the store.
func Open(connectionString string) (KV, func() error, error) {
	if connectionString != "" {
		st, err := NewStorage(connectionString)
		if err != nil {
			return nil, nil, err
		}
		return st, st.Close, nil
	}

	path, err := DefaultSessionPath()
	if err != nil {
		return nil, nil, err
	}
	return NewFileKV(path), func() error { return nil }, nil
}
