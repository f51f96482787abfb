package testdata

// VisibilityTest keeps public members and members scoped to internal/auth
//
//fields: visibility(pub, pub(internal/auth))
type VisibilityTest struct {
	Host       string
	maxRetries int
	token      string `fields:"scope=internal/auth"`
	session    string `fields:"scope=internal/session"`
}

// PrivateOnly keeps unexported members
//
//fields: visibility(priv)
type PrivateOnly struct {
	Host   string
	buffer []byte
	cache_size int
}
