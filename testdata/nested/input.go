package testdata

// ServerMetadata contains metadata about a server
//
//fields: name = "MetadataField"
type ServerMetadata struct {
	Name  string
	Owner string
}

// Config is a configuration with a member flattened by the record
//
//fields: flatten(Metadata)
type Config struct {
	Port     int
	Metadata ServerMetadata
}
