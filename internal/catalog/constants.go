package catalog

// Error messages for catalog loading
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file %s: %w"
	ErrMsgParseCatalogFailed = "failed to parse catalog: %w"
	ErrMsgDuplicateAnimal    = "%w: duplicate key %q"
	ErrMsgValidateAnimal     = "%w: %s: %v"
	ErrMsgEmptyCatalog       = "%w: catalog has no animals"
	ErrMsgSchemaCatalog      = "%w: %v"
)
