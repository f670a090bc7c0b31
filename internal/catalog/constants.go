package catalog

// Schema registration name for the catalog document
const SchemaName = "catalog.schema.json"

// Error messages
const (
	ErrMsgReadCatalogFailed  = "failed to read catalog file"
	ErrMsgParseCatalogFailed = "failed to parse catalog"
	ErrMsgSchemaFailed       = "catalog schema validation failed"
	ErrMsgDuplicatePhone     = "duplicate phone id"
	ErrMsgDuplicateCase      = "duplicate case id"
	ErrMsgUnknownPoolItem    = "pool references unknown phone"
	ErrMsgInvalidWeight      = "pool weight must be a positive finite number"
	ErrMsgUnknownStarter     = "starter item is not a known phone"
	ErrMsgInvalidRarity      = "unknown rarity"
	ErrFmtPhoneDefinition    = "phone %q: %w"
	ErrFmtCaseDefinition     = "case %d: %w"
)

// Log messages
const (
	LogMsgCatalogLoaded = "Catalog loaded"
	LogMsgOrphanedPhone = "Phone not referenced by any case pool (orphaned)"
)

// Log field keys
const (
	LogFieldSource = "source"
	LogFieldPhones = "phones"
	LogFieldCases  = "cases"
	LogFieldPhone  = "phone"
)

// SourceEmbedded names the built-in catalog in logs
const SourceEmbedded = "embedded"
