package slack

// Export internal functions for testing
var (
	BuildExportMessage = buildExportMessage

	// TruncateToMaxBytes is exported for testing UTF-8 truncation
	TruncateToMaxBytes = truncateToMaxBytes
)
