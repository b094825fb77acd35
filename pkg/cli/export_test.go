package cli

// Export internal functions for testing
var (
	RenderRanking    = renderRanking
	RenderRisks      = renderRisks
	WriteDestination = writeDestination
)
