package usecase

// Export internal functions for testing
var (
	BuildComparison = buildComparison
)
