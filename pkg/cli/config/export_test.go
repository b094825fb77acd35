package config

// NewRepositoryForTest creates a Repository config without parsing flags
func NewRepositoryForTest(backend, filePath string) *Repository {
	return &Repository{
		backend:  backend,
		filePath: filePath,
	}
}

// NewLoggerForTest creates a Logger config without parsing flags
func NewLoggerForTest(level, format, output string) *Logger {
	return &Logger{
		level:  level,
		format: format,
		output: output,
	}
}

// NewSlackForTest creates a Slack config for testing purposes
func NewSlackForTest(webhookURL, channel string) *Slack {
	return &Slack{
		webhookURL: webhookURL,
		channel:    channel,
	}
}
