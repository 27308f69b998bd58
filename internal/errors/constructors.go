package errors

// Convenience constructors for the pipeline error taxonomy

// Config errors

func ConfigNotFound(path string) *DeckError {
	return New(CategoryConfig, SeverityFatal, "configuration file not found").
		WithContext("path", path)
}

func ConfigParseError(path string, cause error) *DeckError {
	return Wrap(cause, CategoryConfig, SeverityFatal, "configuration file could not be parsed").
		WithContext("path", path)
}

func ConfigRequired(field string) *DeckError {
	return New(CategoryConfig, SeverityFatal, "required configuration missing").
		WithContext("field", field)
}

func ValidationFailed(field, reason string) *DeckError {
	return New(CategoryValidation, SeverityFatal, "validation failed").
		WithContext("field", field).
		WithContext("reason", reason)
}

// Discovery and resolution errors

func NotADirectory(path string) *DeckError {
	return New(CategoryDiscovery, SeverityFatal, "slide directory is not a directory").
		WithContext("path", path)
}

func EmptyDirectory(path string) *DeckError {
	return New(CategoryDiscovery, SeverityWarning, "no markdown slides found in directory").
		WithContext("path", path)
}

func MissingSlideFile(name, path string) *DeckError {
	return New(CategoryDiscovery, SeverityFatal, "included slide file does not exist").
		WithContext("name", name).
		WithContext("path", path)
}

// Assembly errors

func ReadError(path string, cause error) *DeckError {
	return Wrap(cause, CategoryAssembly, SeverityFatal, "slide file could not be read").
		WithContext("path", path)
}

// Template and output errors

func TemplateMissingPlaceholder(token string) *DeckError {
	return New(CategoryTemplate, SeverityFatal, "template is missing a required placeholder").
		WithContext("token", token)
}

func WriteError(path string, cause error) *DeckError {
	return Wrap(cause, CategoryFileSystem, SeverityFatal, "output document could not be written").
		WithContext("path", path)
}
