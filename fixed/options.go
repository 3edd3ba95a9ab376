package fixed

import "golang.org/x/text/language"

// FormatConfig controls how Text renders vectors and matrices.
type FormatConfig struct {
	// Verb is the fmt verb applied to every element.
	Verb rune

	// Precision is the element precision; negative means the verb's default.
	Precision int

	// Language selects locale number formatting. language.Und renders
	// like fmt.
	Language language.Tag
}

// FormatOption mutates a FormatConfig.
type FormatOption func(*FormatConfig)

// DefaultFormatConfig returns the configuration used by String.
func DefaultFormatConfig() FormatConfig {
	return FormatConfig{
		Verb:      'v',
		Precision: -1,
		Language:  language.Und,
	}
}

// WithVerb sets the element verb, e.g. 'f', 'e' or 'd'.
func WithVerb(verb rune) FormatOption {
	return func(cfg *FormatConfig) {
		if verb != 0 {
			cfg.Verb = verb
		}
	}
}

// WithPrecision sets the element precision.
func WithPrecision(precision int) FormatOption {
	return func(cfg *FormatConfig) {
		if precision >= 0 {
			cfg.Precision = precision
		}
	}
}

// WithLanguage renders numbers using the conventions of tag.
func WithLanguage(tag language.Tag) FormatOption {
	return func(cfg *FormatConfig) {
		cfg.Language = tag
	}
}

// ApplyFormatOptions applies zero or more options to the default config.
func ApplyFormatOptions(opts ...FormatOption) FormatConfig {
	cfg := DefaultFormatConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
