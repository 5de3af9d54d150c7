package config

// SelectorConfig holds the policy knobs the Representation Selector reads
// when analyzing a column's value distribution.
type SelectorConfig struct {
	// MaxInlineLength is the largest string length (bytes) that may live in
	// a StringDictionary/ByteStringDictionary block; anything longer is
	// forced into the exceptions side table.
	MaxInlineLength int `yaml:"max_inline_length" json:"max_inline_length"`

	// EagerExceptionFrequency is the fraction of rows a dictionary entry
	// must occupy before the selector pre-materializes it into the
	// exceptions table instead of the shared byte block.
	EagerExceptionFrequency float64 `yaml:"eager_exception_frequency" json:"eager_exception_frequency"`

	// DictionaryCardinalityRatio is the distinct/total ratio below which a
	// primitive numeric column prefers PrimitiveDictionary over
	// PrimitiveArray/BitSlicedPrimitiveArray.
	DictionaryCardinalityRatio float64 `yaml:"dictionary_cardinality_ratio" json:"dictionary_cardinality_ratio"`

	// ObjectDictionarySavingsThreshold is the savings fraction (1 -
	// distinct/total) an opaque object column must clear before the
	// selector prefers ObjectDictionary over ObjectArray.
	ObjectDictionarySavingsThreshold float64 `yaml:"object_dictionary_savings_threshold" json:"object_dictionary_savings_threshold"`
}

// DefaultSelectorConfig returns the selector's default policy.
func DefaultSelectorConfig() SelectorConfig {
	return SelectorConfig{
		MaxInlineLength:                  65535,
		EagerExceptionFrequency:          0.2,
		DictionaryCardinalityRatio:       0.5,
		ObjectDictionarySavingsThreshold: 0.25,
	}
}

// LoadSelectorConfig loads a SelectorConfig from a YAML file, substituting
// ${VAR} environment references. Fields absent from the file keep their
// DefaultSelectorConfig value; a field set explicitly (even to zero) keeps
// the value from the file.
func LoadSelectorConfig(path string) (SelectorConfig, error) {
	cfg := DefaultSelectorConfig()
	if err := Load(path, &cfg); err != nil {
		return SelectorConfig{}, err
	}
	return cfg, nil
}
