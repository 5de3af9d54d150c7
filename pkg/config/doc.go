// Package config provides configuration loading for coltable's
// Representation Selector.
//
// # Key Features
//
//   - SelectorConfig: the policy knobs the Representation Selector reads
//     when choosing a codec
//   - Environment variable substitution with ${VAR_NAME} syntax
//   - YAML loading with sensible defaults
//
// # Usage
//
//	cfg, err := config.LoadSelectorConfig("selector.yaml")
//	if err != nil {
//		cfg = config.DefaultSelectorConfig()
//	}
//
//	# selector.yaml
//	max_inline_length: 65535
//	eager_exception_frequency: 0.2
//	dictionary_cardinality_ratio: ${DICT_RATIO}
package config
