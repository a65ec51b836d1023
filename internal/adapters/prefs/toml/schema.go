package toml

const currentSchemaVersion = 1

type fileSchema struct {
	Version     int                `toml:"version"`
	Namespaces  []string           `toml:"namespaces"`
	StringLists []stringListSchema `toml:"string_lists"`
	Strings     []stringSchema     `toml:"strings"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

type stringListSchema struct {
	Key    string   `toml:"key"`
	Values []string `toml:"values"`
}

type stringSchema struct {
	Key   string `toml:"key"`
	Value string `toml:"value"`
}
