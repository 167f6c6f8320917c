package scaffold

// TimestampsSnippet is emitted into #TIMESTAMPS# when timestamps are enabled.
const TimestampsSnippet = "\tpublic static $timestamps = true;\n\n"

// SettingsSource is a key/value configuration lookup.
// *koanf.Koanf satisfies it.
type SettingsSource interface {
	Bool(key string) bool
}

// ResolveTimestamps returns the timestamps declaration when either the
// "timestamps" key or its "t" alias is truthy.
func ResolveTimestamps(src SettingsSource) string {
	if src == nil {
		return ""
	}
	if src.Bool("timestamps") || src.Bool("t") {
		return TimestampsSnippet
	}
	return ""
}
