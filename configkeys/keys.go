package configkeys

const (
	delimiter = "."

	ConfigPrefix = "allsums"

	ConfigTarget = ConfigPrefix + delimiter + "n"
	ConfigStep   = ConfigPrefix + delimiter + "step"
	ConfigMaxN   = ConfigPrefix + delimiter + "max_n"

	ConfigTablePrefix     = ConfigPrefix + delimiter + "table"
	ConfigTableBackend    = ConfigTablePrefix + delimiter + "backend"
	ConfigTableHotEntries = ConfigTablePrefix + delimiter + "hot_entries"

	ConfigOutputPrefix = ConfigPrefix + delimiter + "output"
	ConfigOutputPairs  = ConfigOutputPrefix + delimiter + "pairs"
	ConfigOutputCount  = ConfigOutputPrefix + delimiter + "count"
	ConfigOutputStats  = ConfigOutputPrefix + delimiter + "stats"

	ConfigLogPrefix = ConfigPrefix + delimiter + "log"
	ConfigLogLevel  = ConfigLogPrefix + delimiter + "level"
)
