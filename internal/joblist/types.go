package joblist

// JobDef holds one render job parsed from a jobs XML file.
type JobDef struct {
	Text     string   // input text file, e.g. "story.txt"
	Output   string   // output animation path; empty derives from Text
	Anomaly  *float64 // anomaly percentage; nil falls back to the config
	FPS      int      // 0 keeps the config value
	Duration float64  // 0 keeps the config value
}
