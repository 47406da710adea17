package joblist

import (
	"encoding/xml"
	"fmt"
	"os"
	"strconv"
)

// xmlJobList matches the jobs XML schema.
type xmlJobList struct {
	Jobs []xmlJob `xml:"Job"`
}

type xmlJob struct {
	Text     string `xml:"Text,attr"`
	Output   string `xml:"Output,attr"`
	Anomaly  string `xml:"Anomaly,attr"`
	FPS      string `xml:"FPS,attr"`
	Duration string `xml:"Duration,attr"`
}

// Parse reads a jobs XML file and returns all jobs that name an input
// text file. Jobs with malformed numeric attributes are skipped.
func Parse(xmlPath string) ([]JobDef, error) {
	raw, err := os.ReadFile(xmlPath)
	if err != nil {
		return nil, fmt.Errorf("joblist: read %s: %w", xmlPath, err)
	}

	var list xmlJobList
	if err := xml.Unmarshal(raw, &list); err != nil {
		return nil, fmt.Errorf("joblist: parse %s: %w", xmlPath, err)
	}

	var jobs []JobDef
	for _, j := range list.Jobs {
		if j.Text == "" {
			continue
		}

		def := JobDef{Text: j.Text, Output: j.Output}

		if j.Anomaly != "" {
			pct, err := strconv.ParseFloat(j.Anomaly, 64)
			if err != nil {
				continue
			}
			def.Anomaly = &pct
		}
		if j.FPS != "" {
			fps, err := strconv.Atoi(j.FPS)
			if err != nil {
				continue
			}
			def.FPS = fps
		}
		if j.Duration != "" {
			dur, err := strconv.ParseFloat(j.Duration, 64)
			if err != nil {
				continue
			}
			def.Duration = dur
		}

		jobs = append(jobs, def)
	}

	return jobs, nil
}
