package main

import (
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/slingshot/ecs"
)

type Report struct {
	// Configuration
	Config   string
	Duration time.Duration
	DT       float64
	Batch    int
	Shots    int

	// Results
	Runs          []Result
	TotalTime     time.Duration
	Systems       []ecs.SystemStats
	MemStatsStart runtime.MemStats
	MemStatsEnd   runtime.MemStats
}

// Totals sums the per-run counters.
type Totals struct {
	Ticks         uint64
	Shots         int
	Hits          int
	RoundsCleared int
	Completed     int
}

func (r *Report) Totals() Totals {
	var t Totals
	for _, run := range r.Runs {
		t.Ticks += run.Ticks
		t.Shots += run.Shots
		t.Hits += run.Hits
		t.RoundsCleared += run.RoundsCleared
		if run.Completed {
			t.Completed++
		}
	}
	return t
}

// MergeSystems folds the per-run scheduler stats into one row per system,
// keeping registration order.
func MergeSystems(runs []Result) []ecs.SystemStats {
	var merged []ecs.SystemStats
	index := make(map[string]int)

	for _, run := range runs {
		for _, s := range run.Systems {
			i, ok := index[s.Name]
			if !ok {
				index[s.Name] = len(merged)
				merged = append(merged, s)
				continue
			}

			m := &merged[i]
			if s.ExecutionCount > 0 && (m.ExecutionCount == 0 || s.MinDuration < m.MinDuration) {
				m.MinDuration = s.MinDuration
			}
			m.MaxDuration = max(m.MaxDuration, s.MaxDuration)
			m.ExecutionCount += s.ExecutionCount
			m.TotalDuration += s.TotalDuration
			m.LastDuration = s.LastDuration
		}
	}

	for i := range merged {
		if merged[i].ExecutionCount > 0 {
			merged[i].AvgDuration = merged[i].TotalDuration / time.Duration(merged[i].ExecutionCount)
		}
	}
	return merged
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Slingshot Simulation Report

## Configuration
- **Config:** {{if .Config}}{{.Config}}{{else}}defaults{{end}}
- **Time Limit:** {{.Duration}}
- **Step:** {{.DT}}s
- **Batch:** {{.Batch}}
- **Scripted Shots:** {{.Shots}}
{{with .Totals}}
## Results
- **Total Ticks:** {{.Ticks}}
- **Shots Fired:** {{.Shots}}
- **Targets Hit:** {{.Hits}}
- **Rounds Cleared:** {{.RoundsCleared}}
- **Completed Runs:** {{.Completed}}
{{end}}- **Wall Time:** {{.TotalTime}}

## Runs
{{range .Runs}}- run {{.Run}}: ticks={{.Ticks}} sim={{printf "%.2f" .SimTime}}s shots={{.Shots}} hits={{.Hits}} cleared={{.RoundsCleared}} round={{.Rounds}}{{if not .Completed}} (stopped){{end}} wall={{.Wall}}
{{end}}
## Systems
{{range .Systems}}- {{.Name}}: runs={{.ExecutionCount}} avg={{.AvgDuration}} min={{.MinDuration}} max={{.MaxDuration}}
{{end}}
## Memory Usage (Raw Bytes)
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}
- Num GC:         {{.MemStatsStart.NumGC}} (start) -> {{.MemStatsEnd.NumGC}} (end) -> delta: {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
`

	fm := template.FuncMap{
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
