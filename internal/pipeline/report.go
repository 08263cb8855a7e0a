package pipeline

import (
	"gonum.org/v1/gonum/stat"

	"startracker/internal/identify"
)

// Report summarizes a Result for the CLI's stats mode: per-spot rows
// plus identification counts and the mean/stddev of spot area.
type Report struct {
	Rows       []ReportRow `json:"rows"`
	Identified int         `json:"identified"`
	Total      int         `json:"total"`
	AreaMean   float64     `json:"area_mean"`
	AreaStddev float64     `json:"area_stddev"`
}

// ReportRow is one printable line: x, y, area, catalog id.
type ReportRow struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Area uint32  `json:"area"`
	ID   int32   `json:"id"`
}

// Summarize builds a Report from a pipeline Result.
func Summarize(r *Result) Report {
	rep := Report{Total: len(r.Spots)}
	areas := make([]float64, len(r.Spots))

	for i, s := range r.Spots {
		id := identify.Unidentified
		if i < len(r.IDs) {
			id = r.IDs[i]
		}
		if id != identify.Unidentified {
			rep.Identified++
		}
		areas[i] = float64(s.Area)
		rep.Rows = append(rep.Rows, ReportRow{X: s.Center.X, Y: s.Center.Y, Area: s.Area, ID: id})
	}

	if len(areas) > 0 {
		rep.AreaMean, rep.AreaStddev = stat.MeanStdDev(areas, nil)
	}
	return rep
}
