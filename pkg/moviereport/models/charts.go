package models

// ChartKind identifies one of the rendered charts.
type ChartKind string

const (
	ChartGenre   ChartKind = "genre"
	ChartRatings ChartKind = "ratings"
	ChartYearBar ChartKind = "Release_Year"
)

// ChartPaths holds the image files written by the chart renderer.
type ChartPaths struct {
	// Genre is the genre pie chart.
	Genre string `json:"genre"`
	// Ratings is the ratings histogram.
	Ratings string `json:"ratings"`
	// YearBar is the movies-per-year bar chart.
	YearBar string `json:"Release_Year"`
}

// ChartFile pairs a chart kind with its image path.
type ChartFile struct {
	Kind ChartKind
	Path string
}

// Files returns the charts in embedding order, skipping empty paths.
func (c ChartPaths) Files() []ChartFile {
	all := []ChartFile{
		{Kind: ChartGenre, Path: c.Genre},
		{Kind: ChartRatings, Path: c.Ratings},
		{Kind: ChartYearBar, Path: c.YearBar},
	}
	files := all[:0]
	for _, f := range all {
		if f.Path != "" {
			files = append(files, f)
		}
	}
	return files
}
