package dashboard

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/ukaji3/moviereport-go/pkg/moviereport"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/charts"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/cleaner"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
)

// previewRows is the number of cleaned rows shown on the cleaning page.
const previewRows = 70

type detail struct {
	Label string
	Value string
}

type searchData struct {
	Query    string
	Searched bool
	Found    bool
	Details  []detail
	Reviews  []detail
	All      []detail
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	data := searchData{Query: r.URL.Query().Get("name")}
	if r.URL.Query().Has("name") {
		data.Searched = true
		movie, ok := moviereport.FindMovie(s.dataset.Clean, data.Query)
		if ok {
			data.Found = true
			data.Details, data.Reviews, data.All = movieDetails(s.dataset.Clean, &movie)
		}
	}
	renderPage(w, "search.html", http.StatusOK, data)
}

// movieDetails splits the fields of m into movie and review details,
// listing only columns the table carries, plus every column in order.
func movieDetails(t *models.Table, m *models.Movie) (movie, review, all []detail) {
	add := func(dst []detail, f models.Field, label, prefix string) []detail {
		if !t.HasField(f) {
			return dst
		}
		v, _ := m.FieldValue(f)
		return append(dst, detail{Label: label, Value: prefix + v})
	}

	movie = add(movie, models.FieldMovieName, "Name", "")
	movie = add(movie, models.FieldDirectors, "Director's Name", "")
	movie = add(movie, models.FieldWriters, "Writer's Name", "")
	movie = add(movie, models.FieldGenre, "Genre", "")
	movie = add(movie, models.FieldReleaseYear, "Release Year", "")
	movie = add(movie, models.FieldOverview, "Overview", "")

	review = add(review, models.FieldReviewer, "Reviewer", "")
	review = add(review, models.FieldRatings, "Ratings", "⭐")
	review = add(review, models.FieldReviewCategory, "Review category", "")
	review = add(review, models.FieldReview, "Review", "")

	for _, col := range t.Bindings() {
		v, _ := m.Cell(col)
		all = append(all, detail{Label: col.Name, Value: v})
	}
	return movie, review, all
}

type cleaningData struct {
	Inspection  cleaner.Inspection
	Preview     []models.Movie
	SortKey     cleaner.SortKey
	SortOrder   cleaner.SortOrder
	SortLabel   string
	SortMissing bool
	Sorted      []models.Movie
}

func (s *Server) handleCleaning(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	key := cleaner.SortByYear
	if v := q.Get("sort"); v != "" {
		k, err := cleaner.ParseSortKey(v)
		if err != nil {
			renderError(w, err.Error(), http.StatusBadRequest)
			return
		}
		key = k
	}
	order, err := cleaner.ParseSortOrder(q.Get("order"))
	if err != nil {
		renderError(w, err.Error(), http.StatusBadRequest)
		return
	}

	clean := s.dataset.Clean
	data := cleaningData{
		Inspection: cleaner.Inspect(s.dataset.Raw),
		Preview:    clean.Movies[:min(previewRows, clean.Len())],
		SortKey:    key,
		SortOrder:  order,
		SortLabel:  "Release Year",
	}
	field := models.FieldReleaseYear
	if key == cleaner.SortByRating {
		data.SortLabel = "Ratings"
		field = models.FieldRatings
	}
	if clean.HasField(field) {
		data.Sorted = cleaner.Sort(clean, key, order).Movies
	} else {
		data.SortMissing = true
	}
	renderPage(w, "cleaning.html", http.StatusOK, data)
}

type reportData struct {
	Result *moviereport.Result
	Error  string
}

func (s *Server) handleReportPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "report.html", http.StatusOK, reportData{})
}

func (s *Server) handleGenerateReport(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	res, err := moviereport.Run(s.dataset, s.opts)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("report generation failed", slog.Any("error", err))
		renderPage(w, "report.html", http.StatusInternalServerError, reportData{Error: err.Error()})
		return
	}
	renderPage(w, "report.html", http.StatusOK, reportData{Result: res})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	path := s.opts.ReportPath
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			renderError(w, "No report has been generated yet. Generate one on the report page first.", http.StatusNotFound)
			return
		}
		renderError(w, "The report could not be read.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(filepath.Base(path)))
	http.ServeFile(w, r, path)
}

type chartView struct {
	Title  string
	File   string
	Exists bool
}

type chartsData struct {
	Charts []chartView
	Error  string
}

// chartTitles lists the chart images in display order.
var chartTitles = []chartView{
	{Title: "Genre Distribution (Pie Chart)", File: charts.GenreFile},
	{Title: "Ratings Distribution (Histogram)", File: charts.RatingsFile},
	{Title: "Movies per Year (Bar Chart)", File: charts.YearBarFile},
}

func (s *Server) chartViews() []chartView {
	views := make([]chartView, len(chartTitles))
	for i, c := range chartTitles {
		_, err := os.Stat(filepath.Join(s.opts.ChartsDir, c.File))
		c.Exists = err == nil
		views[i] = c
	}
	return views
}

func (s *Server) handleChartsPage(w http.ResponseWriter, r *http.Request) {
	renderPage(w, "charts.html", http.StatusOK, chartsData{Charts: s.chartViews()})
}

func (s *Server) handleGenerateCharts(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	_, err := moviereport.RenderCharts(s.dataset, s.opts.ChartsDir)
	s.mu.Unlock()
	if err != nil {
		s.logger.Error("chart generation failed", slog.Any("error", err))
		renderPage(w, "charts.html", http.StatusInternalServerError,
			chartsData{Charts: s.chartViews(), Error: err.Error()})
		return
	}
	http.Redirect(w, r, "/charts", http.StatusSeeOther)
}

func (s *Server) handleChartImage(w http.ResponseWriter, r *http.Request) {
	file := chi.URLParam(r, "file")
	known := false
	for _, c := range chartTitles {
		if c.File == file {
			known = true
			break
		}
	}
	if !known {
		renderError(w, fmt.Sprintf("Unknown chart %q.", file), http.StatusNotFound)
		return
	}

	path := filepath.Join(s.opts.ChartsDir, file)
	if _, err := os.Stat(path); err != nil {
		renderError(w, "Chart not generated yet. Click 'Generate Charts' to create it.", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, path)
}
