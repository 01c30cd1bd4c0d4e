package dashboard

import (
	"math"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/ukaji3/moviereport-go/pkg/moviereport"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/analysis"
	"github.com/ukaji3/moviereport-go/pkg/moviereport/models"
)

// APIError is the JSON body returned by failing API requests.
type APIError struct {
	Status    int    `json:"status"`
	Title     string `json:"title"`
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"request_id,omitempty"`
}

// Render implements the render.Renderer interface
func (e *APIError) Render(w http.ResponseWriter, r *http.Request) error {
	e.RequestID = middleware.GetReqID(r.Context())
	render.Status(r, e.Status)
	return nil
}

func newAPIError(status int, detail string) *APIError {
	return &APIError{Status: status, Title: http.StatusText(status), Detail: detail}
}

func (s *Server) handleAPIMovie(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	if strings.TrimSpace(name) == "" {
		_ = render.Render(w, r, newAPIError(http.StatusBadRequest, "query parameter 'name' is required"))
		return
	}
	movie, ok := moviereport.FindMovie(s.dataset.Clean, name)
	if !ok {
		_ = render.Render(w, r, newAPIError(http.StatusNotFound, "movie not found"))
		return
	}
	render.JSON(w, r, movie)
}

// ratingsJSON carries rating statistics with undefined values as null.
type ratingsJSON struct {
	Average *float64 `json:"average_rating"`
	Min     *float64 `json:"min_rating"`
	Max     *float64 `json:"max_rating"`
}

type summaryJSON struct {
	Source         string              `json:"source"`
	TotalMovies    int                 `json:"total_movies"`
	DistinctGenres int                 `json:"distinct_genres"`
	Genres         []models.GenreCount `json:"genres"`
	Ratings        ratingsJSON         `json:"ratings"`
	Years          models.YearCounts   `json:"years"`
	PeakYear       string              `json:"peak_year"`
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func (s *Server) handleAPISummary(w http.ResponseWriter, r *http.Request) {
	sum := analysis.Summarize(s.dataset.Clean)
	render.JSON(w, r, summaryJSON{
		Source:         s.dataset.Source,
		TotalMovies:    sum.TotalMovies,
		DistinctGenres: sum.DistinctGenres,
		Genres:         sum.Genres,
		Ratings: ratingsJSON{
			Average: finite(sum.Ratings.Average),
			Min:     finite(sum.Ratings.Min),
			Max:     finite(sum.Ratings.Max),
		},
		Years:    sum.Years,
		PeakYear: sum.PeakYear,
	})
}
