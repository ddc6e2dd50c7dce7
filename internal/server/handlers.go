package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/cours-de-latin/minpairs"
)

// ---- JSON response types ------------------------------------------------

type recordJSON struct {
	ID          int     `json:"id"`
	Orthography string  `json:"orthography"`
	IPA         string  `json:"ipa"`
	Frequency   float64 `json:"frequency"`
	POS         string  `json:"pos,omitempty"`
	Etymology   string  `json:"etymology"`
}

type pairJSON struct {
	Skeleton string     `json:"skeleton"`
	First    recordJSON `json:"first"`
	Second   recordJSON `json:"second"`
}

type specJSON struct {
	First  string `json:"first"`
	Second string `json:"second"`
}

type pairsResponse struct {
	Pair         specJSON   `json:"pair"`
	MinFrequency float64    `json:"min_frequency"`
	Count        int        `json:"count"`
	Summary      string     `json:"summary"`
	Pairs        []pairJSON `json:"pairs"`
}

type batchRequest struct {
	Queries []queryParams `json:"queries"`
}

type batchItemJSON struct {
	Result *pairsResponse `json:"result,omitempty"`
	Error  string         `json:"error,omitempty"`
	Kind   string         `json:"kind,omitempty"`
}

type batchResponse struct {
	Results []batchItemJSON `json:"results"`
}

type segmentsResponse struct {
	Records  int                     `json:"records"`
	Segments []minpairs.SegmentCount `json:"segments"`
}

type chartsResponse struct {
	Charts []*minpairs.Chart `json:"charts"`
}

type posGroupsResponse struct {
	Groups      []minpairs.POSGroup  `json:"groups"`
	Etymologies []minpairs.Etymology `json:"etymologies"`
}

type thresholdResponse struct {
	Slider      float64 `json:"slider"`
	Threshold   float64 `json:"threshold"`
	Relative    float64 `json:"relative"`
	Description string  `json:"description"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Records int    `json:"records"`
}

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
}

// ---- helpers ------------------------------------------------------------

func toRecordJSON(r minpairs.Record) recordJSON {
	return recordJSON{
		ID:          r.ID,
		Orthography: r.Orthography,
		IPA:         r.IPA(),
		Frequency:   r.Frequency,
		POS:         r.POS,
		Etymology:   string(r.Etymology),
	}
}

func toPairsResponse(res *minpairs.Result, minFreq float64) *pairsResponse {
	pairs := make([]pairJSON, 0, len(res.Pairs))
	for _, p := range res.Pairs {
		pairs = append(pairs, pairJSON{
			Skeleton: p.Skeleton,
			First:    toRecordJSON(p.First),
			Second:   toRecordJSON(p.Second),
		})
	}
	return &pairsResponse{
		Pair:         specJSON{First: res.Spec.First, Second: res.Spec.Second},
		MinFrequency: minFreq,
		Count:        res.Count,
		Summary:      res.Summary(),
		Pairs:        pairs,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("encode response", slog.Any("error", err))
	}
}

func writeError(w http.ResponseWriter, status int, kind, msg string) {
	writeJSON(w, status, errorResponse{Error: msg, Kind: kind})
}

func writeQueryError(w http.ResponseWriter, err error) {
	kind := errorKind(err)
	status := http.StatusBadRequest
	if kind == "internal" {
		status = http.StatusInternalServerError
	}
	writeError(w, status, kind, err.Error())
}

// observe records the outcome of one query.
func (s *Server) observe(res *minpairs.Result, err error, elapsed time.Duration) {
	s.metrics.duration.Observe(elapsed.Seconds())
	switch {
	case err != nil:
		s.metrics.queries.WithLabelValues(errorKind(err)).Inc()
	case res.Count == 0:
		s.metrics.queries.WithLabelValues("empty").Inc()
		s.metrics.pairs.Observe(0)
	default:
		s.metrics.queries.WithLabelValues("ok").Inc()
		s.metrics.pairs.Observe(float64(res.Count))
	}
}

// ---- handlers -----------------------------------------------------------

func (s *Server) handlePairs(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method", "GET required")
		return
	}
	q, err := parseQueryValues(r.URL.Query())
	if err != nil {
		writeQueryError(w, err)
		return
	}
	if q.Pair == "" {
		writeError(w, http.StatusBadRequest, "invalid_specification", "missing 'pair' query parameter")
		return
	}
	cfg, err := q.filterConfig(s.query.DefaultSlider)
	if err != nil {
		writeQueryError(w, err)
		return
	}

	start := time.Now()
	res, err := s.finder.FindMinimalPairs(q.Pair, cfg)
	s.observe(res, err, time.Since(start))
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, toPairsResponse(res, cfg.MinFrequency))
}

func (s *Server) handleBatch(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method", "POST required")
		return
	}
	var body batchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || len(body.Queries) == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "body must be JSON with a non-empty 'queries' array")
		return
	}
	if len(body.Queries) > s.query.MaxBatch {
		writeError(w, http.StatusBadRequest, "invalid_request",
			fmt.Sprintf("at most %d queries per batch", s.query.MaxBatch))
		return
	}

	// Filter errors are reported in place; only the remaining queries
	// reach the finder.
	results := make([]batchItemJSON, len(body.Queries))
	minFreqs := make([]float64, len(body.Queries))
	queries := make([]minpairs.Query, 0, len(body.Queries))
	index := make([]int, 0, len(body.Queries))
	for i, q := range body.Queries {
		cfg, err := q.filterConfig(s.query.DefaultSlider)
		if err != nil {
			results[i] = batchItemJSON{Error: err.Error(), Kind: errorKind(err)}
			continue
		}
		minFreqs[i] = cfg.MinFrequency
		queries = append(queries, minpairs.Query{Pair: q.Pair, Filter: cfg})
		index = append(index, i)
	}

	start := time.Now()
	outcomes, err := s.finder.FindBatch(r.Context(), queries, s.query.BatchWorkers)
	if err != nil {
		// The client went away.
		s.logger.WarnContext(r.Context(), "batch aborted", slog.Any("error", err))
		return
	}
	elapsed := time.Since(start)
	for j, o := range outcomes {
		i := index[j]
		s.observe(o.Result, o.Err, elapsed/time.Duration(len(outcomes)))
		if o.Err != nil {
			results[i] = batchItemJSON{Error: o.Err.Error(), Kind: errorKind(o.Err)}
			continue
		}
		results[i] = batchItemJSON{Result: toPairsResponse(o.Result, minFreqs[i])}
	}
	writeJSON(w, http.StatusOK, batchResponse{Results: results})
}

func (s *Server) handleSegments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method", "GET required")
		return
	}
	lex := s.finder.Lexicon()
	writeJSON(w, http.StatusOK, segmentsResponse{Records: lex.Len(), Segments: lex.Segments()})
}

func (s *Server) handleCharts(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method", "GET required")
		return
	}
	name := r.URL.Query().Get("name")
	out := make([]*minpairs.Chart, 0, len(s.charts))
	for _, c := range s.charts {
		if name == "" || c.Name == name {
			out = append(out, c)
		}
	}
	if name != "" && len(out) == 0 {
		writeError(w, http.StatusNotFound, "not_found", fmt.Sprintf("chart %q not found", name))
		return
	}
	writeJSON(w, http.StatusOK, chartsResponse{Charts: out})
}

func (s *Server) handlePOSGroups(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method", "GET required")
		return
	}
	writeJSON(w, http.StatusOK, posGroupsResponse{
		Groups:      minpairs.DefaultPOSGroups,
		Etymologies: minpairs.Etymologies,
	})
}

func (s *Server) handleThreshold(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method", "GET required")
		return
	}
	slider := s.query.DefaultSlider
	if raw := r.URL.Query().Get("slider"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_configuration", fmt.Sprintf("slider %q is not a number", raw))
			return
		}
		slider = v
	}
	threshold, err := minpairs.ThresholdFromSlider(slider)
	if err != nil {
		writeQueryError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, thresholdResponse{
		Slider:      slider,
		Threshold:   threshold,
		Relative:    minpairs.RelativeFrequency(threshold, s.query.CorpusTokens),
		Description: minpairs.DescribeThreshold(threshold, s.query.CorpusTokens),
	})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Records: s.finder.Lexicon().Len()})
}
