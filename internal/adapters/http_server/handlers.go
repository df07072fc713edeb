package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog/log"

	"sagicheck/internal/app"
	"sagicheck/internal/domain"
	"sagicheck/internal/placeurl"
)

type Handlers struct{ Svc *app.AnalysisService }

// analyzeBody is the inbound POST /analyze payload. Field constraints are
// enforced here so the core only ever sees validated records.
type analyzeBody struct {
	GoogleMapsURL      string   `json:"google_maps_url" validate:"required,url"`
	TabelogRating      *float64 `json:"tabelog_rating" validate:"omitempty,gte=0,lte=5"`
	TabelogReviewCount *int     `json:"tabelog_review_count" validate:"omitempty,gte=0"`
	TabelogName        *string  `json:"tabelog_name"`
}

type errorEnvelope struct {
	Detail string `json:"detail"`
}

var validate = validator.New()

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Post("/analyze", h.analyze)
}

func (h *Handlers) analyze(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		writeError(w, http.StatusInternalServerError, "分析サービスが初期化されていません。")
		return
	}

	var body analyzeBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "リクエストボディを解釈できませんでした。")
		return
	}
	if err := validate.Struct(body); err != nil {
		writeError(w, http.StatusBadRequest, "リクエスト内容が不正です。")
		return
	}

	placeID, ok := placeurl.Extract(body.GoogleMapsURL)
	if !ok {
		writeError(w, http.StatusBadRequest, "Google Maps URLからplace_idを抽出できませんでした。")
		return
	}

	req := domain.AnalyzeRequest{
		GoogleMapsURL:      body.GoogleMapsURL,
		TabelogRating:      body.TabelogRating,
		TabelogReviewCount: body.TabelogReviewCount,
		TabelogName:        body.TabelogName,
	}
	resp, err := h.Svc.AnalyzePlace(r.Context(), placeID, req)
	if err != nil {
		log.Warn().Err(err).Str("place_id", placeID).Msg("upstream fetch failed")
		writeError(w, http.StatusBadGateway, "Google Places APIへのリクエストに失敗しました。")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, errorEnvelope{Detail: detail})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}
