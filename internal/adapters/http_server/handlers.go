package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"stayfinder/internal/app"
	"stayfinder/internal/assistant"
	"stayfinder/internal/currency"
	"stayfinder/internal/domain"
)

type Handlers struct {
	Q       *app.QueryService
	Assist  *assistant.Service
	ChatRPS int
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

type chatRequest struct {
	Message string `json:"message"`
	Lang    string `json:"lang"`
}

type chatResponse struct {
	Reply string `json:"reply"`
}

// hotelResponse is the API view of a hotel: stored base price plus a
// display copy converted to the requested currency.
type hotelResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	City         string   `json:"city"`
	PriceUSD     float64  `json:"price_usd"`
	DisplayPrice string   `json:"display_price"`
	Currency     string   `json:"currency"`
	Category     int      `json:"category"`
	Description  string   `json:"description,omitempty"`
	Photos       []string `json:"photos,omitempty"`
	ReviewCount  int      `json:"review_count"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.With(RateLimit(h.ChatRPS)).Post("/chat", h.chat)
	s.mux.Get("/v1/hotels", h.listHotels)
	s.mux.Get("/v1/hotels/{id}", h.getHotel)
	s.mux.Get("/v1/cities", h.listCities)
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// selectLocale validates a caller-supplied lang against the closed enum,
// defaulting to English rather than letting stray values reach the
// formatter.
func selectLocale(lang string) assistant.Locale {
	l := assistant.Locale(strings.ToLower(strings.TrimSpace(lang)))
	if assistant.ValidLocale(l) {
		return l
	}
	return assistant.LocaleEng
}

// chat is the assistant endpoint. "ping" is a liveness probe answered
// before any interpretation; a pipeline panic is converted to the localized
// generic error so one malformed message cannot take the process down.
func (h *Handlers) chat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid Body", "expected JSON {message, lang}")
		return
	}
	loc := selectLocale(req.Lang)
	message := strings.TrimSpace(req.Message)

	if message == "ping" {
		writeJSON(w, http.StatusOK, chatResponse{Reply: "pong"})
		return
	}

	defer func() {
		if rec := recover(); rec != nil {
			log.Error().Interface("panic", rec).Str("message", message).Msg("assistant pipeline panicked")
			writeJSON(w, http.StatusInternalServerError, chatResponse{Reply: assistant.GenericError(loc)})
		}
	}()

	reply := h.Assist.Reply(r.Context(), req.Message, loc)
	writeJSON(w, http.StatusOK, chatResponse{Reply: reply})
}

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	q := domain.HotelsQuery{Limit: 50}
	params := r.URL.Query()

	if city := strings.TrimSpace(params.Get("city")); city != "" && city != "all" {
		q.City = city
	}
	if v, ok, err := floatParam(params.Get("min_price")); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid min_price", "min_price must be a number")
		return
	} else if ok {
		q.MinPriceUSD = &v
	}
	if v, ok, err := floatParam(params.Get("max_price")); err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid max_price", "max_price must be a number")
		return
	} else if ok {
		q.MaxPriceUSD = &v
	}
	if s := strings.TrimSpace(params.Get("stars")); s != "" && s != "all" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 || n > 5 {
			writeProblem(w, http.StatusBadRequest, "Invalid stars", "stars must be an integer between 1 and 5")
			return
		}
		q.MinStars, q.MaxStars = &n, &n
	}
	cur := strings.ToLower(strings.TrimSpace(params.Get("currency")))
	if cur == "" {
		cur = currency.Base
	}

	hotels, err := h.Q.SearchHotels(r.Context(), q)
	if err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Store Unavailable", "hotel store is unreachable")
		return
	}
	out := make([]hotelResponse, 0, len(hotels))
	for _, hotel := range hotels {
		out = append(out, toHotelResponse(hotel, cur))
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	cur := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("currency")))
	if cur == "" {
		cur = currency.Base
	}
	hotel, err := h.Q.GetHotel(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			writeProblem(w, http.StatusNotFound, "Not Found", "hotel not found")
			return
		}
		writeProblem(w, http.StatusServiceUnavailable, "Store Unavailable", "hotel store is unreachable")
		return
	}
	writeJSON(w, http.StatusOK, toHotelResponse(hotel, cur))
}

func (h *Handlers) listCities(w http.ResponseWriter, r *http.Request) {
	cities, err := h.Q.ListCities(r.Context())
	if err != nil {
		writeProblem(w, http.StatusServiceUnavailable, "Store Unavailable", "hotel store is unreachable")
		return
	}
	writeJSON(w, http.StatusOK, cities)
}

func toHotelResponse(h domain.Hotel, cur string) hotelResponse {
	return hotelResponse{
		ID:           h.ID,
		Name:         h.Name,
		City:         h.City,
		PriceUSD:     h.PriceUSD,
		DisplayPrice: strconv.FormatFloat(currency.Convert(h.PriceUSD, currency.Base, cur), 'f', 2, 64) + " " + currency.SymbolOf(cur),
		Currency:     cur,
		Category:     h.Category,
		Description:  h.Description,
		Photos:       h.Photos,
		ReviewCount:  len(h.Reviews),
	}
}

func floatParam(raw string) (float64, bool, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, false, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, err
	}
	return v, true, nil
}
