package trivia

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/logging"
	httperrors "github.com/gokatarajesh/trivia-api/pkg/http/errors"
)

const maxBodyBytes = 1 << 20

// HTTPHandlers exposes the trivia operations as JSON endpoints.
type HTTPHandlers struct {
	svc      *Service
	validate *validator.Validate
	logger   zerolog.Logger
}

// NewHTTPHandlers creates the trivia HTTP handlers.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:      svc,
		validate: validator.New(),
		logger:   logger.With().Str("component", "trivia_http").Logger(),
	}
}

// Register mounts the trivia routes on mux. Known paths answer other methods
// with a 405 envelope; unknown paths get a 404 envelope.
func (h *HTTPHandlers) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /categories", h.ListCategories)
	mux.HandleFunc("POST /categories", h.CreateCategory)
	mux.HandleFunc("GET /categories/{id}", h.GetCategory)
	mux.HandleFunc("GET /categories/{id}/questions", h.QuestionsByCategory)
	mux.HandleFunc("GET /questions", h.ListQuestions)
	mux.HandleFunc("POST /questions", h.CreateQuestion)
	mux.HandleFunc("DELETE /questions/{id}", h.DeleteQuestion)
	mux.HandleFunc("POST /questions/searchTerm", h.SearchQuestions)
	mux.HandleFunc("POST /quizzes", h.NextQuizQuestion)

	for _, path := range []string{
		"/categories",
		"/categories/{id}",
		"/categories/{id}/questions",
		"/questions",
		"/questions/{id}",
		"/quizzes",
	} {
		mux.HandleFunc(path, h.methodNotAllowed)
	}
	mux.HandleFunc("/", h.notFound)
}

// ListCategories handles GET /categories?page=N
func (h *HTTPHandlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ListCategories(r.Context(), page(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, res)
}

// GetCategory handles GET /categories/{id}
func (h *HTTPHandlers) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	res, err := h.svc.GetCategory(r.Context(), id, page(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, res)
}

// CreateCategory handles POST /categories
func (h *HTTPHandlers) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var payload map[string]any
	if err := decode(w, r, &payload); err != nil {
		h.fail(w, r, err)
		return
	}
	typ, _ := payload["type"].(string)

	res, err := h.svc.CreateCategory(r.Context(), typ, payload)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, res)
}

// QuestionsByCategory handles GET /categories/{id}/questions?page=N
func (h *HTTPHandlers) QuestionsByCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	res, err := h.svc.QuestionsByCategory(r.Context(), id, page(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, res)
}

// ListQuestions handles GET /questions?page=N
func (h *HTTPHandlers) ListQuestions(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.ListQuestions(r.Context(), page(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, res)
}

// CreateQuestion handles POST /questions
func (h *HTTPHandlers) CreateQuestion(w http.ResponseWriter, r *http.Request) {
	var in NewQuestion
	if err := decode(w, r, &in); err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := h.svc.CreateQuestion(r.Context(), in, page(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusCreated, res)
}

// DeleteQuestion handles DELETE /questions/{id}
func (h *HTTPHandlers) DeleteQuestion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		httperrors.RespondNotFound(w)
		return
	}
	res, err := h.svc.DeleteQuestion(r.Context(), id, page(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, res)
}

// SearchQuestions handles POST /questions/searchTerm
func (h *HTTPHandlers) SearchQuestions(w http.ResponseWriter, r *http.Request) {
	var req struct {
		SearchTerm string `json:"searchTerm"`
	}
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	res, err := h.svc.SearchQuestions(r.Context(), req.SearchTerm, page(r))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, res)
}

// NextQuizQuestion handles POST /quizzes
func (h *HTTPHandlers) NextQuizQuestion(w http.ResponseWriter, r *http.Request) {
	var req QuizRequest
	if err := decode(w, r, &req); err != nil {
		h.fail(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.fail(w, r, errors.Join(ErrValidation, err))
		return
	}
	res, err := h.svc.NextQuizQuestion(r.Context(), req)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.respondJSON(w, http.StatusOK, res)
}

func (h *HTTPHandlers) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, ErrMethodNotSupported)
}

func (h *HTTPHandlers) notFound(w http.ResponseWriter, r *http.Request) {
	h.fail(w, r, ErrNotFound)
}

// fail classifies err and writes the matching envelope. Internal failures are
// logged with their cause; the client only sees the generic message.
func (h *HTTPHandlers) fail(w http.ResponseWriter, r *http.Request, err error) {
	logger := logging.FromContext(r.Context())
	switch Classify(err) {
	case ErrValidation:
		logger.Debug().Err(err).Msg("rejected request")
		httperrors.RespondBadRequest(w)
	case ErrNotFound:
		httperrors.RespondNotFound(w)
	case ErrUnprocessable:
		logger.Info().Err(err).Msg("unprocessable request")
		httperrors.RespondUnprocessable(w)
	case ErrMethodNotSupported:
		httperrors.RespondMethodNotAllowed(w)
	default:
		h.logger.Error().Err(err).Str("method", r.Method).Str("path", r.URL.Path).Msg("request failed")
		httperrors.RespondInternalError(w)
	}
}

func (h *HTTPHandlers) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.logger.Warn().Err(err).Msg("encode response failed")
	}
}

// decode reads a JSON body into dst. Malformed bodies are validation errors.
func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errors.Join(ErrValidation, err)
	}
	return nil
}

func page(r *http.Request) int {
	return ParsePage(r.URL.Query().Get("page"))
}

func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}
