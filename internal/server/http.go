package server

import (
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"wttrloc/internal/location"
)

const maxBodyBytes = 64 << 10

type locationRequest struct {
	Question string `json:"question"`
}

type locationResponse struct {
	Token     string `json:"token"`
	Kind      string `json:"kind"`
	RequestID string `json:"request_id"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"request_id"`
}

// handleLocations extracts a token for the posted question
func (s *Server) handleLocations(w http.ResponseWriter, r *http.Request) {
	requestID := r.Header.Get("X-Request-ID")
	if requestID == "" {
		requestID = uuid.NewString()
	}
	w.Header().Set("X-Request-ID", requestID)

	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "method not allowed", RequestID: requestID})
		return
	}

	log := s.log.With(zap.String("request_id", requestID))

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "failed to read body", RequestID: requestID})
		return
	}

	var req locationRequest
	if err := sonic.Unmarshal(body, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON: " + err.Error(), RequestID: requestID})
		return
	}
	if strings.TrimSpace(req.Question) == "" {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "question is required", RequestID: requestID})
		return
	}

	token, err := s.extractor.ExtractQuestion(r.Context(), req.Question)
	if err != nil {
		log.Error("extraction failed", zap.Error(err))
		writeJSON(w, http.StatusBadGateway, errorResponse{Error: err.Error(), RequestID: requestID})
		return
	}

	log.Info("location extracted", zap.String("token", token))
	writeJSON(w, http.StatusOK, locationResponse{
		Token:     token,
		Kind:      string(location.Classify(token)),
		RequestID: requestID,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	out, err := sonic.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(out)
}
