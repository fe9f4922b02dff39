package handler

import (
	"fmt"
	"net/http"
	"time"

	"authntik/config"
)

// HealthResponse ответ GET /health
// swagger:model
type HealthResponse struct {
	Status      string    `json:"status" example:"ok"`
	Timestamp   time.Time `json:"timestamp"`
	Environment string    `json:"environment" example:"development"`
	Port        int       `json:"port" example:"8000"`
	Debug       bool      `json:"debug"`
}

type HealthHandler struct {
	cfg *config.Config
}

func NewHealthHandler(cfg *config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

func (handler *HealthHandler) Hello(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Content-Type", "text/plain; charset=utf-8")
	writer.WriteHeader(http.StatusOK)
	fmt.Fprintf(writer, "Hello World! Running on %s environment, port %d, debug: %t",
		handler.cfg.App.Environment, handler.cfg.Server.PortNumber(), handler.cfg.App.Debug)
}

func (handler *HealthHandler) Health(writer http.ResponseWriter, request *http.Request) {
	writeJSON(writer, http.StatusOK, HealthResponse{
		Status:      "ok",
		Timestamp:   time.Now().UTC(),
		Environment: handler.cfg.App.Environment,
		Port:        handler.cfg.Server.PortNumber(),
		Debug:       handler.cfg.App.Debug,
	})
}
