package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	catalog "github.com/matex-shoes/storefront/internal/catalog/domain"
	"github.com/matex-shoes/storefront/internal/order/application"
	"github.com/matex-shoes/storefront/internal/order/domain"
)

type Handler struct {
	log        *slog.Logger
	service    *application.Service
	tracer     trace.Tracer
	production bool
}

// NewHandler builds the API handler. In production mode internal error
// detail is suppressed from responses.
func NewHandler(log *slog.Logger, service *application.Service, production bool) *Handler {
	return &Handler{
		log:        log,
		service:    service,
		tracer:     otel.Tracer("storefront-http"),
		production: production,
	}
}

type placeOrderReq struct {
	OrderDetails *domain.Details `json:"orderDetails"`
	SoldProducts *[]int64        `json:"soldProducts"`
}

type orderResp struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	OrderID int64  `json:"orderId,omitempty"`
	Error   string `json:"error,omitempty"`
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", h.healthz)
	r.Route("/api", func(r chi.Router) {
		r.Get("/shoes", h.listShoes)
		r.Get("/shoes/{id}", h.getShoe)
		r.Post("/place-order", h.placeOrder)
	})

	return r
}

func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func (h *Handler) listShoes(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ListShoes")
	defer span.End()

	shoes, err := h.service.ListShoes(ctx)
	if err != nil {
		h.log.Error("list shoes failed", "err", err)
		h.writeFailure(w, http.StatusInternalServerError, "Error loading catalog", err)
		return
	}
	writeJSON(w, http.StatusOK, shoes)
}

func (h *Handler) getShoe(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetShoe")
	defer span.End()

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeFailure(w, http.StatusBadRequest, "Invalid shoe id", nil)
		return
	}

	shoe, err := h.service.GetShoe(ctx, id)
	switch {
	case errors.Is(err, catalog.ErrShoeNotFound):
		h.writeFailure(w, http.StatusNotFound, "Shoe not found", nil)
	case err != nil:
		h.log.Error("get shoe failed", "shoe_id", id, "err", err)
		h.writeFailure(w, http.StatusInternalServerError, "Error loading catalog", err)
	default:
		writeJSON(w, http.StatusOK, shoe)
	}
}

func (h *Handler) placeOrder(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "PlaceOrder")
	defer span.End()

	var req placeOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeFailure(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}
	if req.OrderDetails == nil || req.SoldProducts == nil {
		h.writeFailure(w, http.StatusBadRequest, "Missing required data", nil)
		return
	}

	o, err := h.service.PlaceOrder(ctx, *req.OrderDetails, *req.SoldProducts)
	switch {
	case errors.Is(err, application.ErrMissingDetails), errors.Is(err, application.ErrMissingSoldProducts):
		h.writeFailure(w, http.StatusBadRequest, "Missing required data", nil)
	case err != nil:
		h.writeFailure(w, http.StatusInternalServerError, "Error processing order", err)
	default:
		writeJSON(w, http.StatusOK, orderResp{
			Success: true,
			Message: "Order placed successfully",
			OrderID: o.ID,
		})
	}
}

func (h *Handler) writeFailure(w http.ResponseWriter, status int, message string, err error) {
	resp := orderResp{Success: false, Message: message}
	if err != nil && !h.production {
		resp.Error = err.Error()
	}
	writeJSON(w, status, resp)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
