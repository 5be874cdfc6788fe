package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/weiawesome/imei-service/internal/audit"
	"github.com/weiawesome/imei-service/internal/generator"
	"github.com/weiawesome/imei-service/internal/metrics"
	"github.com/weiawesome/imei-service/pkg/imei/imeijson"
	"github.com/weiawesome/imei-service/pkg/log"
	"github.com/weiawesome/imei-service/pkg/response"
)

// Handler handles HTTP requests for imei-service.
type Handler struct {
	gen       generator.Generator
	converter imeijson.Converter
	metrics   *metrics.Metrics
	gatherer  prometheus.Gatherer
}

// NewHandler creates a new HTTP handler. IMEIs in response bodies are
// written with converter. A nil gatherer disables /metrics.
func NewHandler(gen generator.Generator, converter imeijson.Converter, m *metrics.Metrics, gatherer prometheus.Gatherer) *Handler {
	return &Handler{
		gen:       gen,
		converter: converter,
		metrics:   m,
		gatherer:  gatherer,
	}
}

// RegisterRoutes registers all routes.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)
	if h.gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(h.gatherer, promhttp.HandlerOpts{})))
	}

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found")
	})

	api := r.Group("/api/v1")
	{
		imeis := api.Group("/imei")
		{
			imeis.POST("/generate", h.Generate)
			imeis.POST("/batch", h.GenerateBatch)
			imeis.GET("/validate/:imei", h.Validate)
			imeis.GET("/parse/:imei", h.Parse)
		}
	}
}

// NewRouter builds a gin engine with recovery, request logging and the
// handler's routes.
func NewRouter(h *Handler, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(log.GinMiddleware(logger))
	h.RegisterRoutes(r)
	return r
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) observe(op string, start time.Time) {
	h.metrics.ObserveDuration(metrics.TransportHTTP, op, time.Since(start))
}

// Generate issues one IMEI.
func (h *Handler) Generate(c *gin.Context) {
	defer h.observe("generate", time.Now())
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	id, err := h.gen.Generate()
	if err != nil {
		l.Error().Err(err).Msg("failed to generate IMEI")
		response.InternalError(c, "failed to generate IMEI")
		return
	}
	h.metrics.AddGenerated(metrics.TransportHTTP, 1)
	audit.Generated(ctx, metrics.TransportHTTP, id.String())

	response.Created(c, GenerateResponse{IMEI: h.converter.Value(id)})
}

// GenerateBatch issues Count IMEIs.
func (h *Handler) GenerateBatch(c *gin.Context) {
	defer h.observe("generate_batch", time.Now())
	ctx := c.Request.Context()
	l := log.Ctx(ctx)

	var req BatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		l.Warn().Err(err).Msg("failed to bind batch request")
		response.BadRequest(c, err.Error())
		return
	}

	ids, err := h.gen.GenerateBatch(req.Count)
	if err != nil {
		if errors.Is(err, generator.ErrInvalidCount) {
			response.BadRequest(c, err.Error())
			return
		}
		l.Error().Err(err).Int(log.FieldIMEICount, req.Count).Msg("failed to generate IMEI batch")
		response.InternalError(c, "failed to generate IMEI batch")
		return
	}
	h.metrics.AddGenerated(metrics.TransportHTTP, len(ids))
	audit.BatchGenerated(ctx, metrics.TransportHTTP, len(ids))

	response.Created(c, BatchResponse{Count: len(ids), IMEIs: h.converter.Values(ids)})
}

// Validate reports whether the path parameter is a valid IMEI. Invalid
// input is a successful request with valid=false.
func (h *Handler) Validate(c *gin.Context) {
	defer h.observe("validate", time.Now())

	input := c.Param("imei")
	valid, reason := h.gen.Validate(input)
	h.metrics.IncrementValidation(metrics.TransportHTTP, valid)

	response.Success(c, ValidateResponse{IMEI: input, Valid: valid, Reason: reason})
}

// Parse decodes the sub-fields of the IMEI in the path.
func (h *Handler) Parse(c *gin.Context) {
	defer h.observe("parse", time.Now())
	l := log.Ctx(c.Request.Context())

	input := c.Param("imei")
	result, err := h.gen.Parse(input)
	if err != nil {
		h.metrics.IncrementParseFailure(metrics.TransportHTTP)
		l.Debug().Err(err).Msg("rejected IMEI")
		response.InvalidIMEI(c, err.Error())
		return
	}

	response.Success(c, ParseResponse{
		IMEI:       h.converter.Value(result.Value),
		TAC:        result.TAC,
		FAC:        result.FAC,
		SNR:        result.SNR,
		CheckDigit: result.CheckDigit,
	})
}
