package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"FinScan/internal/domain/models"
	domrepo "FinScan/internal/domain/repository"
	xhttp "FinScan/pkg/http"
	xlogger "FinScan/pkg/logger"

	"github.com/labstack/echo/v4"
)

const (
	scanCacheControl = "public, s-maxage=900, stale-while-revalidate=1800"
	headerScanCache  = "X-Scan-Cache"
	headerScanID     = "X-Scan-Id"
)

// Scanner produces scan results. *usecase.ScanUseCase implements it.
type Scanner interface {
	Scan(ctx context.Context, scanType models.ScanType) (*models.ScanResult, bool, error)
}

// ScannerEchoHandler serves the scanner and health endpoints.
type ScannerEchoHandler struct {
	logger   *xlogger.Logger
	scanner  Scanner
	throttle echo.MiddlewareFunc
	now      func() time.Time
}

// NewScannerEchoHandler builds the handler. throttle may be nil.
func NewScannerEchoHandler(logger *xlogger.Logger, scanner Scanner, throttle echo.MiddlewareFunc) *ScannerEchoHandler {
	return &ScannerEchoHandler{logger: logger, scanner: scanner, throttle: throttle, now: time.Now}
}

func (h *ScannerEchoHandler) RegisterRoutes(e *echo.Echo) {
	var mw []echo.MiddlewareFunc
	if h.throttle != nil {
		mw = append(mw, h.throttle)
	}
	e.GET("/scanner", h.Scan, mw...)
	e.GET("/api/py/scanner", h.Scan, mw...)
	e.GET("/health", h.Health)
}

// Scan handles GET /scanner?type={intraday|swing|longterm}.
func (h *ScannerEchoHandler) Scan(c echo.Context) error {
	req := &models.ScanRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}
	scanType, err := domrepo.ParseScanType(req.Type)
	if err != nil {
		return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("unknown scan type %q", req.Type).WithError(err))
	}

	res, cached, err := h.scanner.Scan(c.Request().Context(), scanType)
	if err != nil {
		return h.scanError(c, scanType, err)
	}

	hdr := c.Response().Header()
	hdr.Set(echo.HeaderCacheControl, scanCacheControl)
	hdr.Set(headerScanID, res.ScanID)
	if cached {
		hdr.Set(headerScanCache, "HIT")
	} else {
		hdr.Set(headerScanCache, "MISS")
	}
	return c.JSON(http.StatusOK, res)
}

func (h *ScannerEchoHandler) scanError(c echo.Context, scanType models.ScanType, err error) error {
	switch {
	case errors.Is(err, models.ErrUnknownScanType):
		return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()).WithParam("type", string(scanType)))
	case errors.Is(err, models.ErrTotalScanFailure):
		h.logger.Error("scan unavailable", xlogger.String("scan_type", string(scanType)), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.ServiceUnavailableError("every strategy failed, retry later").WithError(err))
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		h.logger.Warn("scan request abandoned", xlogger.String("scan_type", string(scanType)), xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.ServiceUnavailableError("scan still running, retry shortly").WithError(err))
	default:
		h.logger.Error("scan usecase error", xlogger.String("scan_type", string(scanType)), xlogger.Error(err))
		return xhttp.InternalServerErrorResponse(c)
	}
}

// Health handles GET /health.
func (h *ScannerEchoHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthStatus{Status: "ok", Timestamp: h.now().UTC()})
}
