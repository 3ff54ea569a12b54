package rest

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/Gunvolt24/dealer_backoffice/internal/domain"
	"github.com/Gunvolt24/dealer_backoffice/internal/ports"
	"github.com/Gunvolt24/dealer_backoffice/pkg/ctxmeta"
	"github.com/Gunvolt24/dealer_backoffice/pkg/httpx"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

const (
	headerUserID    = "X-User-ID"
	headerUserEmail = "X-User-Email"

	defaultListLimit = 20
	maxListLimit     = 100

	// Блобы храним только в памяти, крупные файлы сюда не относятся.
	maxBlobBytes = 5 << 20
)

type Handler struct {
	stock    ports.StockOperations
	identity ports.IdentityResolver
	blobs    ports.ScopedCache
	log      ports.Logger
	blobTTL  time.Duration
}

// DI-конструктор.
func NewHandler(stock ports.StockOperations, identity ports.IdentityResolver, blobs ports.ScopedCache, log ports.Logger, blobTTL time.Duration) *Handler {
	return &Handler{stock: stock, identity: identity, blobs: blobs, log: log, blobTTL: blobTTL}
}

func NewRouter(h *Handler, serviceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if serviceName != "" {
		r.Use(otelgin.Middleware(serviceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	api.Use(dealerContext())
	{
		api.GET("/stock/:dealerId", h.listStock)
		api.GET("/stock/:dealerId/:stockId", h.getStock)
		api.PATCH("/stock/:dealerId/:stockId", h.updateStock)
		api.DELETE("/stock/:dealerId/:stockId", h.deleteStock)

		api.GET("/limits", h.getLimits)
		api.GET("/identity", h.getIdentity)

		api.POST("/blobs", h.putBlob)
		api.GET("/blobs/:id", h.getBlob)
	}

	return r
}

// caller — кто выполняет запрос; Marketplace-операции требуют хотя бы
// одного из двух заголовков.
func caller(c *gin.Context) (userID, email string) {
	return c.GetHeader(headerUserID), c.GetHeader(headerUserEmail)
}

// dealerContext — кладёт dealerId маршрута в контекст запроса (для логов).
func dealerContext() gin.HandlerFunc {
	return func(c *gin.Context) {
		if id := c.Param("dealerId"); id != "" {
			c.Request = c.Request.WithContext(ctxmeta.WithDealerID(c.Request.Context(), id))
		}
		c.Next()
	}
}

func (h *Handler) getStock(c *gin.Context) {
	dealerID, stockID := c.Param("dealerId"), c.Param("stockId")
	userID, email := caller(c)
	forceRefresh := httpx.QueryBool(c, "refresh")

	res, err := h.stock.GetStock(c.Request.Context(), userID, email, dealerID, stockID, forceRefresh)
	if err != nil {
		h.writeError(c, "GetStock", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) listStock(c *gin.Context) {
	dealerID := c.Param("dealerId")
	limit, offset := httpx.ParseLimitOffset(c, defaultListLimit, maxListLimit)

	records, err := h.stock.ListStock(c.Request.Context(), dealerID, limit, offset)
	if err != nil {
		h.writeError(c, "ListStock", err)
		return
	}
	if records == nil {
		records = []*domain.StockRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"records": records, "limit": limit, "offset": offset})
}

func (h *Handler) updateStock(c *gin.Context) {
	dealerID, stockID := c.Param("dealerId"), c.Param("stockId")
	userID, email := caller(c)

	var change domain.StockChangeset
	if err := c.ShouldBindJSON(&change); err != nil {
		h.writeError(c, "ApplyStockUpdate", domain.ErrValidation("request body must be a valid changeset JSON"))
		return
	}

	res, err := h.stock.ApplyStockUpdate(c.Request.Context(), userID, email, dealerID, stockID, &change)
	if err != nil {
		h.writeError(c, "ApplyStockUpdate", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) deleteStock(c *gin.Context) {
	dealerID, stockID := c.Param("dealerId"), c.Param("stockId")

	if err := h.stock.DeleteStock(c.Request.Context(), dealerID, stockID); err != nil {
		h.writeError(c, "DeleteStock", err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) getLimits(c *gin.Context) {
	userID, email := caller(c)

	info, err := h.stock.GetLimits(c.Request.Context(), userID, email)
	if err != nil {
		h.writeError(c, "GetLimits", err)
		return
	}
	c.JSON(http.StatusOK, info)
}

func (h *Handler) getIdentity(c *gin.Context) {
	userID, email := caller(c)

	id, err := h.identity.Resolve(c.Request.Context(), userID, email)
	if err != nil {
		h.writeError(c, "ResolveIdentity", err)
		return
	}
	c.JSON(http.StatusOK, id)
}

// blob — временный объект, живущий только в памяти процесса.
type blob struct {
	Data        []byte
	ContentType string
}

func (h *Handler) putBlob(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBlobBytes+1))
	if err != nil {
		h.writeError(c, "PutBlob", domain.ErrValidation("failed to read request body"))
		return
	}
	if len(data) == 0 {
		h.writeError(c, "PutBlob", domain.ErrValidation("empty body"))
		return
	}
	if len(data) > maxBlobBytes {
		h.writeError(c, "PutBlob", domain.ErrValidation("body exceeds the 5MB blob limit"))
		return
	}

	id := uuid.New().String()
	h.blobs.Set(c.Request.Context(), id, blob{
		Data:        data,
		ContentType: c.ContentType(),
	}, h.blobTTL)

	c.JSON(http.StatusCreated, gin.H{"id": id, "expiresIn": h.blobTTL.String()})
}

func (h *Handler) getBlob(c *gin.Context) {
	id := c.Param("id")

	v, ok := h.blobs.Get(c.Request.Context(), id)
	if !ok {
		h.writeError(c, "GetBlob", domain.NewError(domain.KindNotFound, "blob not found or expired"))
		return
	}
	b, ok := v.(blob)
	if !ok {
		h.writeError(c, "GetBlob", domain.NewError(domain.KindNotFound, "blob not found or expired"))
		return
	}

	ct := b.ContentType
	if ct == "" {
		ct = "application/octet-stream"
	}
	c.Data(http.StatusOK, ct, b.Data)
}

// writeError — единая точка маппинга доменной таксономии на HTTP-статусы.
// Не-доменные ошибки наружу не раскрываются.
func (h *Handler) writeError(c *gin.Context, op string, err error) {
	var de *domain.Error
	if !errors.As(err, &de) {
		h.log.Errorf(c.Request.Context(), "%s failed: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"type": "internal", "message": "internal server error"}})
		return
	}

	status := http.StatusInternalServerError
	switch de.Kind {
	case domain.KindValidation:
		status = http.StatusBadRequest
	case domain.KindAuthenticationFailed, domain.KindInvalidCredentials:
		status = http.StatusUnauthorized
	case domain.KindConfigNotFound, domain.KindNotFound:
		status = http.StatusNotFound
	case domain.KindUpstreamRejected:
		status = http.StatusUnprocessableEntity
	case domain.KindUpstreamUnavailable:
		status = http.StatusBadGateway
	}

	if status >= http.StatusInternalServerError {
		h.log.Errorf(c.Request.Context(), "%s failed: %v", op, err)
	} else {
		h.log.Warnf(c.Request.Context(), "%s rejected: %v", op, err)
	}
	c.JSON(status, gin.H{"error": de})
}
