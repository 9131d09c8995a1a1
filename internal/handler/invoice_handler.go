package handler

import (
	"io"

	"github.com/gin-gonic/gin"

	"github.com/factupro/invoice-api/internal/domain"
	"github.com/factupro/invoice-api/internal/middleware"
	"github.com/factupro/invoice-api/internal/model"
	"github.com/factupro/invoice-api/internal/service"
)

// InvoiceHandler adapts HTTP requests into dispatcher events and writes the
// resulting envelope back to the transport.
type InvoiceHandler struct {
	dispatcher *service.Dispatcher
}

// NewInvoiceHandler creates a new invoice handler.
func NewInvoiceHandler(dispatcher *service.Dispatcher) *InvoiceHandler {
	return &InvoiceHandler{dispatcher: dispatcher}
}

// RegisterRoutes registers the invoice routes with the given router.
func (h *InvoiceHandler) RegisterRoutes(router *gin.Engine) {
	router.POST("/invoice", h.CreateInvoice)
	router.GET("/invoice", h.ListInvoices)
	router.DELETE("/invoice", h.DeleteInvoice)
}

// CreateInvoice stores an uploaded invoice document and its metadata
// @Summary Create an invoice
// @Description Upload a base64-encoded JPEG or PDF document and record its metadata
// @Tags invoices
// @Accept json
// @Produce json
// @Param invoice body model.CreateInvoiceRequest true "Invoice payload"
// @Success 201 {object} model.CreateInvoiceResponse "Invoice stored"
// @Failure 400 {object} model.MessageResponse "Invalid method or path"
// @Failure 500 {object} model.ErrorResponse "Missing claims or storage failure"
// @Security BearerAuth
// @Router /invoice [post]
func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	h.handle(c)
}

// ListInvoices returns every stored invoice, optionally filtered by month
// @Summary List invoices
// @Description List all invoices, optionally restricted to a date prefix such as 2024-01
// @Tags invoices
// @Produce json
// @Param month query string false "Date prefix filter (YYYY-MM)"
// @Success 200 {array} domain.Invoice
// @Failure 500 {object} model.ErrorResponse "Missing claims or storage failure"
// @Security BearerAuth
// @Router /invoice [get]
func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	h.handle(c)
}

// DeleteInvoice removes an invoice document and its record
// @Summary Delete an invoice
// @Description Delete the stored document first, then the metadata record
// @Tags invoices
// @Produce json
// @Param invoiceId query string true "Invoice id"
// @Param fileUrl query string true "Document locator"
// @Success 200 {object} model.MessageResponse "Invoice deleted"
// @Failure 500 {object} model.ErrorResponse "Missing claims, unknown record, or storage failure"
// @Security BearerAuth
// @Router /invoice [delete]
func (h *InvoiceHandler) DeleteInvoice(c *gin.Context) {
	h.handle(c)
}

// handle builds the event, runs it through the dispatcher, and copies the
// envelope to the response. Status-code mapping lives in the dispatcher, not
// here.
func (h *InvoiceHandler) handle(c *gin.Context) {
	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		body = nil
	}

	query := make(map[string]string)
	for name, values := range c.Request.URL.Query() {
		if len(values) > 0 {
			query[name] = values[0]
		}
	}

	event := model.Event{
		HTTPMethod:            c.Request.Method,
		Path:                  c.Request.URL.Path,
		Body:                  string(body),
		QueryStringParameters: query,
		Claims:                claimsFromContext(c),
	}

	resp := h.dispatcher.Handle(c.Request.Context(), event)
	for k, v := range resp.Headers {
		c.Header(k, v)
	}
	c.Data(resp.StatusCode, "application/json", []byte(resp.Body))
}

func claimsFromContext(c *gin.Context) *domain.Claims {
	v, ok := c.Get(middleware.ClaimsKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*domain.Claims)
	if !ok {
		return nil
	}
	return claims
}
