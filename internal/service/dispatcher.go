package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"github.com/factupro/invoice-api/internal/domain"
	"github.com/factupro/invoice-api/internal/model"
	"github.com/factupro/invoice-api/internal/repository"
	"github.com/factupro/invoice-api/internal/storage"
)

// corsHeaders are attached to every response the dispatcher produces,
// whichever branch built it.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Headers": "Content-Type, Authorization",
	"Access-Control-Allow-Methods": "OPTIONS,POST,GET,DELETE",
}

// Dispatcher routes invoice events to the blob and record stores. It is
// stateless: each event is handled to completion, synchronously, with every
// storage call attempted exactly once.
type Dispatcher struct {
	blobs   storage.BlobStore
	records repository.RecordStore
}

// NewDispatcher creates a dispatcher over the given stores.
func NewDispatcher(blobs storage.BlobStore, records repository.RecordStore) *Dispatcher {
	return &Dispatcher{blobs: blobs, records: records}
}

// Handle processes one event and always returns a well-formed envelope:
// errors from any step, panics included, surface as a 500 response instead of
// propagating to the hosting layer.
func (d *Dispatcher) Handle(ctx context.Context, event model.Event) (resp model.Response) {
	defer func() {
		if r := recover(); r != nil {
			resp = errorResponse(fmt.Errorf("%v", r))
		}
		if resp.Headers == nil {
			resp.Headers = make(map[string]string, len(corsHeaders))
		}
		for k, v := range corsHeaders {
			resp.Headers[k] = v
		}
	}()

	resp, err := d.dispatch(ctx, event)
	if err != nil {
		resp = errorResponse(err)
	}
	return resp
}

func (d *Dispatcher) dispatch(ctx context.Context, event model.Event) (model.Response, error) {
	// No operation proceeds without verified claims.
	if event.Claims == nil || event.Claims.Email == "" {
		return model.Response{}, domain.ErrNotAuthenticated
	}

	switch {
	case event.HTTPMethod == http.MethodPost && event.Path == "/invoice":
		return d.createInvoice(ctx, event)
	case event.HTTPMethod == http.MethodGet && event.Path == "/invoice":
		return d.listInvoices(ctx, event)
	case event.HTTPMethod == http.MethodDelete && event.Path == "/invoice":
		return d.deleteInvoice(ctx, event)
	default:
		return jsonResponse(http.StatusBadRequest, model.MessageResponse{
			Message: "Método o ruta inválida!",
		})
	}
}

func (d *Dispatcher) createInvoice(ctx context.Context, event model.Event) (model.Response, error) {
	var req model.CreateInvoiceRequest
	if err := json.Unmarshal([]byte(event.Body), &req); err != nil {
		return model.Response{}, fmt.Errorf("invalid request body: %w", err)
	}

	fileType := domain.DetectFileType(req.Content)
	if fileType == domain.FileTypeUnsupported {
		return model.Response{}, domain.ErrUnsupportedFileType
	}

	imgLink, err := d.blobs.Upload(ctx, req.Content, fileType.Extension())
	if err != nil {
		return model.Response{}, fmt.Errorf("error al subir archivo: %w", err)
	}

	invoice := &domain.Invoice{
		InvoiceID:   uuid.NewString(),
		UserName:    event.Claims.Email, // never the client-supplied name
		Value:       req.Value,
		Date:        req.Date,
		Description: req.Description,
		Category:    req.Category,
		ImgLink:     imgLink,
		ITBMSUSD:    req.ITBMSUSD,
		Subtotal:    req.Subtotal,
	}
	if err := d.records.Put(ctx, invoice); err != nil {
		// The blob is already stored; a failed metadata write leaves it
		// orphaned, never a record pointing at a missing blob.
		return model.Response{}, fmt.Errorf("error al guardar la factura: %w", err)
	}

	return jsonResponse(http.StatusCreated, model.CreateInvoiceResponse{
		Message: "Factura cargada exitosamente!",
		Event:   event,
	})
}

func (d *Dispatcher) listInvoices(ctx context.Context, event model.Event) (model.Response, error) {
	invoices, err := d.records.Scan(ctx, event.Query("month"))
	if err != nil {
		return model.Response{}, fmt.Errorf("error al consultar facturas: %w", err)
	}
	return jsonResponse(http.StatusOK, invoices)
}

func (d *Dispatcher) deleteInvoice(ctx context.Context, event model.Event) (model.Response, error) {
	invoiceID := event.Query("invoiceId")
	fileURL := event.Query("fileUrl")

	// Blob first: a failed blob delete must leave the record untouched.
	if err := d.blobs.Delete(ctx, fileURL); err != nil {
		return model.Response{}, fmt.Errorf("error al eliminar el archivo: %w", err)
	}
	if err := d.records.Delete(ctx, invoiceID); err != nil {
		return model.Response{}, fmt.Errorf("error al eliminar la factura: %w", err)
	}

	return jsonResponse(http.StatusOK, model.MessageResponse{
		Message: "Factura eliminada exitosamente!",
	})
}

func jsonResponse(status int, body any) (model.Response, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return model.Response{}, fmt.Errorf("failed to encode response body: %w", err)
	}
	return model.Response{StatusCode: status, Body: string(data)}, nil
}

func errorResponse(err error) model.Response {
	body, _ := json.Marshal(model.ErrorResponse{
		Message: "Error al procesar la solicitud",
		Error:   err.Error(),
	})
	return model.Response{StatusCode: http.StatusInternalServerError, Body: string(body)}
}
