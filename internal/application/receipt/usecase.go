package receipt

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jhoicas/bizdash/internal/domain"
	"github.com/jhoicas/bizdash/internal/domain/entity"
	"github.com/jhoicas/bizdash/internal/domain/repository"
	"github.com/jhoicas/bizdash/pkg/logger"
)

// InvoiceSource obtiene la factura de servicios a imprimir.
type InvoiceSource interface {
	GetInvoice(ctx context.Context, invoiceNumber string) (*entity.ServiceInvoice, error)
}

// HeaderSource cabecera del negocio (configuración en caché o negocio de la sesión).
type HeaderSource interface {
	Header() entity.BusinessSettings
}

// Rendered recibo listo para enviar.
type Rendered struct {
	Format      string
	ContentType string
	Filename    string
	Body        []byte
	ArchiveKey  string
}

// UseCase imprime recibos. journal y archiver son opcionales (nil = deshabilitado).
type UseCase struct {
	invoices  InvoiceSource
	header    HeaderSource
	renderers map[string]Renderer
	journal   repository.ReceiptJournal
	archiver  repository.ReceiptArchiver
	footer    string
	log       *logger.Logger
	now       func() time.Time
}

// Option configura dependencias opcionales.
type Option func(*UseCase)

// WithJournal registra cada recibo impreso.
func WithJournal(j repository.ReceiptJournal) Option {
	return func(uc *UseCase) { uc.journal = j }
}

// WithArchiver sube los PDF generados.
func WithArchiver(a repository.ReceiptArchiver) Option {
	return func(uc *UseCase) { uc.archiver = a }
}

// NewUseCase construye el caso de uso con los renderers disponibles.
func NewUseCase(invoices InvoiceSource, header HeaderSource, footer string, renderers []Renderer, log *logger.Logger, opts ...Option) *UseCase {
	if log == nil {
		log = logger.Nop()
	}
	uc := &UseCase{
		invoices:  invoices,
		header:    header,
		renderers: make(map[string]Renderer, len(renderers)),
		footer:    footer,
		log:       log.Component("receipt"),
		now:       time.Now,
	}
	for _, r := range renderers {
		uc.renderers[r.Format()] = r
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Document arma el recibo de la factura.
func (uc *UseCase) Document(ctx context.Context, invoiceNumber string) (*Document, error) {
	inv, err := uc.invoices.GetInvoice(ctx, invoiceNumber)
	if err != nil {
		return nil, err
	}
	return BuildDocument(inv, uc.header.Header(), uc.footer, uc.now()), nil
}

// Render genera el recibo en el formato pedido, lo registra en el diario y, si es PDF, lo archiva.
// Fallos del diario o del archivo se registran pero no impiden imprimir.
func (uc *UseCase) Render(ctx context.Context, invoiceNumber, format string) (*Rendered, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" {
		format = FormatHTML
	}
	r, ok := uc.renderers[format]
	if !ok {
		return nil, domain.Invalid("format", fmt.Sprintf("Unsupported receipt format %q", format))
	}
	doc, err := uc.Document(ctx, invoiceNumber)
	if err != nil {
		return nil, err
	}
	return uc.render(ctx, doc, r)
}

func (uc *UseCase) render(ctx context.Context, doc *Document, r Renderer) (*Rendered, error) {
	body, err := r.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("receipt: render %s: %w", r.Format(), err)
	}
	out := &Rendered{
		Format:      r.Format(),
		ContentType: r.ContentType(),
		Filename:    filename(doc.InvoiceNumber, r.Format()),
		Body:        body,
	}

	if r.Format() == FormatPDF && uc.archiver != nil {
		key, err := uc.archiver.Archive(ctx, doc.InvoiceNumber, body)
		if err != nil {
			uc.log.Warn().Err(err).Str("invoice", doc.InvoiceNumber).Msg("no se pudo archivar el recibo")
		} else {
			out.ArchiveKey = key
		}
	}
	if uc.journal != nil {
		rec := &entity.ReceiptRecord{
			InvoiceNumber: doc.InvoiceNumber,
			CustomerName:  doc.CustomerName,
			TotalAmount:   doc.Totals.Total,
			PaymentMethod: doc.PaymentMethod,
			Format:        r.Format(),
			ArchiveKey:    out.ArchiveKey,
			PrintedAt:     uc.now(),
		}
		if err := uc.journal.Record(ctx, rec); err != nil {
			uc.log.Warn().Err(err).Str("invoice", doc.InvoiceNumber).Msg("no se pudo registrar el recibo en el diario")
		}
	}
	uc.log.Info().Str("invoice", doc.InvoiceNumber).Str("format", r.Format()).Msg("recibo generado")
	return out, nil
}

// Journal últimos recibos impresos; vacío si el diario está deshabilitado.
func (uc *UseCase) Journal(ctx context.Context, limit int) ([]entity.ReceiptRecord, error) {
	if uc.journal == nil {
		return []entity.ReceiptRecord{}, nil
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	return uc.journal.Recent(ctx, limit)
}

func filename(invoiceNumber, format string) string {
	ext := map[string]string{FormatHTML: "html", FormatText: "txt", FormatPDF: "pdf"}[format]
	name := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, invoiceNumber)
	if name == "" {
		name = "receipt"
	}
	return fmt.Sprintf("receipt_%s.%s", name, ext)
}
