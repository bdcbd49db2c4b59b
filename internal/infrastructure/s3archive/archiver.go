// Package s3archive sube los PDF de recibos a un bucket S3 (o compatible).
package s3archive

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/jhoicas/bizdash/internal/domain/repository"
)

// PutObjectAPI subconjunto de *s3.Client que usa el archivador.
type PutObjectAPI interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// Config credenciales y destino.
type Config struct {
	Bucket    string
	Region    string
	Endpoint  string // vacío = AWS; si no, MinIO/R2/etc. con path-style
	AccessKey string
	SecretKey string
}

var _ repository.ReceiptArchiver = (*Archiver)(nil)

// Archiver guarda cada recibo en receipts/YYYY/MM/<número>.pdf.
type Archiver struct {
	api    PutObjectAPI
	bucket string
	now    func() time.Time
}

// New construye el cliente S3 con credenciales estáticas.
func New(cfg Config) *Archiver {
	opts := s3.Options{
		Region:      cfg.Region,
		Credentials: aws.NewCredentialsCache(credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, "")),
	}
	if cfg.Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.Endpoint)
		opts.UsePathStyle = true
	}
	return NewWithAPI(s3.New(opts), cfg.Bucket)
}

// NewWithAPI permite inyectar el cliente (tests).
func NewWithAPI(api PutObjectAPI, bucket string) *Archiver {
	return &Archiver{api: api, bucket: bucket, now: time.Now}
}

// Key clave del objeto para el número de factura en el instante t.
func Key(invoiceNumber string, t time.Time) string {
	return fmt.Sprintf("receipts/%04d/%02d/%s.pdf", t.Year(), int(t.Month()), url.PathEscape(invoiceNumber))
}

func (a *Archiver) Archive(ctx context.Context, invoiceNumber string, pdf []byte) (string, error) {
	key := Key(invoiceNumber, a.now())
	_, err := a.api.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(a.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String("application/pdf"),
		Metadata:    map[string]string{"invoice-number": invoiceNumber},
	})
	if err != nil {
		return "", fmt.Errorf("s3 put %s: %w", key, err)
	}
	return key, nil
}
