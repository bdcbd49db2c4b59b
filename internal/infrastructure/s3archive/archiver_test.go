package s3archive

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePut struct {
	in   *s3.PutObjectInput
	body []byte
	err  error
}

func (f *fakePut) PutObject(_ context.Context, in *s3.PutObjectInput, _ ...func(*s3.Options)) (*s3.PutObjectOutput, error) {
	f.in = in
	f.body, _ = io.ReadAll(in.Body)
	return &s3.PutObjectOutput{}, f.err
}

func TestArchive_Clave(t *testing.T) {
	api := &fakePut{}
	a := NewWithAPI(api, "receipts-bucket")
	a.now = func() time.Time { return time.Date(2026, 3, 9, 10, 0, 0, 0, time.UTC) }

	key, err := a.Archive(context.Background(), "SINV-0007", []byte("%PDF-1.4"))
	require.NoError(t, err)
	assert.Equal(t, "receipts/2026/03/SINV-0007.pdf", key)
	assert.Equal(t, "receipts-bucket", aws.ToString(api.in.Bucket))
	assert.Equal(t, "application/pdf", aws.ToString(api.in.ContentType))
	assert.Equal(t, []byte("%PDF-1.4"), api.body)
}

func TestArchive_Error(t *testing.T) {
	a := NewWithAPI(&fakePut{err: errors.New("denied")}, "b")
	_, err := a.Archive(context.Background(), "X/1", nil)
	assert.Error(t, err)
}

func TestKey_EscapaNumero(t *testing.T) {
	assert.Equal(t, "receipts/2026/12/INV%2F9.pdf", Key("INV/9", time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC)))
}
