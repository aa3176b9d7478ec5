package catalog

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"testing"

	"aesthetic-cakes/internal/model"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockObjectGetter is a mock implementation of ObjectGetter.
type MockObjectGetter struct {
	mock.Mock
}

func (m *MockObjectGetter) GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error) {
	args := m.Called(ctx, *params.Bucket, *params.Key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*s3.GetObjectOutput), args.Error(1)
}

// mockLoader is a mock implementation of the Loader interface for testing.
type mockLoader struct {
	loadFunc func(ctx context.Context, kind model.Kind) (*Section, error)
}

func (m *mockLoader) Load(ctx context.Context, kind model.Kind) (*Section, error) {
	if m.loadFunc != nil {
		return m.loadFunc(ctx, kind)
	}
	return nil, errors.New("not implemented")
}

func gzipBody(t *testing.T, content string) io.ReadCloser {
	t.Helper()

	var buf bytes.Buffer
	gz := gzip.NewWriter(&buf)
	_, err := gz.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, gz.Close())
	return io.NopCloser(&buf)
}

func TestS3Loader_Load(t *testing.T) {
	ctx := context.Background()
	client := new(MockObjectGetter)
	client.On("GetObject", ctx, "bakery-assets", "catalog/sweets.yaml.gz").
		Return(&s3.GetObjectOutput{Body: gzipBody(t, sweetsYAML)}, nil)

	loader := NewS3LoaderWithClient(client, "bakery-assets", "catalog/", zerolog.Nop())
	section, err := loader.Load(ctx, model.KindSweet)

	require.NoError(t, err)
	require.Len(t, section.Products, 1)
	assert.Equal(t, "Oat Cookies", section.Products[0].Name)
	client.AssertExpectations(t)
}

func TestS3Loader_GetObjectError(t *testing.T) {
	ctx := context.Background()
	client := new(MockObjectGetter)
	client.On("GetObject", ctx, "bakery-assets", "cakes.yaml.gz").
		Return(nil, errors.New("access denied"))

	loader := NewS3LoaderWithClient(client, "bakery-assets", "", zerolog.Nop())
	section, err := loader.Load(ctx, model.KindCake)

	require.Error(t, err)
	assert.Nil(t, section)
	assert.Contains(t, err.Error(), "bucket=bakery-assets, key=cakes.yaml.gz")
}

func TestS3Loader_NotGzipped(t *testing.T) {
	ctx := context.Background()
	client := new(MockObjectGetter)
	client.On("GetObject", ctx, "bakery-assets", "cakes.yaml.gz").
		Return(&s3.GetObjectOutput{Body: io.NopCloser(bytes.NewBufferString("plain"))}, nil)

	loader := NewS3LoaderWithClient(client, "bakery-assets", "", zerolog.Nop())
	_, err := loader.Load(ctx, model.KindCake)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create gzip reader")
}

func TestFallbackLoader_PrimarySuccess(t *testing.T) {
	primarySection := &Section{Kind: model.KindCake}
	primary := &mockLoader{
		loadFunc: func(ctx context.Context, kind model.Kind) (*Section, error) {
			return primarySection, nil
		},
	}
	secondary := &mockLoader{
		loadFunc: func(ctx context.Context, kind model.Kind) (*Section, error) {
			t.Error("secondary loader should not be called when primary succeeds")
			return nil, errors.New("should not be called")
		},
	}

	loader := NewFallbackLoader(primary, secondary, zerolog.Nop())
	section, err := loader.Load(context.Background(), model.KindCake)

	assert.NoError(t, err)
	assert.Same(t, primarySection, section)
}

func TestFallbackLoader_PrimaryFailsFallsBack(t *testing.T) {
	secondarySection := &Section{Kind: model.KindCake}
	primary := &mockLoader{
		loadFunc: func(ctx context.Context, kind model.Kind) (*Section, error) {
			return nil, errors.New("S3 unavailable")
		},
	}
	secondaryCalled := false
	secondary := &mockLoader{
		loadFunc: func(ctx context.Context, kind model.Kind) (*Section, error) {
			secondaryCalled = true
			return secondarySection, nil
		},
	}

	loader := NewFallbackLoader(primary, secondary, zerolog.Nop())
	section, err := loader.Load(context.Background(), model.KindCake)

	assert.NoError(t, err)
	assert.True(t, secondaryCalled)
	assert.Same(t, secondarySection, section)
}

func TestFallbackLoader_NilPrimary(t *testing.T) {
	secondary := &mockLoader{
		loadFunc: func(ctx context.Context, kind model.Kind) (*Section, error) {
			return &Section{Kind: kind}, nil
		},
	}

	loader := NewFallbackLoader(nil, secondary, zerolog.Nop())
	section, err := loader.Load(context.Background(), model.KindSweet)

	assert.NoError(t, err)
	assert.Equal(t, model.KindSweet, section.Kind)
}

func TestFallbackLoader_BothFail(t *testing.T) {
	failing := &mockLoader{}

	loader := NewFallbackLoader(failing, failing, zerolog.Nop())
	_, err := loader.Load(context.Background(), model.KindSweet)

	assert.EqualError(t, err, "not implemented")
}

func TestLoad_SectionErrorFailsCatalog(t *testing.T) {
	loader := &mockLoader{
		loadFunc: func(ctx context.Context, kind model.Kind) (*Section, error) {
			if kind == model.KindSweet {
				return nil, errors.New("boom")
			}
			return &Section{Kind: kind}, nil
		},
	}

	c, err := Load(context.Background(), loader, zerolog.Nop())

	require.Error(t, err)
	assert.Nil(t, c)
	assert.Contains(t, err.Error(), "failed to load sweet section")
}
