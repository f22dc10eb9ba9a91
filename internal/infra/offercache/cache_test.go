//go:build unit

package offercache_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"pro-stock-editor/internal/infra/offercache"
	"pro-stock-editor/internal/usecase/shared"
	"pro-stock-editor/tests/common/builder"
	sharedmock "pro-stock-editor/tests/mock/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCacheWithoutRedis(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := sharedmock.NewMockOfferSource(ctrl)
	summary := builder.NewOfferBuilder().Build()

	source.EXPECT().GetOffer(gomock.Any(), summary.ID).Return(&summary, nil).Times(2)

	c := offercache.New(source, nil, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	got, err := c.Get(context.Background(), summary.ID)
	require.NoError(t, err)
	assert.Equal(t, summary.Name, got.Name)

	_, err = c.Refresh(context.Background(), summary.ID)
	require.NoError(t, err)
}

func TestCacheSourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := sharedmock.NewMockOfferSource(ctrl)
	source.EXPECT().GetOffer(gomock.Any(), int64(7)).Return(nil, shared.ErrOfferNotFound)

	c := offercache.New(source, nil, time.Minute, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := c.Get(context.Background(), 7)
	assert.ErrorIs(t, err, shared.ErrOfferNotFound)
}
