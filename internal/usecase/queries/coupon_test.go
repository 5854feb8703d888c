//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"coupon-service/internal/domain/coupon"
	"coupon-service/internal/infra"
	"coupon-service/internal/infra/db"
	"coupon-service/internal/pkg/errs"
	"coupon-service/internal/usecase/queries"
	"coupon-service/internal/usecase/shared"
	queriesmock "coupon-service/tests/mock/queries"
	sharedmock "coupon-service/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type queriesFixture struct {
	store *queriesmock.MockCouponReadStore
	q     queries.CouponQueries
}

func newQueriesFixture(t *testing.T) *queriesFixture {
	ctrl := gomock.NewController(t)
	uow := sharedmock.NewMockUnitOfWork(ctrl)
	store := queriesmock.NewMockCouponReadStore(ctrl)

	uow.EXPECT().WithinReadOnly(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context, db.DBTX) error) error {
			return fn(ctx, nil)
		},
	).AnyTimes()

	return &queriesFixture{
		store: store,
		q:     queries.NewCouponQueries(uow, store),
	}
}

func storedCoupon(t *testing.T) *coupon.Coupon {
	t.Helper()
	c, err := coupon.Reconstruct(
		uuid.New(),
		"ABC123",
		"Desconto de primavera",
		decimal.NewFromFloat(10.50),
		time.Date(2026, 4, 10, 12, 0, 0, 0, time.UTC),
		true,
		false,
		"ACTIVE",
	)
	require.NoError(t, err)
	return c
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newQueriesFixture(t)
		want := storedCoupon(t)
		f.store.EXPECT().FindByID(gomock.Any(), gomock.Any(), want.ID()).Return(want, nil)

		got, err := f.q.GetByID(ctx, want.ID())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("error: unknown id", func(t *testing.T) {
		f := newQueriesFixture(t)
		id := uuid.New()
		f.store.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("coupon not found", errors.New("no rows"), infra.KindNotFound))

		_, err := f.q.GetByID(ctx, id)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrCouponNotFound)
		assert.Equal(t, "Coupon not found with id: "+id.String(), err.Error())
	})

	t.Run("error: db failure propagates untouched", func(t *testing.T) {
		f := newQueriesFixture(t)
		id := uuid.New()
		f.store.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).
			Return(nil, infra.WrapRepoErr("failed to find coupon", errors.New("connection refused")))

		_, err := f.q.GetByID(ctx, id)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestList(t *testing.T) {
	ctx := context.Background()

	t.Run("passes page and size through", func(t *testing.T) {
		f := newQueriesFixture(t)
		want := &shared.CouponPage{
			Content:       []*coupon.Coupon{storedCoupon(t)},
			Number:        2,
			Size:          5,
			TotalElements: 11,
			TotalPages:    3,
		}
		f.store.EXPECT().FindAll(gomock.Any(), gomock.Any(), 2, 5).Return(want, nil)

		got, err := f.q.List(ctx, 2, 5)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("normalizes out-of-range paging", func(t *testing.T) {
		tests := []struct {
			name     string
			page     int
			size     int
			wantPage int
			wantSize int
		}{
			{name: "negative page", page: -3, size: 5, wantPage: 0, wantSize: 5},
			{name: "zero size", page: 1, size: 0, wantPage: 1, wantSize: queries.DefaultPageSize},
			{name: "negative size", page: 0, size: -1, wantPage: 0, wantSize: queries.DefaultPageSize},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				f := newQueriesFixture(t)
				f.store.EXPECT().FindAll(gomock.Any(), gomock.Any(), tt.wantPage, tt.wantSize).
					Return(&shared.CouponPage{Content: []*coupon.Coupon{}, Number: tt.wantPage, Size: tt.wantSize}, nil)

				_, err := f.q.List(ctx, tt.page, tt.size)
				require.NoError(t, err)
			})
		}
	})

	t.Run("error: db failure propagates", func(t *testing.T) {
		f := newQueriesFixture(t)
		f.store.EXPECT().FindAll(gomock.Any(), gomock.Any(), 0, queries.DefaultPageSize).
			Return(nil, infra.WrapRepoErr("failed to list coupons", errors.New("connection refused")))

		_, err := f.q.List(ctx, 0, 0)
		require.Error(t, err)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}
