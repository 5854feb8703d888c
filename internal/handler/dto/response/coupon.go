package response

import (
	"coupon-service/internal/domain/coupon"
	"coupon-service/internal/pkg/localtime"
	"coupon-service/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CouponResponse struct {
	ID             uuid.UUID               `json:"id"`
	Code           string                  `json:"code"`
	Description    string                  `json:"description"`
	DiscountValue  decimal.Decimal         `json:"discountValue"`
	ExpirationDate localtime.LocalDateTime `json:"expirationDate"`
	Published      bool                    `json:"published"`
	Redeemed       bool                    `json:"redeemed"`
	Status         string                  `json:"status"`
}

func FromCoupon(c *coupon.Coupon) CouponResponse {
	return CouponResponse{
		ID:             c.ID(),
		Code:           c.Code().String(),
		Description:    c.Description().String(),
		DiscountValue:  c.Discount().Value(),
		ExpirationDate: localtime.New(c.ExpirationDate().Value()),
		Published:      c.Published(),
		Redeemed:       c.Redeemed(),
		Status:         c.Status().String(),
	}
}

// PageMeta groups pagination metadata under the envelope's page object.
type PageMeta struct {
	Size          int   `json:"size"`
	Number        int   `json:"number"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

type CouponPageResponse struct {
	Content []CouponResponse `json:"content"`
	Page    PageMeta         `json:"page"`
}

func FromCouponPage(p *shared.CouponPage) CouponPageResponse {
	content := make([]CouponResponse, 0, len(p.Content))
	for _, c := range p.Content {
		content = append(content, FromCoupon(c))
	}

	return CouponPageResponse{
		Content: content,
		Page: PageMeta{
			Size:          p.Size,
			Number:        p.Number,
			TotalElements: p.TotalElements,
			TotalPages:    p.TotalPages,
		},
	}
}
