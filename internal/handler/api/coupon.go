package api

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	reqdto "coupon-service/internal/handler/dto/request"
	resdto "coupon-service/internal/handler/dto/response"
	"coupon-service/internal/handler/httperr"
	"coupon-service/internal/usecase/commands"
	"coupon-service/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CouponHandler struct {
	cmds commands.CouponCommands
	q    queries.CouponQueries
}

func NewCouponHandler(cmds commands.CouponCommands, q queries.CouponQueries) *CouponHandler {
	return &CouponHandler{cmds: cmds, q: q}
}

// @Summary Create coupon
// @Description Create a new coupon with a canonicalized 6-character alphanumeric code
// @Tags coupons
// @Accept json
// @Produce json
// @Param request body reqdto.CreateCouponRequest true "Create coupon request"
// @Success 201 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Router /api/v1/coupons [post]
func (h *CouponHandler) Create(c *gin.Context) {
	var req reqdto.CreateCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		if name, ok := reqdto.UnknownFieldName(err); ok {
			msg := fmt.Sprintf("Atributo '%s' não reconhecido ou não permitido na requisição", name)
			httperr.AbortWithError(c, http.StatusBadRequest, httperr.LabelUnrecognizedField, msg, err)
			return
		}
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.LabelValidationFailed, "Malformed JSON request", err)
		return
	}

	if msgs := req.Validate(); len(msgs) > 0 {
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.LabelValidationFailed, strings.Join(msgs, ", "), nil)
		return
	}

	created, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCoupon(created))
}

// @Summary Get coupon
// @Description Get a coupon by ID
// @Tags coupons
// @Produce json
// @Param id path string true "Coupon ID"
// @Success 200 {object} resdto.CouponResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/v1/coupons/{id} [get]
func (h *CouponHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.LabelBadRequest, "Invalid coupon id", err)
		return
	}
	found, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCoupon(found))
}

// @Summary Delete coupon
// @Description Soft-delete a coupon; the row stays queryable with status DELETED
// @Tags coupons
// @Param id path string true "Coupon ID"
// @Success 204 "No Content"
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/v1/coupons/{id} [delete]
func (h *CouponHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, httperr.LabelBadRequest, "Invalid coupon id", err)
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary List coupons
// @Description List all coupons, deleted ones included, with offset pagination
// @Tags coupons
// @Produce json
// @Param page query int false "Zero-based page number (default 0)"
// @Param size query int false "Page size (default 20)"
// @Success 200 {object} resdto.CouponPageResponse
// @Failure 500 {object} httperr.Response
// @Router /api/v1/coupons [get]
func (h *CouponHandler) List(c *gin.Context) {
	page := 0
	if v := c.Query("page"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			page = iv
		}
	}
	size := queries.DefaultPageSize
	if v := c.Query("size"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			size = iv
		}
	}

	result, err := h.q.List(c.Request.Context(), page, size)
	if err != nil {
		httperr.AbortWithDomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromCouponPage(result))
}
