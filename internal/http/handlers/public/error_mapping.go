package public

import (
	"errors"

	"github.com/simplyfresh/simplyfresh/internal/http/response"
	"github.com/simplyfresh/simplyfresh/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	key    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackKey string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.key, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackKey, err)
}

func concatMappedHandlerErrors(groups ...[]mappedHandlerError) []mappedHandlerError {
	total := 0
	for _, group := range groups {
		total += len(group)
	}
	result := make([]mappedHandlerError, 0, total)
	for _, group := range groups {
		result = append(result, group...)
	}
	return result
}

var cartCommonErrorRules = []mappedHandlerError{
	{target: service.ErrCartItemInvalid, code: response.CodeBadRequest, key: "error.cart_item_invalid"},
	{target: service.ErrCartQuantityInvalid, code: response.CodeBadRequest, key: "error.cart_quantity_invalid"},
	{target: service.ErrCartTokenInvalid, code: response.CodeBadRequest, key: "error.cart_token_invalid"},
	{target: service.ErrProductNotFound, code: response.CodeNotFound, key: "error.product_not_found"},
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, key: "error.product_not_available"},
	{target: service.ErrStockInsufficient, code: response.CodeBadRequest, key: "error.stock_insufficient"},
}

var checkoutCommonErrorRules = []mappedHandlerError{
	{target: service.ErrCartEmpty, code: response.CodeBadRequest, key: "error.cart_empty"},
	{target: service.ErrPromoInvalid, code: response.CodeBadRequest, key: "error.promo_invalid"},
	{target: service.ErrStockInsufficient, code: response.CodeBadRequest, key: "error.stock_insufficient"},
	{target: service.ErrShippingRequired, code: response.CodeBadRequest, key: "error.shipping_required"},
	{target: service.ErrUserNotFound, code: response.CodeUnauthorized, key: "error.unauthorized"},
}

var checkoutCardErrorRules = []mappedHandlerError{
	{target: service.ErrCardNameInvalid, code: response.CodeBadRequest, key: "error.card_name_invalid"},
	{target: service.ErrCardNumberInvalid, code: response.CodeBadRequest, key: "error.card_number_invalid"},
	{target: service.ErrCardExpiryInvalid, code: response.CodeBadRequest, key: "error.card_expiry_invalid"},
	{target: service.ErrCardExpired, code: response.CodeBadRequest, key: "error.card_expired"},
	{target: service.ErrCardCVVInvalid, code: response.CodeBadRequest, key: "error.card_cvv_invalid"},
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartCommonErrorRules, response.CodeInternal, "error.internal")
}

func respondCheckoutPreviewError(c *gin.Context, err error) {
	respondWithMappedError(c, err, checkoutCommonErrorRules, response.CodeInternal, "error.checkout_failed")
}

func respondCheckoutError(c *gin.Context, err error) {
	respondWithMappedError(c, err, concatMappedHandlerErrors(checkoutCommonErrorRules, checkoutCardErrorRules), response.CodeInternal, "error.checkout_failed")
}
