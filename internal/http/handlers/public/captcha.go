package public

import (
	"errors"

	"github.com/simplyfresh/simplyfresh/internal/constants"
	"github.com/simplyfresh/simplyfresh/internal/http/response"
	"github.com/simplyfresh/simplyfresh/internal/service"

	"github.com/gin-gonic/gin"
)

// GetImageCaptcha 获取图片验证码挑战
func (h *Handler) GetImageCaptcha(c *gin.Context) {
	if h.CaptchaService == nil {
		respondError(c, response.CodeInternal, "error.captcha_unavailable", service.ErrCaptchaConfigInvalid)
		return
	}

	challenge, err := h.CaptchaService.GenerateImageChallenge()
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCaptchaConfigInvalid):
			respondError(c, response.CodeBadRequest, "error.captcha_unavailable", nil)
		default:
			respondError(c, response.CodeInternal, "error.captcha_generate_failed", err)
		}
		return
	}

	response.Success(c, gin.H{
		"captcha_id":   challenge.CaptchaID,
		"image_base64": challenge.ImageBase64,
	})
}

// GetCaptchaScenes 查询各场景是否需要验证码
func (h *Handler) GetCaptchaScenes(c *gin.Context) {
	if h.CaptchaService == nil {
		response.Success(c, gin.H{
			constants.CaptchaSceneLogin:      false,
			constants.CaptchaSceneAdminLogin: false,
		})
		return
	}
	response.Success(c, gin.H{
		constants.CaptchaSceneLogin:      h.CaptchaService.SceneEnabled(constants.CaptchaSceneLogin),
		constants.CaptchaSceneAdminLogin: h.CaptchaService.SceneEnabled(constants.CaptchaSceneAdminLogin),
	})
}
