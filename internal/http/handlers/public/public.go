package public

import (
	"time"

	"github.com/reloop-next/internal/cache"
	"github.com/reloop-next/internal/constants"
	"github.com/reloop-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

const (
	publicConfigCacheKey = "public:config"
	publicConfigCacheTTL = 60 * time.Second
)

// GetConfig 获取全局配置
func (h *Handler) GetConfig(c *gin.Context) {
	var cached map[string]interface{}
	if hit, err := cache.GetJSON(c.Request.Context(), publicConfigCacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	data := map[string]interface{}{
		"languages":       constants.SupportedLocales,
		"conditions":      []string{constants.ProductConditionLikeNew, constants.ProductConditionGood, constants.ProductConditionFair},
		"payment_methods": []string{constants.PaymentMethodCOD},
	}

	captchaConfig := map[string]interface{}{
		"provider": constants.CaptchaProviderNone,
		"scenes":   map[string]bool{},
	}
	if h.CaptchaService != nil && h.Config != nil {
		captchaConfig["provider"] = h.Config.Captcha.Provider
		captchaConfig["scenes"] = map[string]bool{
			constants.CaptchaSceneLogin:    h.CaptchaService.IsSceneEnabled(constants.CaptchaSceneLogin),
			constants.CaptchaSceneRegister: h.CaptchaService.IsSceneEnabled(constants.CaptchaSceneRegister),
		}
	}
	data["captcha"] = captchaConfig

	_ = cache.SetJSON(c.Request.Context(), publicConfigCacheKey, data, publicConfigCacheTTL)
	response.Success(c, data)
}
