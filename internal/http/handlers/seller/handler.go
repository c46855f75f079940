package seller

import "github.com/reloop-next/internal/provider"

// Handler 卖家侧接口处理器入口
// 说明：该处理器仅用于卖家管理商品与订单的 API。
type Handler struct {
	*provider.Container
}

// New 创建卖家处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
