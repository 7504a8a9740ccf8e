package router

import (
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
)

// APIModule 挂载到 /api/v1 的模块
type APIModule interface{ MountAPI(*gin.RouterGroup) }

// AdminModule 挂载到 /admin/v1 的模块
type AdminModule interface{ MountAdmin(*gin.RouterGroup) }

// 可选：实现该接口可控制挂载顺序（数值越小越先挂），不实现默认 100
type prioritizer interface{ Priority() int }

// Registry 模块注册表（由入口构造，不用包级全局）
type Registry struct {
	mu    sync.RWMutex
	api   []APIModule
	admin []AdminModule
}

func NewRegistry() *Registry { return &Registry{} }

func (r *Registry) RegisterAPI(mods ...APIModule) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.api = append(r.api, mods...)
	return r
}

func (r *Registry) RegisterAdmin(mods ...AdminModule) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.admin = append(r.admin, mods...)
	return r
}

// MountAllAPI 按优先级挂载用户端模块
func (r *Registry) MountAllAPI(api *gin.RouterGroup) {
	r.mu.RLock()
	mods := append([]APIModule(nil), r.api...)
	r.mu.RUnlock()

	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountAPI(api)
	}
}

// MountAllAdmin 按优先级挂载管理端模块
func (r *Registry) MountAllAdmin(admin *gin.RouterGroup) {
	r.mu.RLock()
	mods := append([]AdminModule(nil), r.admin...)
	r.mu.RUnlock()

	sort.SliceStable(mods, func(i, j int) bool {
		return priorityOf(mods[i]) < priorityOf(mods[j])
	})
	for _, m := range mods {
		m.MountAdmin(admin)
	}
}

func priorityOf(v any) int {
	if p, ok := v.(prioritizer); ok {
		return p.Priority()
	}
	return 100
}
