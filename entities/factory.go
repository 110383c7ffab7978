package entities

import (
	"github.com/zooyer/dxf2path/core"
)

// Entity 是一切几何实体的接口
type Entity interface {
	Parse(scanner *core.Scanner) error
	Type() string
	Layer() string
	ID() string
	BBox() core.BBox
}

// BaseEntity 存放所有实体通用的属性（如 Layer, Handle）
type BaseEntity struct {
	TypeName  string
	LayerName string
	Handle    string
}

func (b *BaseEntity) Type() string { return b.TypeName }

func (b *BaseEntity) Layer() string { return b.LayerName }

func (b *BaseEntity) ID() string { return b.Handle }

// parseCommon 处理所有实体共享的组码，返回 true 表示已处理
func (b *BaseEntity) parseCommon(t core.Tag) bool {
	switch t.Code {
	case 5:
		b.Handle = t.AsString()
	case 8:
		b.LayerName = t.AsString()
	default:
		return false
	}
	return true
}

// EntityFactory 定义了如何从标签流中创建一个实体
type EntityFactory func() Entity

var registry = map[string]EntityFactory{}

// Register 允许以后动态扩展新的实体类型
func Register(typeName string, factory EntityFactory) {
	registry[typeName] = factory
}

// CreateEntity 根据实体名称生产对应的结构体，未注册的类型返回 nil
func CreateEntity(typeName string) Entity {
	if factory, ok := registry[typeName]; ok {
		return factory()
	}
	return nil
}

// Registered 返回已注册的实体类型名
func Registered() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}
