package entities

import "github.com/zooyer/dxf2path/core"

// Unknown 未注册的实体类型，只保留类型、图层和句柄，方便上层报告不支持的实体
type Unknown struct {
	BaseEntity
}

func NewUnknown(typeName string) *Unknown {
	return &Unknown{BaseEntity: BaseEntity{TypeName: typeName}}
}

func (u *Unknown) Parse(s *core.Scanner) error {
	for {
		u.parseCommon(s.LastTag)
		if !s.Next() || s.LastTag.Code == 0 {
			break
		}
	}
	return s.Err()
}

func (u *Unknown) BBox() core.BBox {
	return core.BBox{}
}
