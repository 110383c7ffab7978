package entities

import "github.com/zooyer/dxf2path/core"

// Attrib 块属性，只出现在带属性的 INSERT 之后
type Attrib struct {
	BaseEntity
	Location core.Point
	Tag      string // 属性标签，组码 2
	Text     string // 属性值，组码 1
	Height   float64
}

func init() {
	Register("ATTRIB", func() Entity {
		return &Attrib{BaseEntity: BaseEntity{TypeName: "ATTRIB"}}
	})
}

func (a *Attrib) Parse(scanner *core.Scanner) error {
	for {
		tag := scanner.LastTag
		if !a.parseCommon(tag) {
			switch tag.Code {
			case 10:
				a.Location.X = tag.AsFloat()
			case 20:
				a.Location.Y = tag.AsFloat()
			case 30:
				a.Location.Z = tag.AsFloat()
			case 40:
				a.Height = tag.AsFloat()
			case 1:
				a.Text = tag.AsString()
			case 2:
				a.Tag = tag.AsString()
			}
		}
		if !scanner.Next() || scanner.LastTag.Code == 0 {
			break
		}
	}
	return scanner.Err()
}

func (a *Attrib) BBox() core.BBox {
	// 属性文字以位置点作为包围盒
	return core.BBox{Min: a.Location, Max: a.Location}
}
