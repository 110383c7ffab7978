package entities

import (
	"strings"

	"github.com/zooyer/dxf2path/core"
)

// Insert 块引用：缩放 -> 绕 Z 旋转 -> 平移到插入点
type Insert struct {
	BaseEntity
	BlockName      string
	InsertionPoint core.Point
	Scale          core.Point
	Rotation       float64 // 角度制
	Attributes     []*Attrib
}

func init() {
	Register("INSERT", func() Entity {
		return &Insert{
			BaseEntity: BaseEntity{TypeName: "INSERT"},
			Scale:      core.Point{X: 1, Y: 1, Z: 1}, // 默认缩放为 1
		}
	})
}

func (i *Insert) Parse(scanner *core.Scanner) error {
	hasAttributes := false

	for {
		tag := scanner.LastTag
		if !i.parseCommon(tag) {
			switch tag.Code {
			case 2:
				i.BlockName = strings.ToUpper(tag.AsString())
			case 10:
				i.InsertionPoint.X = tag.AsFloat()
			case 20:
				i.InsertionPoint.Y = tag.AsFloat()
			case 30:
				i.InsertionPoint.Z = tag.AsFloat()
			case 41:
				i.Scale.X = tag.AsFloat()
			case 42:
				i.Scale.Y = tag.AsFloat()
			case 43:
				i.Scale.Z = tag.AsFloat()
			case 50:
				i.Rotation = tag.AsFloat()
			case 66:
				hasAttributes = tag.AsInt() == 1
			}
		}

		if !scanner.Next() || scanner.LastTag.Code == 0 {
			break
		}
	}

	if hasAttributes {
		i.parseAttributes(scanner)
	}
	return scanner.Err()
}

// parseAttributes 继续在当前流中抓取 ATTRIB 直到 SEQEND
func (i *Insert) parseAttributes(scanner *core.Scanner) {
	for {
		tag := scanner.LastTag
		if tag.Code == 0 {
			if tag.IsEntity("SEQEND") {
				// 消耗掉 SEQEND 及其附带的组码
				for scanner.Next() && scanner.LastTag.Code != 0 {
				}
				return
			}
			if attr, ok := CreateEntity(tag.AsString()).(*Attrib); ok {
				_ = attr.Parse(scanner)
				i.Attributes = append(i.Attributes, attr)
				continue // Parse 内部已经 Next 了
			}
			// 非 ATTRIB 实体说明属性序列没有 SEQEND，交还给调用方
			return
		}
		if !scanner.Next() {
			return
		}
	}
}

func (i *Insert) BBox() core.BBox {
	// 块引用的真实包围盒需要结合 Block 定义计算，见 utils.GetEntityBBoxWCS
	return core.BBox{Min: i.InsertionPoint, Max: i.InsertionPoint}
}
