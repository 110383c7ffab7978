package dxf

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/zooyer/dxf2path/core"
	"github.com/zooyer/dxf2path/entities"
)

type Block struct {
	Name     string
	Base     core.Point // 组码 10/20/30，块基点
	Entities []entities.Entity
}

type Document struct {
	Units    Units // HEADER $INSUNITS
	Blocks   map[string]*Block
	Entities []entities.Entity
}

// 属于上一个 POLYLINE 的子记录，不作为独立实体
var subRecords = map[string]bool{
	"VERTEX": true,
	"SEQEND": true,
}

// newEntity 创建实体，未注册的类型保留为 Unknown
func newEntity(typeName string) entities.Entity {
	if ent := entities.CreateEntity(typeName); ent != nil {
		return ent
	}
	return entities.NewUnknown(typeName)
}

func (d *Document) parseHeader(scanner *core.Scanner) {
	for scanner.Next() {
		tag := scanner.LastTag
		if tag.IsEntity("ENDSEC") {
			break
		}
		if tag.Code == 9 && strings.EqualFold(tag.AsString(), "$INSUNITS") {
			if scanner.Next() && scanner.LastTag.Code == 70 {
				d.Units = Units(scanner.LastTag.AsInt())
			}
		}
	}
}

func (d *Document) parseBlocks(scanner *core.Scanner) error {
	var currentBlock *Block
	if !scanner.Next() {
		return nil
	}
	for {
		tag := scanner.LastTag
		if tag.IsEntity("ENDSEC") {
			break
		}
		switch {
		case tag.IsEntity("BLOCK"):
			currentBlock = &Block{}
			// BLOCK 头部：名称与基点
			for scanner.Next() && scanner.LastTag.Code != 0 {
				switch t := scanner.LastTag; t.Code {
				case 2:
					currentBlock.Name = strings.ToUpper(t.AsString())
				case 10:
					currentBlock.Base.X = t.AsFloat()
				case 20:
					currentBlock.Base.Y = t.AsFloat()
				case 30:
					currentBlock.Base.Z = t.AsFloat()
				}
			}
			d.Blocks[currentBlock.Name] = currentBlock
			continue
		case tag.IsEntity("ENDBLK"):
			currentBlock = nil
		case tag.Code == 0 && currentBlock != nil && !subRecords[tag.AsString()]:
			ent := newEntity(tag.AsString())
			if err := ent.Parse(scanner); err != nil {
				return fmt.Errorf("block %s: parse %s: %w", currentBlock.Name, ent.Type(), err)
			}
			currentBlock.Entities = append(currentBlock.Entities, ent)
			if scanner.Done() {
				return nil
			}
			continue
		}
		if !scanner.Next() {
			break
		}
	}
	return nil
}

func (d *Document) parseEntities(scanner *core.Scanner) error {
	if !scanner.Next() {
		return nil
	}
	for {
		tag := scanner.LastTag
		if tag.IsEntity("ENDSEC") {
			break
		}
		if tag.Code == 0 && !subRecords[tag.AsString()] {
			ent := newEntity(tag.AsString())
			if err := ent.Parse(scanner); err != nil {
				return fmt.Errorf("parse %s: %w", ent.Type(), err)
			}
			d.Entities = append(d.Entities, ent)
			if scanner.Done() {
				return nil
			}
			continue
		}
		if !scanner.Next() {
			break
		}
	}
	return nil
}

// Block 按名称查找块定义（大小写不敏感）
func (d *Document) Block(name string) (*Block, bool) {
	b, ok := d.Blocks[strings.ToUpper(name)]
	return b, ok
}

func Open(filename string) (doc *Document, err error) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}

	defer func() {
		if e := file.Close(); e != nil && err == nil {
			err = e
		}
	}()

	return Load(file)
}

func Load(reader io.Reader) (doc *Document, err error) {
	var (
		scanner  = core.NewScanner(reader)
		document = &Document{
			Blocks:   make(map[string]*Block),
			Entities: make([]entities.Entity, 0, 64),
		}
	)

	for scanner.Next() {
		tag := scanner.LastTag
		if tag.IsEntity("SECTION") {
			if !scanner.Next() {
				break
			}
			sectionName := strings.ToUpper(scanner.LastTag.AsString())
			switch sectionName {
			case "HEADER":
				document.parseHeader(scanner)
			case "BLOCKS":
				err = document.parseBlocks(scanner)
			case "ENTITIES":
				err = document.parseEntities(scanner)
			}
			if err != nil {
				return nil, err
			}
		}
	}

	if err = scanner.Err(); err != nil {
		return nil, err
	}
	return document, nil
}
